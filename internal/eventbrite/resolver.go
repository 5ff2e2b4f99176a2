package eventbrite

import (
	"context"
	"sync"
)

// EventSource identifies whose events the collector scans. An empty
// OrganizationID means the authenticated user's personal event list.
type EventSource struct {
	OrganizationID string
}

// OrganizationResolver resolves the target event source for a
// collection. There is exactly one resolution strategy per process,
// chosen at startup; every call site goes through the same resolver.
type OrganizationResolver interface {
	Resolve(ctx context.Context) (EventSource, error)
}

// StaticResolver always resolves to a configured organization. Used when
// EVENTBRITE_ORGANIZATION_ID or --organization-id is set.
type StaticResolver struct {
	ID string
}

func (r StaticResolver) Resolve(context.Context) (EventSource, error) {
	return EventSource{OrganizationID: r.ID}, nil
}

// LookupResolver resolves dynamically: the first organization in the
// caller's organization list, falling back to the caller's personal
// event list when they belong to none. The first successful resolution
// is cached for the life of the resolver; organization membership is
// bound to the token and does not change mid-process. Failures are not
// cached, so a transient gateway error is retried on the next call.
type LookupResolver struct {
	client *Client

	mu       sync.Mutex
	resolved bool
	src      EventSource
}

// NewLookupResolver creates a resolver that queries the gateway.
func NewLookupResolver(client *Client) *LookupResolver {
	return &LookupResolver{client: client}
}

func (r *LookupResolver) Resolve(ctx context.Context) (EventSource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved {
		return r.src, nil
	}

	orgs, err := r.client.ListOrganizations(ctx)
	if err != nil {
		return EventSource{}, err
	}

	src := EventSource{}
	if len(orgs) > 0 {
		src.OrganizationID = orgs[0].ID
	}
	r.src = src
	r.resolved = true
	return src, nil
}

// NewResolver picks the resolution strategy for the given configuration:
// a configured override when present, dynamic lookup otherwise.
func NewResolver(cfg Config, client *Client) OrganizationResolver {
	if cfg.OrganizationID != "" {
		return StaticResolver{ID: cfg.OrganizationID}
	}
	return NewLookupResolver(client)
}
