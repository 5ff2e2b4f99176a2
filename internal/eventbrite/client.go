package eventbrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/vishalsachdev/eventbrite-mcp/internal/logging"
)

// maxErrorBody caps how much of an error response body is retained for
// logging and error messages.
const maxErrorBody = 4 << 10

// Client provides authenticated access to the Eventbrite v3 API.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a gateway client from the given configuration.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	cfg = cfg.WithDefaults()
	if cfg.Token == "" {
		return nil, fmt.Errorf("token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("eventbrite client configured",
		slog.String("base_url", cfg.BaseURL),
		slog.String("token", logging.SanitizeToken(cfg.Token)))
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}, nil
}

// do issues one request against the gateway and decodes the response into
// out. Non-2xx responses are logged with status and body context and
// returned as an *APIError; no retry is attempted.
func (c *Client) do(ctx context.Context, op, method, path string, params url.Values, body, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &APIError{Op: op, Path: path, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return &APIError{Op: op, Path: path, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Op: op, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{Op: op, Path: path, StatusCode: resp.StatusCode, Body: string(raw)}
		c.logger.Error("eventbrite request failed",
			logging.Operation(op),
			slog.String("path", path),
			slog.Int(logging.KeyStatus, resp.StatusCode),
			slog.String("body", string(raw)))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Op: op, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// ListOrganizations returns the organizations the authenticated user
// belongs to, in the order the gateway reports them.
func (c *Client) ListOrganizations(ctx context.Context) ([]Organization, error) {
	var resp organizationsResponse
	if err := c.do(ctx, "list_organizations", http.MethodGet, "/users/me/organizations/", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Organizations, nil
}

// OrganizationEvents fetches one page of events for an organization.
func (c *Client) OrganizationEvents(ctx context.Context, orgID string, q NormalizedQuery) (*PageResult, error) {
	path := fmt.Sprintf("/organizations/%s/events/", orgID)
	var resp PageResult
	if err := c.do(ctx, "list_events", http.MethodGet, path, q.Values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UserEvents fetches one page of the authenticated user's personal
// events. Used as the fallback when the caller has no organization.
func (c *Client) UserEvents(ctx context.Context, q NormalizedQuery) (*PageResult, error) {
	var resp PageResult
	if err := c.do(ctx, "list_events", http.MethodGet, "/users/me/events/", q.Values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EventDetails fetches the full record for a single event.
func (c *Client) EventDetails(ctx context.Context, eventID string) (*EventRecord, error) {
	path := fmt.Sprintf("/events/%s/", eventID)
	var ev EventRecord
	if err := c.do(ctx, "get_event", http.MethodGet, path, nil, nil, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// ListAttendees fetches one page of attendees for an event.
func (c *Client) ListAttendees(ctx context.Context, eventID string, q NormalizedQuery) (*AttendeePage, error) {
	path := fmt.Sprintf("/events/%s/attendees/", eventID)
	var resp AttendeePage
	if err := c.do(ctx, "list_attendees", http.MethodGet, path, q.Values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AttendeeDetails fetches a single attendee of an event.
func (c *Client) AttendeeDetails(ctx context.Context, eventID, attendeeID string) (*Attendee, error) {
	path := fmt.Sprintf("/events/%s/attendees/%s/", eventID, attendeeID)
	var att Attendee
	if err := c.do(ctx, "get_attendee", http.MethodGet, path, nil, nil, &att); err != nil {
		return nil, err
	}
	// Attendee email is PII; log only the anonymized hash.
	c.logger.Debug("attendee lookup",
		logging.Operation("get_attendee"),
		logging.EventID(eventID),
		logging.AttendeeHash(att.Profile.Email))
	return &att, nil
}

// CreateEvent creates a new event. Not idempotent; callers must not
// retry on failure.
func (c *Client) CreateEvent(ctx context.Context, in EventInput) (*EventRecord, error) {
	var ev EventRecord
	if err := c.do(ctx, "create_event", http.MethodPost, "/events/", nil, in.payload(), &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// UpdateEvent updates an existing event. Zero-valued input fields are
// left unchanged. Not idempotent; callers must not retry on failure.
func (c *Client) UpdateEvent(ctx context.Context, eventID string, in EventInput) (*EventRecord, error) {
	path := fmt.Sprintf("/events/%s/", eventID)
	var ev EventRecord
	if err := c.do(ctx, "update_event", http.MethodPost, path, nil, in.payload(), &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// PublishEvent publishes a draft event. Returns whether the gateway
// reports the event as published.
func (c *Client) PublishEvent(ctx context.Context, eventID string) (bool, error) {
	path := fmt.Sprintf("/events/%s/publish/", eventID)
	var resp publishResponse
	if err := c.do(ctx, "publish_event", http.MethodPost, path, nil, nil, &resp); err != nil {
		return false, err
	}
	return resp.Published, nil
}
