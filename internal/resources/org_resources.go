package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/vishalsachdev/eventbrite-mcp/internal/server"
)

// RegisterOrganizationResources registers resources describing the Eventbrite
// organization this server is bound to and the query defaults it applies.
func RegisterOrganizationResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	orgResource := mcp.NewResource(
		"eventbrite://organization",
		"Eventbrite Organization",
		mcp.WithResourceDescription("The Eventbrite organization this server operates against"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(orgResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleOrganization(ctx, request, sc)
	})

	defaultsResource := mcp.NewResource(
		"eventbrite://config/defaults",
		"Query Defaults",
		mcp.WithResourceDescription("Default filters and pagination limits applied to event queries"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(defaultsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleQueryDefaults(ctx, request, sc)
	})

	return nil
}

// handleOrganization returns the organization binding for this server.
func handleOrganization(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	cfg := sc.Config()

	orgData := map[string]interface{}{
		"organizationId": cfg.OrganizationID,
		"baseUrl":        cfg.BaseURL,
		"description":    "Eventbrite organization used for event queries",
	}
	if cfg.OrganizationID == "" {
		orgData["note"] = "No organization configured; it will be resolved from the API token on first use"
	}

	jsonData, err := json.MarshalIndent(orgData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal organization data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleQueryDefaults returns the defaults applied when list_events arguments
// are omitted.
func handleQueryDefaults(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	cfg := sc.Config()

	defaultsData := map[string]interface{}{
		"startDateFloor": cfg.StartFloor,
		"collectTarget":  cfg.CollectTarget,
		"maxPageScan":    cfg.MaxPageScan,
		"pageSize":       cfg.PageSize,
		"httpTimeout":    cfg.HTTPTimeout.String(),
		"description":    "Defaults applied when list_events arguments are omitted",
	}

	jsonData, err := json.MarshalIndent(defaultsData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal defaults data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
