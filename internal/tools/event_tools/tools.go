package event_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/vishalsachdev/eventbrite-mcp/internal/eventbrite"
	"github.com/vishalsachdev/eventbrite-mcp/internal/server"
	"github.com/vishalsachdev/eventbrite-mcp/internal/tools/batch"
	"github.com/vishalsachdev/eventbrite-mcp/internal/tools/common"
)

// parseFilterRequest extracts filter criteria from request arguments.
// Absent keys stay zero-valued; the normalizer applies the defaults.
func parseFilterRequest(args map[string]interface{}) eventbrite.FilterRequest {
	req := eventbrite.FilterRequest{}
	if v, ok := args["status"].(string); ok {
		req.Status = v
	}
	if v, ok := args["start_date"].(string); ok {
		req.StartDate = v
	}
	if v, ok := args["end_date"].(string); ok {
		req.EndDate = v
	}
	if v, ok := args["page"].(float64); ok {
		req.Page = int(v)
	}
	if v, ok := args["page_size"].(float64); ok {
		req.PageSize = int(v)
	}
	return req
}

// RegisterEventTools registers all Eventbrite tools with the MCP server
func RegisterEventTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := registerQueryTools(s, sc); err != nil {
		return fmt.Errorf("failed to register event query tools: %w", err)
	}

	if err := registerAttendeeTools(s, sc); err != nil {
		return fmt.Errorf("failed to register attendee tools: %w", err)
	}

	// Mutation tools are only available with write access
	if !readOnly {
		if err := registerMutationTools(s, sc); err != nil {
			return fmt.Errorf("failed to register event mutation tools: %w", err)
		}
	}

	return nil
}

// registerQueryTools registers the read-only event query tools
func registerQueryTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List events tool
	listEventsTool := mcp.NewTool("list_events",
		mcp.WithDescription("List events for the configured Eventbrite organization, filtered by start date range. Collects matching events across result pages and returns them as a single page."),
		mcp.WithString("status",
			mcp.Description("Event status filter: live, draft, started, ended, completed, canceled, or all (default: all)"),
		),
		mcp.WithString("start_date",
			mcp.Description("Earliest event start date, YYYY-MM-DD or RFC3339 (default: configured floor date)"),
		),
		mcp.WithString("end_date",
			mcp.Description("Latest event start date, YYYY-MM-DD or RFC3339 (default: one year from now)"),
		),
		mcp.WithNumber("page",
			mcp.Description("API page to start scanning from (default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Page size requested from the Eventbrite API per scanned page (default: configured page size)"),
		),
	)

	s.AddTool(listEventsTool, common.InstrumentedToolHandlerWithService(
		"list_events", "eventbrite", "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListEvents(ctx, request, sc)
		}))

	// Get event details tool
	getEventDetailsTool := mcp.NewTool("get_event_details",
		mcp.WithDescription("Get full details for one or more events by ID. Accepts a single event ID or an array of IDs for batch lookup."),
		mcp.WithString("event_id",
			mcp.Required(),
			mcp.Description("Event ID, or an array of event IDs for batch lookup"),
		),
	)

	s.AddTool(getEventDetailsTool, common.InstrumentedToolHandlerWithService(
		"get_event_details", "eventbrite", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetEventDetails(ctx, request, sc)
		}))

	return nil
}

func handleListEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, dateRange, err := sc.Normalizer().NormalizeSearch(parseFilterRequest(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	collected, err := sc.Collector().Collect(ctx, query, dateRange)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
	}

	if metrics := sc.Metrics(); metrics != nil {
		metrics.RecordPagesScanned(ctx, collected.PagesScanned)
	}

	payload := eventbrite.ListEventsResult{
		Events:     eventbrite.ProjectEvents(collected.Events),
		Pagination: collected.Pagination,
	}

	result, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleGetEventDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventIDs, err := batch.ParseStringOrArray(args["event_id"], "event_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fetch := func(id string) (string, error) {
		record, err := sc.Eventbrite().EventDetails(ctx, id)
		if err != nil {
			return "", err
		}
		detail, err := json.MarshalIndent(eventbrite.ProjectEventDetail(*record), "", "  ")
		if err != nil {
			return "", err
		}
		return string(detail), nil
	}

	// Single lookup returns the detail directly; batch lookups return
	// the aggregated per-ID result structure.
	if len(eventIDs) == 1 {
		detail, err := fetch(eventIDs[0])
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get event details: %v", err)), nil
		}
		return mcp.NewToolResultText(detail), nil
	}

	results := batch.ProcessBatch(eventIDs, fetch)
	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}
