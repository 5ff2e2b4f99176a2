package event_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/vishalsachdev/eventbrite-mcp/internal/eventbrite"
	"github.com/vishalsachdev/eventbrite-mcp/internal/server"
	"github.com/vishalsachdev/eventbrite-mcp/internal/tools/common"
)

// registerAttendeeTools registers the attendee query tools
func registerAttendeeTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List attendees tool
	listAttendeesTool := mcp.NewTool("list_attendees",
		mcp.WithDescription("List attendees for an event"),
		mcp.WithString("event_id",
			mcp.Required(),
			mcp.Description("The ID of the event"),
		),
		mcp.WithString("status",
			mcp.Description("Attendee status filter: attending, not_attending, or unpaid"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Attendees per page (default: 50)"),
		),
	)

	s.AddTool(listAttendeesTool, common.InstrumentedToolHandlerWithService(
		"list_attendees", "eventbrite", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListAttendees(ctx, request, sc)
		}))

	// Get attendee details tool
	getAttendeeDetailsTool := mcp.NewTool("get_attendee_details",
		mcp.WithDescription("Get details for a single attendee of an event"),
		mcp.WithString("event_id",
			mcp.Required(),
			mcp.Description("The ID of the event"),
		),
		mcp.WithString("attendee_id",
			mcp.Required(),
			mcp.Description("The ID of the attendee"),
		),
	)

	s.AddTool(getAttendeeDetailsTool, common.InstrumentedToolHandlerWithService(
		"get_attendee_details", "eventbrite", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetAttendeeDetails(ctx, request, sc)
		}))

	return nil
}

func handleListAttendees(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["event_id"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("event_id is required"), nil
	}

	query, err := sc.Normalizer().NormalizeList(parseFilterRequest(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := sc.Eventbrite().ListAttendees(ctx, eventID, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list attendees: %v", err)), nil
	}

	payload := eventbrite.ListAttendeesResult{
		Attendees:  eventbrite.ProjectAttendees(page.Attendees),
		Pagination: page.Pagination,
	}

	result, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleGetAttendeeDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["event_id"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("event_id is required"), nil
	}
	attendeeID, ok := args["attendee_id"].(string)
	if !ok || attendeeID == "" {
		return mcp.NewToolResultError("attendee_id is required"), nil
	}

	attendee, err := sc.Eventbrite().AttendeeDetails(ctx, eventID, attendeeID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get attendee details: %v", err)), nil
	}

	result, _ := json.MarshalIndent(eventbrite.ProjectAttendee(*attendee), "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}
