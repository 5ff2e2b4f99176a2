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

// parseEventInput extracts event fields from request arguments. Absent
// keys stay zero-valued, which the client omits from the payload.
func parseEventInput(args map[string]interface{}) eventbrite.EventInput {
	in := eventbrite.EventInput{}
	if v, ok := args["name"].(string); ok {
		in.NameHTML = v
	}
	if v, ok := args["description"].(string); ok {
		in.DescriptionHTML = v
	}
	if v, ok := args["start"].(string); ok {
		in.StartUTC = v
	}
	if v, ok := args["end"].(string); ok {
		in.EndUTC = v
	}
	if v, ok := args["timezone"].(string); ok {
		in.Timezone = v
	}
	if v, ok := args["currency"].(string); ok {
		in.Currency = v
	}
	if v, ok := args["online_event"].(bool); ok {
		in.OnlineEvent = v
	}
	if v, ok := args["capacity"].(float64); ok {
		in.Capacity = int(v)
	}
	return in
}

// registerMutationTools registers the event write tools
func registerMutationTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Create event tool
	createEventTool := mcp.NewTool("create_event",
		mcp.WithDescription("Create a new draft event"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Event name (HTML allowed)"),
		),
		mcp.WithString("description",
			mcp.Description("Event description (HTML allowed)"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Event start in UTC, e.g. 2026-03-01T18:00:00Z"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("Event end in UTC, e.g. 2026-03-01T21:00:00Z"),
		),
		mcp.WithString("timezone",
			mcp.Required(),
			mcp.Description("IANA timezone for the event, e.g. America/Chicago"),
		),
		mcp.WithString("currency",
			mcp.Required(),
			mcp.Description("ISO 4217 currency code, e.g. USD"),
		),
		mcp.WithBoolean("online_event",
			mcp.Description("Whether the event is online-only"),
		),
		mcp.WithNumber("capacity",
			mcp.Description("Maximum number of attendees"),
		),
	)

	s.AddTool(createEventTool, common.InstrumentedToolHandlerWithService(
		"create_event", "eventbrite", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateEvent(ctx, request, sc)
		}))

	// Update event tool
	updateEventTool := mcp.NewTool("update_event",
		mcp.WithDescription("Update an existing event. Only the provided fields are changed."),
		mcp.WithString("event_id",
			mcp.Required(),
			mcp.Description("The ID of the event to update"),
		),
		mcp.WithString("name",
			mcp.Description("New event name (HTML allowed)"),
		),
		mcp.WithString("description",
			mcp.Description("New event description (HTML allowed)"),
		),
		mcp.WithString("start",
			mcp.Description("New event start in UTC"),
		),
		mcp.WithString("end",
			mcp.Description("New event end in UTC"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone for the event"),
		),
		mcp.WithString("currency",
			mcp.Description("ISO 4217 currency code"),
		),
		mcp.WithBoolean("online_event",
			mcp.Description("Whether the event is online-only"),
		),
		mcp.WithNumber("capacity",
			mcp.Description("Maximum number of attendees"),
		),
	)

	s.AddTool(updateEventTool, common.InstrumentedToolHandlerWithService(
		"update_event", "eventbrite", "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateEvent(ctx, request, sc)
		}))

	// Publish event tool
	publishEventTool := mcp.NewTool("publish_event",
		mcp.WithDescription("Publish a draft event, making it publicly visible"),
		mcp.WithString("event_id",
			mcp.Required(),
			mcp.Description("The ID of the event to publish"),
		),
	)

	s.AddTool(publishEventTool, common.InstrumentedToolHandlerWithService(
		"publish_event", "eventbrite", "publish", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handlePublishEvent(ctx, request, sc)
		}))

	return nil
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	in := parseEventInput(args)
	if in.NameHTML == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	if in.StartUTC == "" || in.EndUTC == "" {
		return mcp.NewToolResultError("start and end are required"), nil
	}
	if in.Timezone == "" {
		return mcp.NewToolResultError("timezone is required"), nil
	}
	if in.Currency == "" {
		return mcp.NewToolResultError("currency is required"), nil
	}

	record, err := sc.Eventbrite().CreateEvent(ctx, in)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create event: %v", err)), nil
	}

	result, _ := json.MarshalIndent(eventbrite.ProjectEventDetail(*record), "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleUpdateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["event_id"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("event_id is required"), nil
	}

	record, err := sc.Eventbrite().UpdateEvent(ctx, eventID, parseEventInput(args))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update event: %v", err)), nil
	}

	result, _ := json.MarshalIndent(eventbrite.ProjectEventDetail(*record), "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handlePublishEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["event_id"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("event_id is required"), nil
	}

	published, err := sc.Eventbrite().PublishEvent(ctx, eventID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to publish event: %v", err)), nil
	}

	result, _ := json.Marshal(map[string]any{
		"event_id":  eventID,
		"published": published,
	})
	return mcp.NewToolResultText(string(result)), nil
}
