// Package event_tools provides MCP tools for working with Eventbrite
// events and attendees.
//
// Query tools (always available):
//   - list_events: date-range event listing with paginated collection
//   - get_event_details: full detail for one or more events
//   - list_attendees: attendee roster for an event
//   - get_attendee_details: one attendee record
//
// Mutation tools (registered only when write access is enabled):
//   - create_event: create a draft event
//   - update_event: partial update of an existing event
//   - publish_event: publish a draft event
package event_tools
