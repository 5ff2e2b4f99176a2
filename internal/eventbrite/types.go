package eventbrite

import (
	"encoding/json"
	"time"
)

// RichText is Eventbrite's text/html pair used for names and descriptions.
type RichText struct {
	Text string `json:"text,omitempty"`
	HTML string `json:"html,omitempty"`
}

// Datetime is Eventbrite's representation of a single instant: a UTC
// timestamp, the event's timezone identifier, and a local-time rendering.
type Datetime struct {
	Timezone string `json:"timezone,omitempty"`
	Local    string `json:"local,omitempty"`
	UTC      string `json:"utc,omitempty"`
}

// EventRecord is one event as returned by the gateway. It is an immutable
// snapshot; this package never mutates it.
type EventRecord struct {
	ID          string    `json:"id"`
	Name        RichText  `json:"name"`
	Description *RichText `json:"description,omitempty"`
	URL         string    `json:"url"`
	Start       Datetime  `json:"start"`
	End         Datetime  `json:"end"`
	Created     string    `json:"created,omitempty"`
	Changed     string    `json:"changed,omitempty"`
	Published   string    `json:"published,omitempty"`
	Status      string    `json:"status"`
	Currency    string    `json:"currency,omitempty"`
	OnlineEvent bool      `json:"online_event"`
	Capacity    int       `json:"capacity,omitempty"`
	IsFree      bool      `json:"is_free"`

	// Foreign references; absent on some events.
	VenueID       string `json:"venue_id,omitempty"`
	OrganizerID   string `json:"organizer_id,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
	FormatID      string `json:"format_id,omitempty"`
	CategoryID    string `json:"category_id,omitempty"`
	SubcategoryID string `json:"subcategory_id,omitempty"`

	// Detail-only fields. Pointers so "absent upstream" survives the
	// round trip instead of collapsing to false.
	IsSeries       *bool  `json:"is_series,omitempty"`
	IsSeriesParent *bool  `json:"is_series_parent,omitempty"`
	ShowRemaining  *bool  `json:"show_remaining,omitempty"`
	HideStartDate  *bool  `json:"hide_start_date,omitempty"`
	HideEndDate    *bool  `json:"hide_end_date,omitempty"`
	Shareable      *bool  `json:"shareable,omitempty"`
	InviteOnly     *bool  `json:"invite_only,omitempty"`
	Source         string `json:"source,omitempty"`
	Locale         string `json:"locale,omitempty"`
	LogoID         string `json:"logo_id,omitempty"`

	// Passed through opaquely; shapes vary with the expand parameter.
	Logo          json.RawMessage `json:"logo,omitempty"`
	Venue         json.RawMessage `json:"venue,omitempty"`
	TicketClasses json.RawMessage `json:"ticket_classes,omitempty"`
}

// StartUTC parses the event's UTC start timestamp.
func (e *EventRecord) StartUTC() (time.Time, error) {
	return time.Parse(time.RFC3339, e.Start.UTC)
}

// Pagination is the gateway's page metadata block. The collector also
// synthesizes one of these to describe its accumulated result as a single
// logical page.
type Pagination struct {
	ObjectCount  int  `json:"object_count"`
	PageNumber   int  `json:"page_number"`
	PageSize     int  `json:"page_size"`
	PageCount    int  `json:"page_count"`
	HasMoreItems bool `json:"has_more_items"`
}

// PageResult is one gateway events response: an ordered page of records
// plus pagination metadata.
type PageResult struct {
	Pagination Pagination    `json:"pagination"`
	Events     []EventRecord `json:"events"`
}

// CollectedResult is the collector's accumulated output. Events are in
// page-scan order; Pagination reports the final count as a single page.
// PagesScanned counts the gateway pages fetched to produce the result.
type CollectedResult struct {
	Events       []EventRecord
	Pagination   Pagination
	PagesScanned int
}

// Organization is one entry from the caller's organization list.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type organizationsResponse struct {
	Pagination    Pagination     `json:"pagination"`
	Organizations []Organization `json:"organizations"`
}

// AttendeeProfile holds the identity fields of an attendee.
type AttendeeProfile struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	CellPhone string `json:"cell_phone,omitempty"`
}

// Attendee is one attendee as returned by the gateway.
type Attendee struct {
	ID              string          `json:"id"`
	Created         string          `json:"created,omitempty"`
	Changed         string          `json:"changed,omitempty"`
	EventID         string          `json:"event_id,omitempty"`
	OrderID         string          `json:"order_id,omitempty"`
	Status          string          `json:"status,omitempty"`
	TicketClassName string          `json:"ticket_class_name,omitempty"`
	Profile         AttendeeProfile `json:"profile"`
	CheckedIn       bool            `json:"checked_in"`
	Cancelled       bool            `json:"cancelled"`
	Refunded        bool            `json:"refunded"`
	Costs           json.RawMessage `json:"costs,omitempty"`
}

// AttendeePage is one gateway attendees response.
type AttendeePage struct {
	Pagination Pagination `json:"pagination"`
	Attendees  []Attendee `json:"attendees"`
}

// EventInput holds the fields accepted by the event create and update
// endpoints. Zero-valued fields are omitted from the request payload, so
// a sparse input performs a partial update.
type EventInput struct {
	NameHTML        string
	DescriptionHTML string
	StartUTC        string
	EndUTC          string
	Timezone        string
	Currency        string
	OnlineEvent     bool
	Capacity        int
}

// payload builds the nested {"event": {...}} body the gateway expects.
func (in EventInput) payload() map[string]any {
	event := map[string]any{}
	if in.NameHTML != "" {
		event["name"] = map[string]any{"html": in.NameHTML}
	}
	if in.DescriptionHTML != "" {
		event["description"] = map[string]any{"html": in.DescriptionHTML}
	}
	if in.StartUTC != "" {
		event["start"] = map[string]any{"timezone": in.Timezone, "utc": in.StartUTC}
	}
	if in.EndUTC != "" {
		event["end"] = map[string]any{"timezone": in.Timezone, "utc": in.EndUTC}
	}
	if in.Currency != "" {
		event["currency"] = in.Currency
	}
	if in.OnlineEvent {
		event["online_event"] = true
	}
	if in.Capacity > 0 {
		event["capacity"] = in.Capacity
	}
	return map[string]any{"event": event}
}

type publishResponse struct {
	Published bool `json:"published"`
}
