package eventbrite

import "encoding/json"

// ProjectedEvent is the reduced, flattened event shape returned to tool
// callers from listings. Optional upstream fields keep their documented
// defaults: a missing description becomes the empty string, while
// optional identifiers are omitted when absent upstream.
type ProjectedEvent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Status      string `json:"status"`
	Currency    string `json:"currency"`
	OnlineEvent bool   `json:"online_event"`
	VenueID     string `json:"venue_id,omitempty"`
	OrganizerID string `json:"organizer_id,omitempty"`
	Created     string `json:"created"`
	Changed     string `json:"changed"`
	Capacity    int    `json:"capacity,omitempty"`
	IsFree      bool   `json:"is_free"`
}

// ProjectedEventDetail is the caller-facing shape for a detail lookup.
// Start and end keep their full timezone-aware form.
type ProjectedEventDetail struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Start       Datetime `json:"start"`
	End         Datetime `json:"end"`
	Created     string   `json:"created"`
	Changed     string   `json:"changed"`
	Published   string   `json:"published,omitempty"`
	Status      string   `json:"status"`
	Currency    string   `json:"currency"`
	OnlineEvent bool     `json:"online_event"`

	OrganizerID   string `json:"organizer_id,omitempty"`
	VenueID       string `json:"venue_id,omitempty"`
	FormatID      string `json:"format_id,omitempty"`
	CategoryID    string `json:"category_id,omitempty"`
	SubcategoryID string `json:"subcategory_id,omitempty"`

	Capacity int  `json:"capacity,omitempty"`
	IsFree   bool `json:"is_free"`

	IsSeries       *bool `json:"is_series,omitempty"`
	IsSeriesParent *bool `json:"is_series_parent,omitempty"`
	ShowRemaining  *bool `json:"show_remaining,omitempty"`
	HideStartDate  *bool `json:"hide_start_date,omitempty"`
	HideEndDate    *bool `json:"hide_end_date,omitempty"`
	Shareable      *bool `json:"shareable,omitempty"`
	InviteOnly     *bool `json:"invite_only,omitempty"`

	Source string `json:"source,omitempty"`
	Locale string `json:"locale,omitempty"`
	LogoID string `json:"logo_id,omitempty"`

	Logo          json.RawMessage `json:"logo,omitempty"`
	TicketClasses json.RawMessage `json:"ticket_classes,omitempty"`
}

// ProjectedAttendee is the reduced attendee shape returned to tool
// callers.
type ProjectedAttendee struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Status          string `json:"status"`
	TicketClassName string `json:"ticket_class_name,omitempty"`
	CheckedIn       bool   `json:"checked_in"`
	Cancelled       bool   `json:"cancelled"`
	Refunded        bool   `json:"refunded"`
	Created         string `json:"created"`
	Changed         string `json:"changed"`
}

// ListEventsResult is the payload returned by the list_events tool.
type ListEventsResult struct {
	Events     []ProjectedEvent `json:"events"`
	Pagination Pagination       `json:"pagination"`
}

// ListAttendeesResult is the payload returned by the list_attendees
// tool.
type ListAttendeesResult struct {
	Attendees  []ProjectedAttendee `json:"attendees"`
	Pagination Pagination          `json:"pagination"`
}

// description flattens the optional rich-text description, defaulting to
// the empty string.
func description(ev *EventRecord) string {
	if ev.Description == nil {
		return ""
	}
	return ev.Description.Text
}

// ProjectEvent maps one gateway record onto the reduced listing shape.
// Pure function; no failure modes.
func ProjectEvent(ev EventRecord) ProjectedEvent {
	return ProjectedEvent{
		ID:          ev.ID,
		Name:        ev.Name.Text,
		Description: description(&ev),
		URL:         ev.URL,
		Start:       ev.Start.UTC,
		End:         ev.End.UTC,
		Status:      ev.Status,
		Currency:    ev.Currency,
		OnlineEvent: ev.OnlineEvent,
		VenueID:     ev.VenueID,
		OrganizerID: ev.OrganizerID,
		Created:     ev.Created,
		Changed:     ev.Changed,
		Capacity:    ev.Capacity,
		IsFree:      ev.IsFree,
	}
}

// ProjectEvents maps a slice of records, preserving order. Always
// returns a non-nil slice so an empty result serializes as [].
func ProjectEvents(events []EventRecord) []ProjectedEvent {
	out := make([]ProjectedEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, ProjectEvent(ev))
	}
	return out
}

// ProjectEventDetail maps one gateway record onto the detail shape.
func ProjectEventDetail(ev EventRecord) ProjectedEventDetail {
	return ProjectedEventDetail{
		ID:             ev.ID,
		Name:           ev.Name.Text,
		Description:    description(&ev),
		URL:            ev.URL,
		Start:          ev.Start,
		End:            ev.End,
		Created:        ev.Created,
		Changed:        ev.Changed,
		Published:      ev.Published,
		Status:         ev.Status,
		Currency:       ev.Currency,
		OnlineEvent:    ev.OnlineEvent,
		OrganizerID:    ev.OrganizerID,
		VenueID:        ev.VenueID,
		FormatID:       ev.FormatID,
		CategoryID:     ev.CategoryID,
		SubcategoryID:  ev.SubcategoryID,
		Capacity:       ev.Capacity,
		IsFree:         ev.IsFree,
		IsSeries:       ev.IsSeries,
		IsSeriesParent: ev.IsSeriesParent,
		ShowRemaining:  ev.ShowRemaining,
		HideStartDate:  ev.HideStartDate,
		HideEndDate:    ev.HideEndDate,
		Shareable:      ev.Shareable,
		InviteOnly:     ev.InviteOnly,
		Source:         ev.Source,
		Locale:         ev.Locale,
		LogoID:         ev.LogoID,
		Logo:           ev.Logo,
		TicketClasses:  ev.TicketClasses,
	}
}

// ProjectAttendee maps one gateway attendee onto the reduced shape.
func ProjectAttendee(att Attendee) ProjectedAttendee {
	return ProjectedAttendee{
		ID:              att.ID,
		Name:            att.Profile.Name,
		Email:           att.Profile.Email,
		Status:          att.Status,
		TicketClassName: att.TicketClassName,
		CheckedIn:       att.CheckedIn,
		Cancelled:       att.Cancelled,
		Refunded:        att.Refunded,
		Created:         att.Created,
		Changed:         att.Changed,
	}
}

// ProjectAttendees maps a slice of attendees, preserving order.
func ProjectAttendees(attendees []Attendee) []ProjectedAttendee {
	out := make([]ProjectedAttendee, 0, len(attendees))
	for _, att := range attendees {
		out = append(out, ProjectAttendee(att))
	}
	return out
}
