package eventbrite

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Gateway parameter names.
const (
	paramStatus     = "status"
	paramPage       = "page"
	paramPageSize   = "page_size"
	paramOrderBy    = "order_by"
	paramExpand     = "expand"
	paramStartDate  = "start_date"
	paramEndDate    = "end_date"
	paramRangeStart = "start_date.range_start"
	paramRangeEnd   = "start_date.range_end"
)

// Fixed operational parameters for the search path: newest events first,
// with venue and ticket availability expanded inline.
const (
	orderByStartDesc = "start_desc"
	defaultExpand    = "venue,ticket_availability"

	// StatusAll matches events in any lifecycle state.
	StatusAll = "all"
)

// dateLayout is the canonical calendar-date rendering sent to the
// gateway.
const dateLayout = "2006-01-02"

// dateLayouts are the input formats the normalizer accepts, tried in
// order.
var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// FilterRequest is the caller-supplied filter criteria for an event
// listing. All fields are optional; zero values mean "no constraint"
// except where a documented default applies.
type FilterRequest struct {
	Status    string
	StartDate string
	EndDate   string
	Page      int
	PageSize  int
}

// NormalizedQuery is a gateway-ready parameter set. It never contains
// empty values; absent keys are simply not sent.
type NormalizedQuery map[string]string

// Values renders the query as url.Values for the HTTP layer.
func (q NormalizedQuery) Values() url.Values {
	v := url.Values{}
	for key, val := range q {
		v.Set(key, val)
	}
	return v
}

// Clone returns an independent copy of the query.
func (q NormalizedQuery) Clone() NormalizedQuery {
	out := make(NormalizedQuery, len(q))
	for key, val := range q {
		out[key] = val
	}
	return out
}

// DateRange is an inclusive range of instants. A zero-valued bound
// imposes no constraint on that side.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t satisfies start <= t <= end, ignoring
// whichever bounds are unset.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// ParseDate parses a caller-supplied date string and truncates it to a
// calendar date in UTC. It accepts plain YYYY-MM-DD as well as RFC 3339
// timestamps; the time-of-day portion is discarded either way, so
// "2024-03-01T10:00:00Z" and "2024-03-01" yield the same date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date (want YYYY-MM-DD or RFC 3339)")
}

// FormatDate renders a date in the canonical YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Normalizer translates FilterRequests into the gateway's parameter
// vocabulary. It carries the configured default floor date and page
// size so the substitution policy is explicit rather than a buried
// literal.
type Normalizer struct {
	startFloor time.Time
	pageSize   int

	// now is replaceable for tests
	now func() time.Time
}

// NewNormalizer creates a Normalizer with the given default floor date
// and page size. A pageSize of zero means no configured default; list
// queries then fall back to DefaultPageSize and search queries omit the
// parameter.
func NewNormalizer(startFloor time.Time, pageSize int) *Normalizer {
	return &Normalizer{startFloor: startFloor, pageSize: pageSize, now: time.Now}
}

// NormalizeSearch builds the parameter set for the paginated search path
// along with the resolved date range the collector filters against.
//
// Dates are canonicalized to YYYY-MM-DD and rewritten into the gateway's
// range-query keys. A missing start date falls back to the configured
// floor; a missing end date falls back to one year from now. A missing
// page size falls back to the configured default when one is set. An
// unparseable date is a ValidationError naming the offending field,
// returned before any network call.
func (n *Normalizer) NormalizeSearch(req FilterRequest) (NormalizedQuery, DateRange, error) {
	var rng DateRange

	if req.StartDate != "" {
		d, err := ParseDate(req.StartDate)
		if err != nil {
			return nil, DateRange{}, &ValidationError{Field: paramStartDate, Value: req.StartDate, Err: err}
		}
		rng.Start = d
	} else {
		rng.Start = n.startFloor
	}

	if req.EndDate != "" {
		d, err := ParseDate(req.EndDate)
		if err != nil {
			return nil, DateRange{}, &ValidationError{Field: paramEndDate, Value: req.EndDate, Err: err}
		}
		rng.End = d
	} else {
		ceiling := n.now().UTC().AddDate(1, 0, 0)
		rng.End = time.Date(ceiling.Year(), ceiling.Month(), ceiling.Day(), 0, 0, 0, 0, time.UTC)
	}

	q := NormalizedQuery{
		paramRangeStart: FormatDate(rng.Start),
		paramRangeEnd:   FormatDate(rng.End),
		paramOrderBy:    orderByStartDesc,
		paramExpand:     defaultExpand,
	}

	if req.Status != "" {
		q[paramStatus] = req.Status
	} else {
		q[paramStatus] = StatusAll
	}
	if size := req.PageSize; size > 0 {
		q[paramPageSize] = strconv.Itoa(size)
	} else if n.pageSize > 0 {
		q[paramPageSize] = strconv.Itoa(n.pageSize)
	}
	// A page beyond the first is a scan-start hint for the collector.
	if req.Page > 1 {
		q[paramPage] = strconv.Itoa(req.Page)
	}

	return q, rng, nil
}

// NormalizeList builds the parameter set for a plain event listing.
// Dates are canonicalized but not rewritten into range keys, status is
// passed through unfiltered, and empty fields are dropped entirely.
func (n *Normalizer) NormalizeList(req FilterRequest) (NormalizedQuery, error) {
	q := NormalizedQuery{}

	if req.Status != "" {
		q[paramStatus] = req.Status
	}
	if req.StartDate != "" {
		d, err := ParseDate(req.StartDate)
		if err != nil {
			return nil, &ValidationError{Field: paramStartDate, Value: req.StartDate, Err: err}
		}
		q[paramStartDate] = FormatDate(d)
	}
	if req.EndDate != "" {
		d, err := ParseDate(req.EndDate)
		if err != nil {
			return nil, &ValidationError{Field: paramEndDate, Value: req.EndDate, Err: err}
		}
		q[paramEndDate] = FormatDate(d)
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}
	q[paramPage] = strconv.Itoa(page)

	size := req.PageSize
	if size <= 0 {
		size = n.pageSize
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	q[paramPageSize] = strconv.Itoa(size)

	return q, nil
}
