package eventbrite

import "fmt"

// APIError represents a failed gateway call: a transport failure, a
// non-2xx response, or a malformed payload. Any APIError aborts the
// operation that produced it; there is no retry and no partial result.
type APIError struct {
	// Op is the operation that failed (e.g., "list_events", "get_event")
	Op string

	// Path is the request path, including any resource identifiers
	Path string

	// StatusCode is the HTTP status of the response, or 0 if the request
	// never completed
	StatusCode int

	// Body is the (truncated) response body for non-2xx responses
	Body string

	// Err is the underlying error, if any
	Err error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("eventbrite %s %s: status %d: %s", e.Op, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("eventbrite %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *APIError) Unwrap() error {
	return e.Err
}

// ValidationError reports a caller-supplied argument that could not be
// normalized. It is returned before any network call is made.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return e.Err
}
