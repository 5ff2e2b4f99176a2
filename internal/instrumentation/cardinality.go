package instrumentation

import "strings"

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with resource identifiers.

// NormalizeMetricPath collapses resource identifiers in a request path to
// a placeholder so each label value stays low cardinality.
//
// Example:
//
//	NormalizeMetricPath("/events/123456789/")        // "/events/:id/"
//	NormalizeMetricPath("/events/123/attendees/456") // "/events/:id/attendees/:id"
//	NormalizeMetricPath("/healthz")                  // "/healthz"
func NormalizeMetricPath(path string) string {
	if path == "" {
		return "/"
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if isNumeric(seg) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Common operation types for Eventbrite API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationList    = "list"
	OperationGet     = "get"
	OperationCreate  = "create"
	OperationUpdate  = "update"
	OperationPublish = "publish"
	OperationSearch  = "search"
)
