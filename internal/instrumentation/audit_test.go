package instrumentation

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

// Test constants to reduce string repetition and satisfy goconst
const (
	testEventID    = "123456789"
	testToolList   = "list_events"
	testToolGet    = "get_event_details"
	testToolCreate = "create_event"
)

func TestToolInvocation_NewAndComplete(t *testing.T) {
	ti := NewToolInvocation(testToolList)

	// Verify initial state
	if ti.Tool != testToolList {
		t.Errorf("Tool = %q, want %q", ti.Tool, testToolList)
	}
	if ti.StartTime.IsZero() {
		t.Error("StartTime should not be zero")
	}

	// Complete the invocation - duration should be calculated from StartTime
	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("Success should be true")
	}
	// Duration is calculated from StartTime, so it should be >= 0
	// We don't check for > 0 as the test may complete instantly
	if ti.Duration < 0 {
		t.Error("Duration should not be negative")
	}
	if ti.Error != "" {
		t.Errorf("Error should be empty, got %q", ti.Error)
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation(testToolCreate)
	err := errors.New("permission denied")

	ti.CompleteWithError(err)

	if ti.Success {
		t.Error("Success should be false")
	}
	if ti.Error != "permission denied" {
		t.Errorf("Error = %q, want %q", ti.Error, "permission denied")
	}
}

func TestToolInvocation_WithService(t *testing.T) {
	ti := NewToolInvocation(testToolList)
	ti.WithService(ServiceEventbrite, OperationList)

	if ti.ServiceName != ServiceEventbrite {
		t.Errorf("ServiceName = %q, want %q", ti.ServiceName, ServiceEventbrite)
	}
	if ti.Operation != OperationList {
		t.Errorf("Operation = %q, want %q", ti.Operation, OperationList)
	}
}

func TestToolInvocation_WithEventID(t *testing.T) {
	ti := NewToolInvocation(testToolGet)
	ti.WithEventID(testEventID)

	if ti.EventID != testEventID {
		t.Errorf("EventID = %q, want %q", ti.EventID, testEventID)
	}
}

func TestToolInvocation_Status(t *testing.T) {
	ti := NewToolInvocation("test")

	ti.Success = true
	if status := ti.Status(); status != StatusSuccess {
		t.Errorf("Status() = %q, want %q", status, StatusSuccess)
	}

	ti.Success = false
	if status := ti.Status(); status != StatusError {
		t.Errorf("Status() = %q, want %q", status, StatusError)
	}
}

func TestToolInvocation_LogAttrs(t *testing.T) {
	ti := NewToolInvocation(testToolGet)
	ti.WithService(ServiceEventbrite, OperationGet).
		WithEventID(testEventID).
		CompleteSuccess()
	ti.TraceID = "abc123def456"

	attrs := ti.LogAttrs()

	// Verify we have the expected attributes
	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// Check required attributes
	requiredKeys := []string{"tool", "duration", "success"}
	for _, key := range requiredKeys {
		if _, ok := attrMap[key]; !ok {
			t.Errorf("Missing required attribute: %s", key)
		}
	}

	// Check service-related attributes
	if service := attrMap["service"].Value.String(); service != ServiceEventbrite {
		t.Errorf("service = %q, want %q", service, ServiceEventbrite)
	}
	if operation := attrMap["operation"].Value.String(); operation != OperationGet {
		t.Errorf("operation = %q, want %q", operation, OperationGet)
	}
	if eventID := attrMap["event_id"].Value.String(); eventID != testEventID {
		t.Errorf("event_id = %q, want %q", eventID, testEventID)
	}
	if traceID := attrMap["trace_id"].Value.String(); traceID != "abc123def456" {
		t.Errorf("trace_id = %q, want %q", traceID, "abc123def456")
	}
}

func TestToolInvocation_LogAttrs_WithError(t *testing.T) {
	ti := NewToolInvocation(testToolCreate)
	ti.CompleteWithError(errors.New("test error"))

	attrs := ti.LogAttrs()

	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// Check error attribute is present
	if _, ok := attrMap["error"]; !ok {
		t.Error("Missing error attribute")
	}
	if errVal := attrMap["error"].Value.String(); errVal != "test error" {
		t.Errorf("error = %q, want %q", errVal, "test error")
	}
}

func TestToolInvocation_LogAttrs_MinimalFields(t *testing.T) {
	ti := NewToolInvocation(testToolList)
	ti.CompleteSuccess()

	attrs := ti.LogAttrs()

	// Verify minimal attributes are present
	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// These should NOT be present when not set
	if _, ok := attrMap["service"]; ok {
		t.Error("service should not be present when empty")
	}
	if _, ok := attrMap["operation"]; ok {
		t.Error("operation should not be present when empty")
	}
	if _, ok := attrMap["event_id"]; ok {
		t.Error("event_id should not be present when empty")
	}
	if _, ok := attrMap["trace_id"]; ok {
		t.Error("trace_id should not be present when empty")
	}
}

func TestToolInvocation_BuilderChaining(t *testing.T) {
	ti := NewToolInvocation(testToolCreate).
		WithService(ServiceEventbrite, OperationCreate).
		WithEventID(testEventID).
		CompleteSuccess()

	if ti.ServiceName != ServiceEventbrite {
		t.Errorf("ServiceName = %q, want %q", ti.ServiceName, ServiceEventbrite)
	}
	if ti.Operation != OperationCreate {
		t.Errorf("Operation = %q, want %q", ti.Operation, OperationCreate)
	}
	if ti.EventID != testEventID {
		t.Errorf("EventID = %q, want %q", ti.EventID, testEventID)
	}
	if !ti.Success {
		t.Error("Success should be true")
	}
}

func TestToolInvocation_WithSpanContext_NoSpan(t *testing.T) {
	ti := NewToolInvocation(testToolList)
	ti.WithSpanContext(context.Background())

	if ti.TraceID != "" {
		t.Errorf("TraceID = %q, want empty for context without span", ti.TraceID)
	}
	if ti.SpanID != "" {
		t.Errorf("SpanID = %q, want empty for context without span", ti.SpanID)
	}
}

func TestAuditLogger_LogToolInvocation(t *testing.T) {
	al := NewAuditLogger(slog.Default())

	ti := NewToolInvocation(testToolList).
		WithService(ServiceEventbrite, OperationList).
		CompleteSuccess()

	// Should not panic
	al.LogToolInvocation(ti)

	// Failed invocations log at warn level; should not panic either
	failed := NewToolInvocation(testToolCreate).
		CompleteWithError(errors.New("boom"))
	al.LogToolInvocation(failed)
}

func TestAuditLogger_Disabled(t *testing.T) {
	al := NewAuditLoggerWithConfig(slog.Default(), AuditLoggingConfig{Enabled: false})

	ti := NewToolInvocation(testToolList).CompleteSuccess()

	// Should not panic and should not log
	al.LogToolInvocation(ti)
}

func TestAuditLogger_SetEnabled(t *testing.T) {
	al := NewAuditLogger(slog.Default())
	al.SetEnabled(false)

	ti := NewToolInvocation(testToolList).CompleteSuccess()
	al.LogToolInvocation(ti)

	al.SetEnabled(true)
	al.LogToolInvocation(ti)
}

func TestAuditLogger_NilLogger(t *testing.T) {
	al := NewAuditLogger(nil)
	if al == nil {
		t.Fatal("NewAuditLogger(nil) returned nil")
	}

	ti := NewToolInvocation(testToolList).CompleteSuccess()
	al.LogToolInvocation(ti)
}
