package resources

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vishalsachdev/eventbrite-mcp/internal/eventbrite"
	"github.com/vishalsachdev/eventbrite-mcp/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()

	sc, err := server.NewServerContext(context.Background(), eventbrite.Config{
		Token:          "test-token",
		OrganizationID: "org1",
	}, nil)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	t.Cleanup(func() {
		_ = sc.Shutdown()
	})
	return sc
}

func readResourceText(t *testing.T, contents []mcp.ResourceContents) string {
	t.Helper()

	if len(contents) != 1 {
		t.Fatalf("expected 1 resource content, got %d", len(contents))
	}
	text, ok := contents[0].(*mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected text resource contents, got %T", contents[0])
	}
	if text.MIMEType != "application/json" {
		t.Errorf("expected application/json, got %s", text.MIMEType)
	}
	return text.Text
}

func TestHandleOrganization(t *testing.T) {
	sc := newTestServerContext(t)

	request := mcp.ReadResourceRequest{}
	request.Params.URI = "eventbrite://organization"

	contents, err := handleOrganization(context.Background(), request, sc)
	if err != nil {
		t.Fatalf("handleOrganization failed: %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(readResourceText(t, contents)), &data); err != nil {
		t.Fatalf("failed to parse resource JSON: %v", err)
	}

	if data["organizationId"] != "org1" {
		t.Errorf("expected organizationId org1, got %v", data["organizationId"])
	}
	if !strings.Contains(data["baseUrl"].(string), "eventbrite") {
		t.Errorf("expected Eventbrite base URL, got %v", data["baseUrl"])
	}
	if _, ok := data["note"]; ok {
		t.Error("did not expect note when organization is configured")
	}
}

func TestHandleQueryDefaults(t *testing.T) {
	sc := newTestServerContext(t)

	request := mcp.ReadResourceRequest{}
	request.Params.URI = "eventbrite://config/defaults"

	contents, err := handleQueryDefaults(context.Background(), request, sc)
	if err != nil {
		t.Fatalf("handleQueryDefaults failed: %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(readResourceText(t, contents)), &data); err != nil {
		t.Fatalf("failed to parse resource JSON: %v", err)
	}

	if data["startDateFloor"] != eventbrite.DefaultStartFloor {
		t.Errorf("expected default start floor, got %v", data["startDateFloor"])
	}
	if data["collectTarget"].(float64) != eventbrite.DefaultCollectTarget {
		t.Errorf("expected default collect target, got %v", data["collectTarget"])
	}
}
