package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

func TestNewHTTPServer(t *testing.T) {
	t.Run("requires MCP server", func(t *testing.T) {
		_, err := NewHTTPServer(nil, nil, "streamable-http")
		if err == nil {
			t.Error("NewHTTPServer() expected error for nil MCP server, got nil")
		}
	})

	t.Run("creates server with health checker", func(t *testing.T) {
		mcpSrv := mcpserver.NewMCPServer("test", "0.0.0")
		srv, err := NewHTTPServer(mcpSrv, nil, "streamable-http")
		if err != nil {
			t.Fatalf("NewHTTPServer() error = %v", err)
		}
		if srv.HealthChecker() == nil {
			t.Error("HealthChecker() returned nil")
		}
	})
}

func TestHTTPServer_UnsupportedServerType(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("test", "0.0.0")
	srv, err := NewHTTPServer(mcpSrv, nil, "carrier-pigeon")
	if err != nil {
		t.Fatalf("NewHTTPServer() error = %v", err)
	}

	if err := srv.Start(":0"); err == nil {
		t.Error("Start() expected error for unsupported server type, got nil")
	}
}

func TestStatusRecorder(t *testing.T) {
	t.Run("captures status code", func(t *testing.T) {
		rec := httptest.NewRecorder()
		sr := &statusRecorder{ResponseWriter: rec, status: http.StatusOK}

		sr.WriteHeader(http.StatusNotFound)

		if sr.status != http.StatusNotFound {
			t.Errorf("status = %d, want %d", sr.status, http.StatusNotFound)
		}
		if rec.Code != http.StatusNotFound {
			t.Errorf("recorder.Code = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestInstrumentationMiddleware(t *testing.T) {
	t.Run("calls next handler with nil server context", func(t *testing.T) {
		srv := &HTTPServer{}
		called := false
		next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			called = true
		})

		handler := srv.instrumentationMiddleware(next)
		req := httptest.NewRequest("GET", "/mcp", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if !called {
			t.Error("expected next handler to be called")
		}
	})

	t.Run("calls next handler when metrics are not set", func(t *testing.T) {
		srv := &HTTPServer{serverContext: &ServerContext{}}
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusAccepted)
		})

		handler := srv.instrumentationMiddleware(next)
		req := httptest.NewRequest("POST", "/mcp", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if !called {
			t.Error("expected next handler to be called")
		}
		if rec.Code != http.StatusAccepted {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
		}
	})
}

func TestHTTPServer_ShutdownWithoutStart(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("test", "0.0.0")
	srv, err := NewHTTPServer(mcpSrv, nil, "streamable-http")
	if err != nil {
		t.Fatalf("NewHTTPServer() error = %v", err)
	}

	if err := srv.Shutdown(t.Context()); err != nil {
		t.Errorf("Shutdown() without Start() error = %v", err)
	}

	if srv.HealthChecker().IsReady() {
		t.Error("expected readiness to be false after shutdown")
	}
}
