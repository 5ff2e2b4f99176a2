package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/vishalsachdev/eventbrite-mcp/internal/instrumentation"
)

// HTTPServer exposes an MCP server over HTTP transports alongside
// health endpoints for Kubernetes probes.
type HTTPServer struct {
	mcpServer     *mcpserver.MCPServer
	serverContext *ServerContext
	healthChecker *HealthChecker
	httpServer    *http.Server
	serverType    string // "sse" or "streamable-http"
}

// NewHTTPServer creates a new HTTP transport wrapper for the MCP server
func NewHTTPServer(mcpServer *mcpserver.MCPServer, sc *ServerContext, serverType string) (*HTTPServer, error) {
	if mcpServer == nil {
		return nil, fmt.Errorf("MCP server is required")
	}

	return &HTTPServer{
		mcpServer:     mcpServer,
		serverContext: sc,
		healthChecker: NewHealthChecker(sc),
		serverType:    serverType,
	}, nil
}

// HealthChecker returns the health checker so callers can flip readiness.
func (s *HTTPServer) HealthChecker() *HealthChecker {
	return s.healthChecker
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrumentationMiddleware records request count and latency per
// method, normalized path, and status code.
func (s *HTTPServer) instrumentationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.serverContext == nil {
			next.ServeHTTP(w, r)
			return
		}
		metrics := s.serverContext.Metrics()
		if metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		path := instrumentation.NormalizeMetricPath(r.URL.Path)
		metrics.RecordHTTPRequest(r.Context(), r.Method, path, recorder.status, time.Since(start))
	})
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *HTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	s.healthChecker.RegisterHealthEndpoints(mux)

	// Register MCP endpoints based on server type
	switch s.serverType {
	case "sse":
		sseServer := mcpserver.NewSSEServer(s.mcpServer,
			mcpserver.WithSSEEndpoint("/sse"),
			mcpserver.WithMessageEndpoint("/message"),
		)
		mux.Handle("/sse", s.instrumentationMiddleware(sseServer))
		mux.Handle("/message", s.instrumentationMiddleware(sseServer))

	case "streamable-http":
		streamServer := mcpserver.NewStreamableHTTPServer(s.mcpServer,
			mcpserver.WithEndpointPath("/mcp"),
		)
		mux.Handle("/mcp", s.instrumentationMiddleware(streamServer))

	default:
		return fmt.Errorf("unsupported server type: %s", s.serverType)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.healthChecker.SetReady(false)
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
