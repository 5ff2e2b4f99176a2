// Package server provides the MCP server context and the HTTP and
// metrics servers for the eventbrite-mcp application.
//
// # Key Components
//
// ServerContext owns the Eventbrite API client and the query pipeline
// built on top of it (normalizer, organization resolver, collector).
// It is created once at startup and shared by all tool handlers, which
// also reach the metrics recorder and audit logger through it.
//
// HTTPServer exposes the MCP server over SSE or streamable HTTP with
// health endpoints for Kubernetes probes:
//   - /healthz: liveness probe
//   - /readyz: readiness probe (readiness, shutdown, credentials)
//   - /healthz/detailed: uptime and overall status
//
// MetricsServer serves Prometheus metrics on a dedicated port,
// isolating operational metrics from application traffic.
package server
