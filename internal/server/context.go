package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vishalsachdev/eventbrite-mcp/internal/eventbrite"
	"github.com/vishalsachdev/eventbrite-mcp/internal/instrumentation"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx         context.Context
	cancel      context.CancelFunc
	cfg         eventbrite.Config
	client      *eventbrite.Client
	normalizer  *eventbrite.Normalizer
	collector   *eventbrite.Collector
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	mu          sync.RWMutex
	shutdown    bool
}

// NewServerContext creates a new server context
func NewServerContext(ctx context.Context, cfg eventbrite.Config, logger *slog.Logger) (*ServerContext, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	client, err := eventbrite.NewClient(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create Eventbrite client: %w", err)
	}

	resolver := eventbrite.NewResolver(cfg, client)

	return &ServerContext{
		ctx:        shutdownCtx,
		cancel:     cancel,
		cfg:        cfg,
		client:     client,
		normalizer: eventbrite.NewNormalizer(cfg.StartFloorDate(), cfg.PageSize),
		collector:  eventbrite.NewCollector(client, resolver, cfg, logger),
		shutdown:   false,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the server configuration
func (sc *ServerContext) Config() eventbrite.Config {
	return sc.cfg
}

// Eventbrite returns the Eventbrite API client
func (sc *ServerContext) Eventbrite() *eventbrite.Client {
	return sc.client
}

// Normalizer returns the query normalizer
func (sc *ServerContext) Normalizer() *eventbrite.Normalizer {
	return sc.normalizer
}

// Collector returns the paginated event collector
func (sc *ServerContext) Collector() *eventbrite.Collector {
	return sc.collector
}

// SetMetrics sets the metrics recorder used by instrumented tool handlers
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// Metrics returns the metrics recorder, or nil if instrumentation is disabled
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger used by instrumented tool handlers
func (sc *ServerContext) SetAuditLogger(al *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = al
}

// AuditLogger returns the audit logger, or nil if audit logging is disabled
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// IsShutdown returns whether the server is shutting down
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown gracefully shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()

	return nil
}
