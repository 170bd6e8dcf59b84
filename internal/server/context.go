package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/slidescribe/slidescribe/internal/instrumentation"
	"github.com/slidescribe/slidescribe/internal/slides"
)

// ServerContext holds the context for the MCP server: the authenticated
// Slides client plus instrumentation hooks. Tool handlers receive it as
// their shared handle.
type ServerContext struct {
	ctx          context.Context
	cancel       context.CancelFunc
	slidesClient *slides.Client
	metrics      *instrumentation.Metrics
	auditLogger  *instrumentation.AuditLogger
	readOnly     bool
	mu           sync.RWMutex
	shutdown     bool
}

// NewServerContext creates a new server context with an authenticated
// Slides client. Credential or service construction failures are fatal;
// without a working client no tool can do anything useful.
func NewServerContext(ctx context.Context, readOnly bool) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	client, err := slides.NewClient(shutdownCtx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create Slides client: %w", err)
	}

	return &ServerContext{
		ctx:          shutdownCtx,
		cancel:       cancel,
		slidesClient: client,
		readOnly:     readOnly,
	}, nil
}

// NewServerContextWithClient creates a server context around an existing
// Slides client. Used by tests.
func NewServerContextWithClient(ctx context.Context, client *slides.Client, readOnly bool) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)
	return &ServerContext{
		ctx:          shutdownCtx,
		cancel:       cancel,
		slidesClient: client,
		readOnly:     readOnly,
	}
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// SlidesClient returns the Slides client.
func (sc *ServerContext) SlidesClient() *slides.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.slidesClient
}

// SetSlidesClient replaces the Slides client.
func (sc *ServerContext) SetSlidesClient(client *slides.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.slidesClient = client
}

// ReadOnly reports whether write tools are disabled.
func (sc *ServerContext) ReadOnly() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.readOnly
}

// Metrics returns the metrics recorder, or nil when instrumentation is
// not configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// AuditLogger returns the audit logger, or nil when audit logging is not
// configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger.
func (sc *ServerContext) SetAuditLogger(logger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = logger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
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
