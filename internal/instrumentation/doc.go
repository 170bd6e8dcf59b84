// Package instrumentation provides OpenTelemetry-based observability for
// the server: metrics, tracing, and audit logging of tool invocations.
//
// # Metrics
//
// Metrics are exported via Prometheus (default), OTLP, or stdout. The
// recorder covers HTTP transport requests, Slides API operations, and
// tool invocations, each with duration histograms.
//
// # Tracing
//
// Tracing is disabled by default and can be enabled with an OTLP or
// stdout exporter. Spans cover tool execution and remote API calls.
//
// # Audit logging
//
// Every tool invocation produces a structured audit record through slog:
// tool name, target presentation, operation, duration, and outcome.
// Presentation IDs are high-cardinality and only appear in metric labels
// when detailed labels are explicitly enabled; audit log records always
// carry them.
//
// # Configuration
//
// All behavior is configured through environment variables, see
// DefaultConfig. Instrumentation as a whole can be disabled with
// INSTRUMENTATION_ENABLED=false, in which case all recorders become
// no-ops.
package instrumentation
