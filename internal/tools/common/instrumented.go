package common

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidescribe/slidescribe/internal/instrumentation"
	"github.com/slidescribe/slidescribe/internal/logging"
	"github.com/slidescribe/slidescribe/internal/server"
	"github.com/slidescribe/slidescribe/internal/tools/toolexec"
)

// EnvelopeHandler is a tool handler that runs the execution pipeline and
// produces a result envelope. The wrappers below convert it into the
// protocol-level handler signature.
type EnvelopeHandler func(ctx context.Context, request mcp.CallToolRequest) *toolexec.Envelope

// PresentationIDFromArgs extracts the target presentation ID from raw
// tool arguments, for audit records. Returns empty when absent or not a
// string; validation rejects those separately.
func PresentationIDFromArgs(args map[string]any) string {
	if args == nil {
		return ""
	}
	if id, ok := args["presentationId"].(string); ok {
		return id
	}
	return ""
}

// InstrumentedToolHandler wraps an envelope handler with metrics and
// audit logging, and converts it into the protocol handler signature.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(
	toolName string,
	sc *server.ServerContext,
	handler EnvelopeHandler,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return instrumented(toolName, "", "", sc, handler)
}

// InstrumentedToolHandlerWithService is like InstrumentedToolHandler but
// also records the Google service and operation type for more detailed
// metrics.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandlerWithService("my_tool", "slides", "get", sc, handler))
func InstrumentedToolHandlerWithService(
	toolName string,
	serviceName string,
	operation string,
	sc *server.ServerContext,
	handler EnvelopeHandler,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return instrumented(toolName, serviceName, operation, sc, handler)
}

func instrumented(
	toolName, serviceName, operation string,
	sc *server.ServerContext,
	handler EnvelopeHandler,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := sc.Metrics()
		auditLogger := sc.AuditLogger()

		// Without instrumentation, skip the bookkeeping entirely
		if metrics == nil && auditLogger == nil {
			return handler(ctx, request).ToCallToolResult(), nil
		}

		start := time.Now()
		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(ctx)
		if serviceName != "" {
			invocation.WithService(serviceName, operation)
		}
		if id := PresentationIDFromArgs(request.GetArguments()); id != "" {
			invocation.WithPresentation(id)
		}

		envelope := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if envelope.IsError {
			status = instrumentation.StatusError
			invocation.CompleteWithError(string(envelope.Code), envelope.Text)
		} else {
			invocation.CompleteSuccess()
		}

		attrs := []any{
			logging.Tool(toolName),
			logging.Status(status),
			slog.Duration(logging.KeyDuration, duration),
		}
		if serviceName != "" {
			attrs = append(attrs, logging.Service(serviceName), logging.Operation(operation))
		}
		slog.DebugContext(ctx, "tool invocation completed", attrs...)

		if metrics != nil {
			metrics.RecordToolInvocationWithPresentation(ctx, toolName, status, invocation.PresentationID, duration)
			if envelope.IsError {
				metrics.RecordToolError(ctx, toolName, string(envelope.Code))
			}
			if serviceName != "" {
				metrics.RecordGoogleAPIOperation(ctx, serviceName, operation, status, duration)
			}
		}

		if auditLogger != nil {
			auditLogger.LogToolInvocation(invocation)
		}

		return envelope.ToCallToolResult(), nil
	}
}
