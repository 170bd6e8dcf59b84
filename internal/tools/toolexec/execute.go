package toolexec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/slidescribe/slidescribe/internal/logging"
	"github.com/slidescribe/slidescribe/internal/tools/schema"
)

// Execute runs one tool invocation through the shared pipeline:
//
//  1. reject absent arguments,
//  2. validate the raw arguments against the tool's schema,
//  3. invoke the handler with the typed arguments,
//  4. normalize any returned error or recovered panic.
//
// Every failure comes back as an error envelope; Execute never returns
// nil and never lets a panic escape.
func Execute[H any, T any](
	ctx context.Context,
	handle H,
	name string,
	rawArgs any,
	validator schema.Validator[T],
	fn func(ctx context.Context, handle H, args T) (*Envelope, error),
) (envelope *Envelope) {
	defer func() {
		if recovered := recover(); recovered != nil {
			envelope = recoveredFailure(ctx, name, recovered)
		}
	}()

	if rawArgs == nil {
		slog.WarnContext(ctx, "tool invoked without arguments", logging.Tool(name))
		return Failure(CodeInvalidParams, fmt.Sprintf("Missing arguments for tool %q.", name))
	}

	args, violations := validator.Validate(rawArgs)
	if len(violations) > 0 {
		detail := schema.JoinViolations(violations)
		slog.WarnContext(ctx, "tool arguments failed validation",
			logging.Tool(name),
			slog.String("violations", detail))
		return Failure(CodeInvalidParams, fmt.Sprintf("Invalid arguments for tool %q: %s", name, detail))
	}

	result, err := fn(ctx, handle, args)
	if err != nil {
		var structured *StructuredError
		if errors.As(err, &structured) {
			slog.ErrorContext(ctx, "tool execution failed",
				logging.Tool(name),
				slog.String("code", string(structured.Code)),
				logging.Err(err))
			return Failure(structured.Code, structured.Message)
		}
		slog.ErrorContext(ctx, "tool execution failed", logging.Tool(name), logging.Err(err))
		return Failure(CodeInternalError, fmt.Sprintf("Failed to execute tool %q: %v", name, err))
	}
	return result
}

// recoveredFailure maps a recovered panic value onto the failure taxonomy.
// Classified errors pass through; plain errors and strings keep their
// message; anything else becomes an unknown internal error.
func recoveredFailure(ctx context.Context, name string, recovered any) *Envelope {
	slog.ErrorContext(ctx, "tool execution panicked",
		logging.Tool(name),
		slog.Any("panic", recovered))

	switch v := recovered.(type) {
	case *StructuredError:
		return Failure(v.Code, v.Message)
	case error:
		var structured *StructuredError
		if errors.As(v, &structured) {
			return Failure(structured.Code, structured.Message)
		}
		return Failure(CodeInternalError, fmt.Sprintf("Failed to execute tool %q: %v", name, v))
	case string:
		return Failure(CodeInternalError, fmt.Sprintf("Failed to execute tool %q: %s", name, v))
	default:
		return Failure(CodeInternalError, fmt.Sprintf("Failed to execute tool %q: Unknown error", name))
	}
}
