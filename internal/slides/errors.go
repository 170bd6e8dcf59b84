package slides

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/api/googleapi"

	"github.com/slidescribe/slidescribe/internal/logging"
	"github.com/slidescribe/slidescribe/internal/tools/toolexec"
)

// NormalizeError maps a failure from the remote Slides service into the
// structured failure taxonomy. The message names the tool whose remote
// call failed and carries the most specific detail available: the API
// error message when the service attached one, the plain error text
// otherwise.
func NormalizeError(ctx context.Context, tool string, err error) *toolexec.StructuredError {
	detail := errorDetail(err)

	slog.ErrorContext(ctx, "remote API call failed",
		logging.Tool(tool),
		logging.Service("slides"),
		logging.Err(err))

	return toolexec.NewStructuredError(toolexec.CodeInternalError,
		"Remote API Error in %s: %s", tool, detail)
}

func errorDetail(err error) string {
	if err == nil {
		return "Unknown Remote API error"
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fmt.Sprintf("HTTP %d", apiErr.Code)
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown Remote API error"
}
