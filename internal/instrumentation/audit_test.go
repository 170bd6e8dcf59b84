package instrumentation

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolInvocationStatus(t *testing.T) {
	ti := NewToolInvocation("get_presentation")
	assert.Equal(t, StatusError, ti.Status())

	ti.CompleteSuccess()
	assert.Equal(t, StatusSuccess, ti.Status())
}

func TestToolInvocationCompleteWithError(t *testing.T) {
	ti := NewToolInvocation("batch_update_presentation").
		WithPresentation("pid-1").
		WithService(ServiceSlides, OperationBatchUpdate)

	time.Sleep(time.Millisecond)
	ti.CompleteWithError("InternalError", "Remote API Error in batch_update_presentation: Permission denied")

	assert.False(t, ti.Success)
	assert.Equal(t, "InternalError", ti.ErrorCode)
	assert.Greater(t, ti.Duration, time.Duration(0))
}

func TestToolInvocationLogAttrs(t *testing.T) {
	ti := NewToolInvocation("summarize_presentation").
		WithPresentation("pid-9").
		WithService(ServiceSlides, OperationSummarize)
	ti.CompleteSuccess()

	attrs := ti.LogAttrs()
	keys := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		keys[a.Key] = true
	}

	assert.True(t, keys["tool"])
	assert.True(t, keys["presentation_id"])
	assert.True(t, keys["service"])
	assert.True(t, keys["operation"])
	assert.True(t, keys["duration"])
	assert.True(t, keys["success"])
	assert.False(t, keys["error"], "successful invocations must not carry an error attribute")
	assert.False(t, keys["error_code"])
}

func auditRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestAuditLoggerSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	al := NewAuditLogger(logger)

	ti := NewToolInvocation("create_presentation").
		WithService(ServiceSlides, OperationCreate)
	ti.CompleteSuccess()
	al.LogToolInvocation(ti)

	record := auditRecord(t, &buf)
	assert.Equal(t, "tool_executed", record["msg"])
	assert.Equal(t, "create_presentation", record["tool"])
	assert.Equal(t, true, record["success"])
}

func TestAuditLoggerFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	al := NewAuditLogger(logger)

	ti := NewToolInvocation("get_page").
		WithPresentation("pid-1").
		WithService(ServiceSlides, OperationGetPage)
	ti.CompleteWithError("InvalidParams", `Invalid arguments for tool "get_page": pageObjectId: Required`)
	al.LogToolInvocation(ti)

	record := auditRecord(t, &buf)
	assert.Equal(t, "tool_failed", record["msg"])
	assert.Equal(t, "InvalidParams", record["error_code"])
	assert.Equal(t, "pid-1", record["presentation_id"])
}

func TestAuditLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	al := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{Enabled: false})

	ti := NewToolInvocation("get_presentation")
	ti.CompleteSuccess()
	al.LogToolInvocation(ti)

	assert.Zero(t, buf.Len())
}
