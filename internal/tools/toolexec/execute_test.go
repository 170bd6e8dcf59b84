package toolexec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidescribe/slidescribe/internal/tools/schema"
)

type echoArgs struct {
	Title string
}

type echoValidator struct{}

func (echoValidator) Validate(raw any) (echoArgs, []schema.Violation) {
	f := schema.NewFields(raw)
	args := echoArgs{Title: f.RequiredString("title")}
	return args, f.Violations()
}

type twoFieldArgs struct {
	PresentationID string
	PageObjectID   string
}

type twoFieldValidator struct{}

func (twoFieldValidator) Validate(raw any) (twoFieldArgs, []schema.Violation) {
	f := schema.NewFields(raw)
	args := twoFieldArgs{
		PresentationID: f.RequiredString("presentationId"),
		PageObjectID:   f.RequiredString("pageObjectId"),
	}
	return args, f.Violations()
}

func TestExecuteMissingArguments(t *testing.T) {
	invoked := false
	env := Execute(context.Background(), struct{}{}, "create_presentation", nil, echoValidator{},
		func(context.Context, struct{}, echoArgs) (*Envelope, error) {
			invoked = true
			return Success("unreachable"), nil
		})

	assert.False(t, invoked, "handler must not run when arguments are absent")
	assert.True(t, env.IsError)
	assert.Equal(t, CodeInvalidParams, env.Code)
	assert.Equal(t, `Missing arguments for tool "create_presentation".`, env.Text)
}

func TestExecuteValidationFailureListsEveryViolation(t *testing.T) {
	invoked := false
	env := Execute(context.Background(), struct{}{}, "get_page", map[string]any{}, twoFieldValidator{},
		func(context.Context, struct{}, twoFieldArgs) (*Envelope, error) {
			invoked = true
			return Success("unreachable"), nil
		})

	assert.False(t, invoked, "handler must not run when validation fails")
	assert.True(t, env.IsError)
	assert.Equal(t, CodeInvalidParams, env.Code)
	assert.Equal(t, `Invalid arguments for tool "get_page": presentationId: Required; pageObjectId: Required`, env.Text)
}

func TestExecuteSuccessPassesTypedArgs(t *testing.T) {
	env := Execute(context.Background(), "handle-value", "create_presentation",
		map[string]any{"title": "Roadmap"}, echoValidator{},
		func(_ context.Context, handle string, args echoArgs) (*Envelope, error) {
			assert.Equal(t, "handle-value", handle)
			return Success("created " + args.Title), nil
		})

	assert.False(t, env.IsError)
	assert.Equal(t, "created Roadmap", env.Text)
}

func TestExecutePlainErrorBecomesInternalError(t *testing.T) {
	env := Execute(context.Background(), struct{}{}, "get_presentation",
		map[string]any{"title": "x"}, echoValidator{},
		func(context.Context, struct{}, echoArgs) (*Envelope, error) {
			return nil, errors.New("connection reset")
		})

	assert.True(t, env.IsError)
	assert.Equal(t, CodeInternalError, env.Code)
	assert.Equal(t, `Failed to execute tool "get_presentation": connection reset`, env.Text)
}

func TestExecuteStructuredErrorPassesThrough(t *testing.T) {
	structured := NewStructuredError(CodeInternalError, "Remote API Error in get_presentation: Permission denied")
	env := Execute(context.Background(), struct{}{}, "get_presentation",
		map[string]any{"title": "x"}, echoValidator{},
		func(context.Context, struct{}, echoArgs) (*Envelope, error) {
			return nil, structured
		})

	assert.True(t, env.IsError)
	assert.Equal(t, CodeInternalError, env.Code)
	assert.Equal(t, "Remote API Error in get_presentation: Permission denied", env.Text,
		"pre-classified failures must not be re-wrapped")
}

func TestExecuteWrappedStructuredErrorPassesThrough(t *testing.T) {
	structured := NewStructuredError(CodeInvalidRequest, "presentation is read-only")
	wrapped := fmt.Errorf("handler: %w", structured)
	env := Execute(context.Background(), struct{}{}, "batch_update_presentation",
		map[string]any{"title": "x"}, echoValidator{},
		func(context.Context, struct{}, echoArgs) (*Envelope, error) {
			return nil, wrapped
		})

	assert.True(t, env.IsError)
	assert.Equal(t, CodeInvalidRequest, env.Code)
	assert.Equal(t, "presentation is read-only", env.Text)
}

func TestExecuteRecoversPanics(t *testing.T) {
	tests := []struct {
		name     string
		panicked any
		wantText string
		wantCode ErrorCode
	}{
		{
			name:     "structured error",
			panicked: NewStructuredError(CodeInvalidParams, "bad page reference"),
			wantText: "bad page reference",
			wantCode: CodeInvalidParams,
		},
		{
			name:     "plain error",
			panicked: errors.New("nil service"),
			wantText: `Failed to execute tool "summarize_presentation": nil service`,
			wantCode: CodeInternalError,
		},
		{
			name:     "string value",
			panicked: "index out of range",
			wantText: `Failed to execute tool "summarize_presentation": index out of range`,
			wantCode: CodeInternalError,
		},
		{
			name:     "opaque value",
			panicked: 42,
			wantText: `Failed to execute tool "summarize_presentation": Unknown error`,
			wantCode: CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Execute(context.Background(), struct{}{}, "summarize_presentation",
				map[string]any{"title": "x"}, echoValidator{},
				func(context.Context, struct{}, echoArgs) (*Envelope, error) {
					panic(tt.panicked)
				})

			require.NotNil(t, env)
			assert.True(t, env.IsError)
			assert.Equal(t, tt.wantCode, env.Code)
			assert.Equal(t, tt.wantText, env.Text)
		})
	}
}

func TestJSONResultIndentation(t *testing.T) {
	env := JSONResult(map[string]any{"title": "Deck", "slideCount": 2})
	require.False(t, env.IsError)

	var round map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.Text), &round))
	assert.Equal(t, "Deck", round["title"])

	expected, err := json.MarshalIndent(map[string]any{"title": "Deck", "slideCount": 2}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(expected), env.Text)
}

func TestToCallToolResult(t *testing.T) {
	ok := Success("done").ToCallToolResult()
	assert.False(t, ok.IsError)

	fail := Failure(CodeInternalError, "boom").ToCallToolResult()
	assert.True(t, fail.IsError)
}
