package slides

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/slidescribe/slidescribe/internal/tools/toolexec"
)

func TestNormalizeErrorUsesAPIMessage(t *testing.T) {
	err := &googleapi.Error{Code: 403, Message: "Permission denied"}

	structured := NormalizeError(context.Background(), "get_page", err)
	require.NotNil(t, structured)
	assert.Equal(t, toolexec.CodeInternalError, structured.Code)
	assert.Equal(t, "Remote API Error in get_page: Permission denied", structured.Message)
}

func TestNormalizeErrorWrappedAPIError(t *testing.T) {
	err := fmt.Errorf("call failed: %w", &googleapi.Error{Code: 404, Message: "Requested entity was not found."})

	structured := NormalizeError(context.Background(), "get_page", err)
	assert.Equal(t, "Remote API Error in get_page: Requested entity was not found.", structured.Message)
}

func TestNormalizeErrorAPIErrorWithoutMessage(t *testing.T) {
	err := &googleapi.Error{Code: 500}

	structured := NormalizeError(context.Background(), "batch_update_presentation", err)
	assert.Equal(t, "Remote API Error in batch_update_presentation: HTTP 500", structured.Message)
}

func TestNormalizeErrorPlainError(t *testing.T) {
	structured := NormalizeError(context.Background(), "create_presentation", errors.New("connection refused"))
	assert.Equal(t, "Remote API Error in create_presentation: connection refused", structured.Message)
}

func TestNormalizeErrorNil(t *testing.T) {
	structured := NormalizeError(context.Background(), "get_presentation", nil)
	assert.Equal(t, "Remote API Error in get_presentation: Unknown Remote API error", structured.Message)
}

func TestDecodeBatchUpdate(t *testing.T) {
	requests := []any{
		map[string]any{
			"createSlide": map[string]any{"objectId": "new-slide"},
		},
	}
	writeControl := map[string]any{"requiredRevisionId": "rev-7"}

	decoded, wc, err := DecodeBatchUpdate(requests, writeControl)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.NotNil(t, decoded[0].CreateSlide)
	assert.Equal(t, "new-slide", decoded[0].CreateSlide.ObjectId)
	require.NotNil(t, wc)
	assert.Equal(t, "rev-7", wc.RequiredRevisionId)
}

func TestDecodeBatchUpdateRejectsUnknownRequestKey(t *testing.T) {
	// a typo'd request kind must fail loudly, not decode to an empty request
	requests := []any{
		map[string]any{
			"craeteSlide": map[string]any{"objectId": "new-slide"},
		},
	}

	_, _, err := DecodeBatchUpdate(requests, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requests[0]")
	assert.Contains(t, err.Error(), "craeteSlide")
}

func TestDecodeBatchUpdateNamesOffendingEntry(t *testing.T) {
	requests := []any{
		map[string]any{"createSlide": map[string]any{"objectId": "ok"}},
		map[string]any{"deleteOjbect": map[string]any{"objectId": "x"}},
	}

	_, _, err := DecodeBatchUpdate(requests, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requests[1]")
}

func TestDecodeBatchUpdateRejectsUnknownWriteControlKey(t *testing.T) {
	requests := []any{map[string]any{"createSlide": map[string]any{}}}

	_, _, err := DecodeBatchUpdate(requests, map[string]any{"requiredRevisoinId": "rev-7"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writeControl")
}

func TestDecodeBatchUpdateNoWriteControl(t *testing.T) {
	decoded, wc, err := DecodeBatchUpdate([]any{map[string]any{"deleteObject": map[string]any{"objectId": "x"}}}, nil)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Nil(t, wc)
}
