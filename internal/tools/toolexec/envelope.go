package toolexec

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrorCode classifies tool failures. Codes follow the JSON-RPC error
// taxonomy the protocol layer uses so clients can react uniformly.
type ErrorCode string

const (
	CodeInvalidRequest ErrorCode = "InvalidRequest"
	CodeMethodNotFound ErrorCode = "MethodNotFound"
	CodeInvalidParams  ErrorCode = "InvalidParams"
	CodeInternalError  ErrorCode = "InternalError"
)

// StructuredError is a failure that already carries its classification.
// Handlers return it (or wrap it) when they have mapped a failure
// themselves; the pipeline passes it through without re-normalizing.
type StructuredError struct {
	Code    ErrorCode
	Message string
}

func (e *StructuredError) Error() string {
	return e.Message
}

// NewStructuredError builds a classified failure with a formatted message.
func NewStructuredError(code ErrorCode, format string, args ...any) *StructuredError {
	return &StructuredError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Envelope is the uniform tool result: a single text payload plus the
// error flag and, for failures, the classification code. Successful
// results leave Code empty.
type Envelope struct {
	Text    string
	IsError bool
	Code    ErrorCode
}

// Success wraps plain text in a successful envelope.
func Success(text string) *Envelope {
	return &Envelope{Text: text}
}

// Failure wraps a classified message in an error envelope.
func Failure(code ErrorCode, message string) *Envelope {
	return &Envelope{Text: message, IsError: true, Code: code}
}

// JSONResult serializes v as two-space indented JSON into a successful
// envelope. Serialization failures become internal errors.
func JSONResult(v any) *Envelope {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Failure(CodeInternalError, fmt.Sprintf("Failed to serialize result: %v", err))
	}
	return Success(string(data))
}

// ToCallToolResult converts the envelope into the protocol result type.
// The classification code rides inside the message taxonomy; the wire
// carries only the text and the error flag.
func (e *Envelope) ToCallToolResult() *mcp.CallToolResult {
	if e.IsError {
		return mcp.NewToolResultError(e.Text)
	}
	return mcp.NewToolResultText(e.Text)
}
