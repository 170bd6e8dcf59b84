package schema

import (
	"fmt"
	"strings"
)

// Violation reasons. ReasonRequired covers absent fields; ReasonEmpty is a
// distinct message for present-but-empty strings and arrays so callers can
// tell the two cases apart.
const (
	ReasonRequired = "Required"
	ReasonEmpty    = "Must not be empty"
)

// Violation describes a single failed constraint: the dot-separated path
// to the field and a human-readable reason.
type Violation struct {
	Path   string
	Reason string
}

// String renders the violation as "<path>: <reason>".
func (v Violation) String() string {
	if v.Path == "" {
		return v.Reason
	}
	return fmt.Sprintf("%s: %s", v.Path, v.Reason)
}

// JoinViolations renders a violation list the way tool error messages
// expect it: entries joined by "; " in declaration order.
func JoinViolations(violations []Violation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, "; ")
}

// Validator validates an untyped argument value into typed arguments T.
// A non-empty violation list means T must be ignored.
type Validator[T any] interface {
	Validate(raw any) (T, []Violation)
}

// Fields reads values out of a raw argument map, collecting violations as
// it goes. It is the building block tool schemas are written with.
type Fields struct {
	args       map[string]any
	violations []Violation
}

// NewFields wraps a raw argument value for field extraction. A non-object
// value yields a single top-level violation and an empty field set.
func NewFields(raw any) *Fields {
	if raw == nil {
		return &Fields{args: map[string]any{}, violations: []Violation{{Reason: "Expected object"}}}
	}
	args, ok := raw.(map[string]any)
	if !ok {
		return &Fields{args: map[string]any{}, violations: []Violation{{Reason: fmt.Sprintf("Expected object, got %T", raw)}}}
	}
	return &Fields{args: args}
}

// Violations returns every violation collected so far, in field order.
func (f *Fields) Violations() []Violation {
	return f.violations
}

func (f *Fields) addViolation(path, reason string) {
	f.violations = append(f.violations, Violation{Path: path, Reason: reason})
}

// RequiredString extracts a required, non-empty string field.
// Absent fields report Required; present empty strings report a distinct
// emptiness reason.
func (f *Fields) RequiredString(name string) string {
	value, ok := f.args[name]
	if !ok || value == nil {
		f.addViolation(name, ReasonRequired)
		return ""
	}
	s, ok := value.(string)
	if !ok {
		f.addViolation(name, fmt.Sprintf("Expected string, got %T", value))
		return ""
	}
	if s == "" {
		f.addViolation(name, ReasonEmpty)
		return ""
	}
	return s
}

// OptionalString extracts an optional string field. The second return
// reports presence, so callers can distinguish absent from empty and pass
// absence through verbatim.
func (f *Fields) OptionalString(name string) (string, bool) {
	value, ok := f.args[name]
	if !ok || value == nil {
		return "", false
	}
	s, ok := value.(string)
	if !ok {
		f.addViolation(name, fmt.Sprintf("Expected string, got %T", value))
		return "", false
	}
	return s, true
}

// OptionalBool extracts an optional boolean field, defaulting to false.
func (f *Fields) OptionalBool(name string) bool {
	value, ok := f.args[name]
	if !ok || value == nil {
		return false
	}
	b, ok := value.(bool)
	if !ok {
		f.addViolation(name, fmt.Sprintf("Expected boolean, got %T", value))
		return false
	}
	return b
}

// RequiredArray extracts a required, non-empty array field. Elements are
// passed through untyped; tools that forward opaque request objects to the
// remote service must not reshape them.
func (f *Fields) RequiredArray(name string) []any {
	value, ok := f.args[name]
	if !ok || value == nil {
		f.addViolation(name, ReasonRequired)
		return nil
	}
	arr, ok := value.([]any)
	if !ok {
		f.addViolation(name, fmt.Sprintf("Expected array, got %T", value))
		return nil
	}
	if len(arr) == 0 {
		f.addViolation(name, ReasonEmpty)
		return nil
	}
	return arr
}

// OptionalObject extracts an optional object field, passed through opaque.
// Absence yields nil.
func (f *Fields) OptionalObject(name string) map[string]any {
	value, ok := f.args[name]
	if !ok || value == nil {
		return nil
	}
	obj, ok := value.(map[string]any)
	if !ok {
		f.addViolation(name, fmt.Sprintf("Expected object, got %T", value))
		return nil
	}
	return obj
}
