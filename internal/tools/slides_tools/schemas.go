package slides_tools

import (
	"github.com/slidescribe/slidescribe/internal/tools/schema"
)

// Typed arguments for each tool, produced by the validators below. The
// validator and the mcp tool descriptor for a tool must stay in sync;
// the descriptor is what clients see, the validator is what the pipeline
// enforces.

type createArgs struct {
	Title string
}

type createValidator struct{}

func (createValidator) Validate(raw any) (createArgs, []schema.Violation) {
	f := schema.NewFields(raw)
	args := createArgs{
		Title: f.RequiredString("title"),
	}
	return args, f.Violations()
}

type getArgs struct {
	PresentationID string
	// Fields is a field mask restricting the response; empty means the
	// full presentation.
	Fields string
}

type getValidator struct{}

func (getValidator) Validate(raw any) (getArgs, []schema.Violation) {
	f := schema.NewFields(raw)
	args := getArgs{
		PresentationID: f.RequiredString("presentationId"),
	}
	args.Fields, _ = f.OptionalString("fields")
	return args, f.Violations()
}

type batchUpdateArgs struct {
	PresentationID string
	// Requests and WriteControl are forwarded opaque; the remote service
	// validates their shape.
	Requests     []any
	WriteControl map[string]any
}

type batchUpdateValidator struct{}

func (batchUpdateValidator) Validate(raw any) (batchUpdateArgs, []schema.Violation) {
	f := schema.NewFields(raw)
	args := batchUpdateArgs{
		PresentationID: f.RequiredString("presentationId"),
		Requests:       f.RequiredArray("requests"),
		WriteControl:   f.OptionalObject("writeControl"),
	}
	return args, f.Violations()
}

type getPageArgs struct {
	PresentationID string
	PageObjectID   string
}

type getPageValidator struct{}

func (getPageValidator) Validate(raw any) (getPageArgs, []schema.Violation) {
	f := schema.NewFields(raw)
	args := getPageArgs{
		PresentationID: f.RequiredString("presentationId"),
		PageObjectID:   f.RequiredString("pageObjectId"),
	}
	return args, f.Violations()
}

type summarizeArgs struct {
	PresentationID string
	IncludeNotes   bool
}

type summarizeValidator struct{}

func (summarizeValidator) Validate(raw any) (summarizeArgs, []schema.Violation) {
	f := schema.NewFields(raw)
	args := summarizeArgs{
		PresentationID: f.RequiredString("presentationId"),
		IncludeNotes:   f.OptionalBool("include_notes"),
	}
	return args, f.Violations()
}
