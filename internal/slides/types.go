package slides

// PresentationSummary is the condensed view of a presentation produced by
// the summarize tool: counts, per-slide text, and revision provenance.
type PresentationSummary struct {
	Title        string         `json:"title"`
	SlideCount   int            `json:"slideCount"`
	LastModified string         `json:"lastModified"`
	Slides       []SlideSummary `json:"slides"`
}

// SlideSummary carries the extracted text of a single slide. Notes are
// included only when requested and non-empty.
type SlideSummary struct {
	SlideNumber int    `json:"slideNumber"`
	SlideID     string `json:"slideId"`
	Content     string `json:"content"`
	Notes       string `json:"notes,omitempty"`
}

// EmptyPresentationSummary is the degenerate summary for a presentation
// with no slides. It deliberately has no slides field.
type EmptyPresentationSummary struct {
	Title      string `json:"title"`
	SlideCount int    `json:"slideCount"`
	Summary    string `json:"summary"`
}
