package slides

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	slides "google.golang.org/api/slides/v1"
)

func shapeWithRuns(contents ...string) *slides.PageElement {
	elements := make([]*slides.TextElement, 0, len(contents))
	for _, c := range contents {
		elements = append(elements, &slides.TextElement{TextRun: &slides.TextRun{Content: c}})
	}
	return &slides.PageElement{Shape: &slides.Shape{Text: &slides.TextContent{TextElements: elements}}}
}

func tableWithCells(cells ...string) *slides.PageElement {
	tableCells := make([]*slides.TableCell, 0, len(cells))
	for _, c := range cells {
		tableCells = append(tableCells, &slides.TableCell{
			Text: &slides.TextContent{TextElements: []*slides.TextElement{
				{TextRun: &slides.TextRun{Content: c}},
			}},
		})
	}
	return &slides.PageElement{Table: &slides.Table{TableRows: []*slides.TableRow{{TableCells: tableCells}}}}
}

func TestSummarizeEmptyPresentation(t *testing.T) {
	got := Summarize(&slides.Presentation{Title: "Empty Deck"}, false)

	empty, ok := got.(*EmptyPresentationSummary)
	require.True(t, ok, "zero slides must produce the degenerate shape")
	assert.Equal(t, "Empty Deck", empty.Title)
	assert.Equal(t, 0, empty.SlideCount)
	assert.Equal(t, "This presentation contains no slides.", empty.Summary)

	// the degenerate shape must not carry a slides key
	data, err := json.Marshal(got)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	_, hasSlides := raw["slides"]
	assert.False(t, hasSlides)
}

func TestSummarizeDefaultsTitleAndRevision(t *testing.T) {
	p := &slides.Presentation{
		Slides: []*slides.Page{{ObjectId: "p1"}},
	}

	got := Summarize(p, false)
	summary, ok := got.(*PresentationSummary)
	require.True(t, ok)
	assert.Equal(t, "Untitled Presentation", summary.Title)
	assert.Equal(t, "Unknown", summary.LastModified)
	assert.Equal(t, 1, summary.SlideCount)
}

func TestSummarizeRevisionLabel(t *testing.T) {
	p := &slides.Presentation{
		Title:      "Roadmap",
		RevisionId: "abc123",
		Slides:     []*slides.Page{{ObjectId: "p1"}},
	}

	summary := Summarize(p, false).(*PresentationSummary)
	assert.Equal(t, "Revision abc123", summary.LastModified)
}

func TestSummarizeSlideIDFallback(t *testing.T) {
	p := &slides.Presentation{
		Title: "Deck",
		Slides: []*slides.Page{
			{ObjectId: "intro"},
			{}, // no object ID
			{ObjectId: "outro"},
		},
	}

	summary := Summarize(p, false).(*PresentationSummary)
	require.Len(t, summary.Slides, 3)
	assert.Equal(t, "intro", summary.Slides[0].SlideID)
	assert.Equal(t, "slide_2", summary.Slides[1].SlideID)
	assert.Equal(t, "outro", summary.Slides[2].SlideID)
	assert.Equal(t, 2, summary.Slides[1].SlideNumber)
}

func TestExtractSlideTextFiltersBlankRuns(t *testing.T) {
	slide := &slides.Page{
		ObjectId: "p1",
		PageElements: []*slides.PageElement{
			shapeWithRuns("Real Content", "   ", ""),
			{Shape: &slides.Shape{}}, // shape without text
		},
	}

	assert.Equal(t, "Real Content", extractSlideText(slide))
}

func TestExtractSlideTextIncludesTables(t *testing.T) {
	slide := &slides.Page{
		ObjectId: "p1",
		PageElements: []*slides.PageElement{
			shapeWithRuns("Header\n"),
			tableWithCells("Cell A", " Cell B "),
		},
	}

	assert.Equal(t, "Header Cell A Cell B", extractSlideText(slide))
}

func TestNotesOnlyIncludedWhenRequested(t *testing.T) {
	slide := &slides.Page{
		ObjectId: "p1",
		SlideProperties: &slides.SlideProperties{
			NotesPage: &slides.Page{
				PageElements: []*slides.PageElement{
					shapeWithRuns("Remember ", "the demo"),
					tableWithCells("table text must be ignored"),
				},
			},
		},
	}
	p := &slides.Presentation{Title: "Deck", Slides: []*slides.Page{slide}}

	without := Summarize(p, false).(*PresentationSummary)
	assert.Empty(t, without.Slides[0].Notes)

	with := Summarize(p, true).(*PresentationSummary)
	assert.Equal(t, "Remember  the demo", with.Slides[0].Notes)

	// empty notes are omitted from the JSON entirely
	data, err := json.Marshal(without.Slides[0])
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	_, hasNotes := raw["notes"]
	assert.False(t, hasNotes)
}

func TestNotesMissingNotesPage(t *testing.T) {
	p := &slides.Presentation{
		Title:  "Deck",
		Slides: []*slides.Page{{ObjectId: "p1"}},
	}

	summary := Summarize(p, true).(*PresentationSummary)
	assert.Empty(t, summary.Slides[0].Notes)
}
