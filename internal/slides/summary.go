package slides

import (
	"fmt"
	"strings"

	slides "google.golang.org/api/slides/v1"
)

const noSlidesSummary = "This presentation contains no slides."

// Summarize condenses a presentation into its per-slide text. When
// includeNotes is set, speaker notes are extracted from each slide's
// notes page as well. A presentation with no slides yields the degenerate
// no-slides shape instead of an empty slide list.
func Summarize(p *slides.Presentation, includeNotes bool) any {
	title := p.Title
	if title == "" {
		title = "Untitled Presentation"
	}

	if len(p.Slides) == 0 {
		return &EmptyPresentationSummary{
			Title:      title,
			SlideCount: 0,
			Summary:    noSlidesSummary,
		}
	}

	summaries := make([]SlideSummary, 0, len(p.Slides))
	for i, slide := range p.Slides {
		number := i + 1

		slideID := slide.ObjectId
		if slideID == "" {
			slideID = fmt.Sprintf("slide_%d", number)
		}

		summary := SlideSummary{
			SlideNumber: number,
			SlideID:     slideID,
			Content:     extractSlideText(slide),
		}
		if includeNotes {
			summary.Notes = extractNotes(slide)
		}
		summaries = append(summaries, summary)
	}

	return &PresentationSummary{
		Title:        title,
		SlideCount:   len(p.Slides),
		LastModified: revisionLabel(p.RevisionId),
		Slides:       summaries,
	}
}

func revisionLabel(revisionID string) string {
	if revisionID == "" {
		return "Unknown"
	}
	return "Revision " + revisionID
}

// extractSlideText gathers the visible text of a slide: text runs from
// shapes plus every table cell, trimmed and space-joined.
func extractSlideText(slide *slides.Page) string {
	var runs []string
	for _, element := range slide.PageElements {
		if element == nil {
			continue
		}
		if element.Shape != nil {
			runs = appendShapeRuns(runs, element.Shape)
		}
		if element.Table != nil {
			runs = appendTableRuns(runs, element.Table)
		}
	}
	return strings.Join(runs, " ")
}

func appendShapeRuns(runs []string, shape *slides.Shape) []string {
	if shape.Text == nil {
		return runs
	}
	for _, te := range shape.Text.TextElements {
		if te.TextRun == nil {
			continue
		}
		if text := strings.TrimSpace(te.TextRun.Content); text != "" {
			runs = append(runs, text)
		}
	}
	return runs
}

func appendTableRuns(runs []string, table *slides.Table) []string {
	for _, row := range table.TableRows {
		if row == nil {
			continue
		}
		for _, cell := range row.TableCells {
			if cell == nil || cell.Text == nil {
				continue
			}
			for _, te := range cell.Text.TextElements {
				if te.TextRun == nil {
					continue
				}
				if text := strings.TrimSpace(te.TextRun.Content); text != "" {
					runs = append(runs, text)
				}
			}
		}
	}
	return runs
}

// extractNotes gathers the speaker notes from a slide's notes page.
// Only shape text participates; tables on a notes page are skipped.
func extractNotes(slide *slides.Page) string {
	if slide.SlideProperties == nil || slide.SlideProperties.NotesPage == nil {
		return ""
	}

	var notes strings.Builder
	for _, element := range slide.SlideProperties.NotesPage.PageElements {
		if element == nil || element.Shape == nil || element.Shape.Text == nil {
			continue
		}
		for _, te := range element.Shape.Text.TextElements {
			if te.TextRun == nil || te.TextRun.Content == "" {
				continue
			}
			notes.WriteString(te.TextRun.Content)
			notes.WriteString(" ")
		}
	}
	return strings.TrimSpace(notes.String())
}
