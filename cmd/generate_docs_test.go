package cmd

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestGenerateToolMarkdown(t *testing.T) {
	tool := mcp.NewTool("get_page",
		mcp.WithDescription("Get details about a specific page (slide) in a presentation"),
		mcp.WithString("presentationId",
			mcp.Required(),
			mcp.Description("The ID of the presentation"),
		),
		mcp.WithString("pageObjectId",
			mcp.Required(),
			mcp.Description("The object ID of the page to retrieve"),
		),
	)

	md := generateToolMarkdown(tool)

	if !strings.Contains(md, "### get_page") {
		t.Errorf("Expected tool heading, got:\n%s", md)
	}
	if !strings.Contains(md, "- `presentationId` (required): The ID of the presentation") {
		t.Errorf("Expected required argument line, got:\n%s", md)
	}
	if !strings.Contains(md, "- `pageObjectId` (required):") {
		t.Errorf("Expected pageObjectId line, got:\n%s", md)
	}
}

func TestGenerateToolMarkdownOptionalArgs(t *testing.T) {
	tool := mcp.NewTool("summarize_presentation",
		mcp.WithDescription("Summarize a presentation"),
		mcp.WithString("presentationId",
			mcp.Required(),
			mcp.Description("The ID of the presentation to summarize"),
		),
		mcp.WithBoolean("include_notes",
			mcp.Description("Whether to include speaker notes in the summary (default: false)"),
		),
	)

	md := generateToolMarkdown(tool)

	if !strings.Contains(md, "- `include_notes` (optional):") {
		t.Errorf("Expected optional argument line, got:\n%s", md)
	}
}

func TestGenerateToolsMarkdownSortsTools(t *testing.T) {
	tools := []mcp.Tool{
		mcp.NewTool("summarize_presentation", mcp.WithDescription("b")),
		mcp.NewTool("create_presentation", mcp.WithDescription("a")),
	}

	md := generateToolsMarkdown(tools)

	create := strings.Index(md, "### create_presentation")
	summarize := strings.Index(md, "### summarize_presentation")
	if create == -1 || summarize == -1 {
		t.Fatalf("Expected both tool headings, got:\n%s", md)
	}
	if create > summarize {
		t.Error("Expected tools sorted by name")
	}
}
