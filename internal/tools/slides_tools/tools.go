package slides_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/slidescribe/slidescribe/internal/instrumentation"
	"github.com/slidescribe/slidescribe/internal/server"
	"github.com/slidescribe/slidescribe/internal/slides"
	"github.com/slidescribe/slidescribe/internal/tools/common"
	"github.com/slidescribe/slidescribe/internal/tools/toolexec"
)

// RegisterSlidesTools registers all Slides tools with the MCP server.
// When readOnly is set, the tools that mutate presentations
// (create_presentation, batch_update_presentation) are not registered.
func RegisterSlidesTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if !readOnly {
		createTool := mcp.NewTool("create_presentation",
			mcp.WithDescription("Create a new Google Slides presentation"),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("The title of the new presentation"),
			),
		)
		s.AddTool(createTool, common.InstrumentedToolHandlerWithService(
			"create_presentation", instrumentation.ServiceSlides, instrumentation.OperationCreate, sc,
			func(ctx context.Context, request mcp.CallToolRequest) *toolexec.Envelope {
				return toolexec.Execute(ctx, sc, "create_presentation", request.Params.Arguments, createValidator{}, handleCreate)
			}))

		batchUpdateTool := mcp.NewTool("batch_update_presentation",
			mcp.WithDescription("Apply a series of update requests to a Google Slides presentation. Requests use the Slides API batchUpdate request format and are forwarded verbatim."),
			mcp.WithString("presentationId",
				mcp.Required(),
				mcp.Description("The ID of the presentation to update"),
			),
			mcp.WithArray("requests",
				mcp.Required(),
				mcp.Description("A list of Slides API update requests to apply"),
				mcp.Items(map[string]any{"type": "object"}),
			),
			mcp.WithObject("writeControl",
				mcp.Description("Optional revision control for the update"),
			),
		)
		s.AddTool(batchUpdateTool, common.InstrumentedToolHandlerWithService(
			"batch_update_presentation", instrumentation.ServiceSlides, instrumentation.OperationBatchUpdate, sc,
			func(ctx context.Context, request mcp.CallToolRequest) *toolexec.Envelope {
				return toolexec.Execute(ctx, sc, "batch_update_presentation", request.Params.Arguments, batchUpdateValidator{}, handleBatchUpdate)
			}))
	}

	getTool := mcp.NewTool("get_presentation",
		mcp.WithDescription("Get details about a Google Slides presentation"),
		mcp.WithString("presentationId",
			mcp.Required(),
			mcp.Description("The ID of the presentation to retrieve"),
		),
		mcp.WithString("fields",
			mcp.Description("Optional field mask to restrict the returned fields (e.g. \"slides,title\")"),
		),
	)
	s.AddTool(getTool, common.InstrumentedToolHandlerWithService(
		"get_presentation", instrumentation.ServiceSlides, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) *toolexec.Envelope {
			return toolexec.Execute(ctx, sc, "get_presentation", request.Params.Arguments, getValidator{}, handleGet)
		}))

	getPageTool := mcp.NewTool("get_page",
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
	s.AddTool(getPageTool, common.InstrumentedToolHandlerWithService(
		"get_page", instrumentation.ServiceSlides, instrumentation.OperationGetPage, sc,
		func(ctx context.Context, request mcp.CallToolRequest) *toolexec.Envelope {
			return toolexec.Execute(ctx, sc, "get_page", request.Params.Arguments, getPageValidator{}, handleGetPage)
		}))

	summarizeTool := mcp.NewTool("summarize_presentation",
		mcp.WithDescription("Extract and summarize the text content of a presentation, slide by slide"),
		mcp.WithString("presentationId",
			mcp.Required(),
			mcp.Description("The ID of the presentation to summarize"),
		),
		mcp.WithBoolean("include_notes",
			mcp.Description("Whether to include speaker notes in the summary (default: false)"),
		),
	)
	s.AddTool(summarizeTool, common.InstrumentedToolHandlerWithService(
		"summarize_presentation", instrumentation.ServiceSlides, instrumentation.OperationSummarize, sc,
		func(ctx context.Context, request mcp.CallToolRequest) *toolexec.Envelope {
			return toolexec.Execute(ctx, sc, "summarize_presentation", request.Params.Arguments, summarizeValidator{}, handleSummarize)
		}))

	return nil
}

func handleCreate(ctx context.Context, sc *server.ServerContext, args createArgs) (*toolexec.Envelope, error) {
	presentation, err := sc.SlidesClient().Create(ctx, args.Title)
	if err != nil {
		return nil, slides.NormalizeError(ctx, "create_presentation", err)
	}
	return toolexec.JSONResult(presentation), nil
}

func handleGet(ctx context.Context, sc *server.ServerContext, args getArgs) (*toolexec.Envelope, error) {
	presentation, err := sc.SlidesClient().Get(ctx, args.PresentationID, args.Fields)
	if err != nil {
		return nil, slides.NormalizeError(ctx, "get_presentation", err)
	}
	return toolexec.JSONResult(presentation), nil
}

func handleBatchUpdate(ctx context.Context, sc *server.ServerContext, args batchUpdateArgs) (*toolexec.Envelope, error) {
	requests, writeControl, err := slides.DecodeBatchUpdate(args.Requests, args.WriteControl)
	if err != nil {
		return nil, toolexec.NewStructuredError(toolexec.CodeInvalidParams,
			"Invalid arguments for tool %q: %v", "batch_update_presentation", err)
	}

	response, err := sc.SlidesClient().BatchUpdate(ctx, args.PresentationID, requests, writeControl)
	if err != nil {
		return nil, slides.NormalizeError(ctx, "batch_update_presentation", err)
	}
	return toolexec.JSONResult(response), nil
}

func handleGetPage(ctx context.Context, sc *server.ServerContext, args getPageArgs) (*toolexec.Envelope, error) {
	page, err := sc.SlidesClient().GetPage(ctx, args.PresentationID, args.PageObjectID)
	if err != nil {
		return nil, slides.NormalizeError(ctx, "get_page", err)
	}
	return toolexec.JSONResult(page), nil
}

func handleSummarize(ctx context.Context, sc *server.ServerContext, args summarizeArgs) (*toolexec.Envelope, error) {
	// The summary walk needs the full slide tree including notes pages
	presentation, err := sc.SlidesClient().Get(ctx, args.PresentationID, "")
	if err != nil {
		return nil, slides.NormalizeError(ctx, "summarize_presentation", err)
	}
	return toolexec.JSONResult(slides.Summarize(presentation, args.IncludeNotes)), nil
}
