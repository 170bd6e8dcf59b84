// Package slides_tools registers the Google Slides MCP tools: creating
// presentations, reading presentations and pages, applying batch
// updates, and producing text summaries. Every handler runs through the
// shared execution pipeline so argument failures and remote API errors
// come back as uniform tool results.
package slides_tools
