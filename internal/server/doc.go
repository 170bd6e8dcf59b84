// Package server holds the shared state behind the MCP server: the
// Slides client, instrumentation hooks, health checking, and the
// dedicated metrics listener.
package server
