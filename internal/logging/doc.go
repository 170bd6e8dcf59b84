// Package logging provides slog helpers and attribute-key constants so
// that log output stays consistent across the codebase.
package logging
