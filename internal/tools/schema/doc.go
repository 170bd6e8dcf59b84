// Package schema provides declarative validators for tool arguments.
//
// Each tool declares the shape of its input once; validation either yields
// the typed arguments or a list of violations, one entry per offending
// field with a dot-separated path and a human-readable reason. Violations
// are collected exhaustively so a caller sees every problem at once rather
// than fixing them one round trip at a time.
package schema
