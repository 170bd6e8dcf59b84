// Package common provides shared helpers for tool handlers, currently
// the instrumentation wrapper that records metrics and audit logs around
// every tool invocation.
package common
