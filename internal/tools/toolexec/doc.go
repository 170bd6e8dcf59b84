// Package toolexec provides the shared execution pipeline every tool
// handler runs through: argument presence checks, schema validation,
// handler invocation with panic containment, and normalization of every
// failure into a structured result envelope. Handlers built on Execute
// never surface a protocol-level error; all failures travel inside the
// tool result.
package toolexec
