//go:build !debug

// Package debug provides assertions for register programming invariants. They
// are enabled with the debug build tag and compile to no-ops otherwise.
//
// A failed assertion means a programming defect (a malformed register table or
// an out of range register index), never a runtime hardware condition.
package debug

// Enabled reports whether assertions are compiled in. Wrap checks whose
// arguments are costly to compute in `if debug.Enabled {...}`.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// Assertf panics with a formatted message if b is false.
func Assertf(b bool, format string, args ...any) {}
