// Package double provides test doubles for Go: a call-recording,
// value-resolving Mock with exact and pattern-based verification of what
// was called, with what arguments, and in what order.
//
// This is the public API entry point. Implementation lives in internal/core.
package double

import (
	"github.com/DonaldWhyte/double/internal/core"
)

// Mock records every invocation of one stubbed callable and resolves each
// call's return value by precedence: per-argument closures, functions, and
// literals first, then the default closure or function, then the one-shot
// value sequence, then the default value. C is the argument type (a single
// value, or a generated args struct packing several) and R the return type.
type Mock[C comparable, R any] = core.Mock[C, R]

// New creates a Mock that returns defaultReturn for any call with no other
// stubbing applied.
func New[C comparable, R any](defaultReturn R) *Mock[C, R] {
	return core.NewMock[C, R](defaultReturn)
}

// NewDefault creates a Mock whose default return value is R's zero value.
func NewDefault[C comparable, R any]() *Mock[C, R] {
	var zero R

	return core.NewMock[C, R](zero)
}

// Pattern is a predicate over one recorded argument value. The matcher
// package builds these; any func(C) bool works.
type Pattern[C any] = core.Pattern[C]

// TestReporter is the minimal interface double needs from test frameworks.
// *testing.T satisfies it.
type TestReporter = core.TestReporter
