// Package core provides the internal implementation of double's
// call-recording, value-resolution, and verification engine.
package core

import (
	"slices"
	"sync"
)

// Pattern is a predicate over one recorded argument value. Verification
// queries accept patterns wherever literal expected values are too rigid.
type Pattern[C any] func(C) bool

// Mock owns all mutable mocking state for one stubbed callable: the return
// value tiers and the call history. The argument type C must be comparable
// so calls can be recorded, compared against expectations, and used as
// per-argument override keys. A *Mock is shared by pointer between the code
// under test (which invokes Call) and the test body (which stubs and
// queries); all state is guarded by an internal mutex.
type Mock[C comparable, R any] struct {
	t TestReporter

	mu             sync.Mutex
	defaultReturn  R
	returnSeq      []R
	defaultFn      func(C) R
	defaultClosure func(C) R
	returnFor      map[C]R
	fnFor          map[C]func(C) R
	closureFor     map[C]func(C) R
	calls          []C
}

// NewMock creates a Mock that returns defaultReturn for any call with no
// other stubbing applied.
func NewMock[C comparable, R any](defaultReturn R) *Mock[C, R] {
	return &Mock[C, R]{
		defaultReturn: defaultReturn,
		returnFor:     map[C]R{},
		fnFor:         map[C]func(C) R{},
		closureFor:    map[C]func(C) R{},
	}
}

// Call records args in the call history and resolves a return value.
// Resolution precedence, highest first: the per-argument closure, function,
// and literal registered for exactly args; the default closure or function;
// the next unconsumed element of the one-shot sequence; the default value.
// An exhausted sequence falls through silently. Call never fails: the
// default value always exists.
func (m *Mock[C, R]) Call(args C) R {
	return m.resolve(args)(args)
}

// Called reports whether the mock has been called at least once.
func (m *Mock[C, R]) Called() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.calls) > 0
}

// Calls returns a copy of the call history, in call order.
func (m *Mock[C, R]) Calls() []C {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.calls)
}

// NumCalls returns the number of recorded calls.
func (m *Mock[C, R]) NumCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.calls)
}

// ResetCalls clears the call history. Stubbed return values, functions,
// closures, and the one-shot sequence are untouched.
func (m *Mock[C, R]) ResetCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = nil
}

// ReturnValue sets the default return value, the fallback of last resort.
func (m *Mock[C, R]) ReturnValue(v R) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.defaultReturn = v
}

// ReturnValueFor registers a literal return value for calls made with
// exactly args. Repeated registrations for the same args overwrite.
func (m *Mock[C, R]) ReturnValueFor(args C, v R) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.returnFor[args] = v
}

// ReturnValues replaces the one-shot sequence. Each value is returned once,
// in the order given, by calls that no per-argument or default fn/closure
// stubbing claims first; afterwards calls fall back to the default value.
func (m *Mock[C, R]) ReturnValues(vs ...R) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.returnSeq = slices.Clone(vs)
}

// UseClosure sets the default closure, clearing any default function. Of
// the two default-level behaviors only the most recently set one is active.
func (m *Mock[C, R]) UseClosure(f func(C) R) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.defaultClosure = f
	m.defaultFn = nil
}

// UseClosureFor registers a closure to produce the return value for calls
// made with exactly args. Outranks UseFnFor and ReturnValueFor entries for
// the same args.
func (m *Mock[C, R]) UseClosureFor(args C, f func(C) R) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closureFor[args] = f
}

// UseFn sets the default function, clearing any default closure. Of the two
// default-level behaviors only the most recently set one is active.
func (m *Mock[C, R]) UseFn(f func(C) R) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.defaultFn = f
	m.defaultClosure = nil
}

// UseFnFor registers a function to produce the return value for calls made
// with exactly args. Outranked by UseClosureFor entries for the same args.
func (m *Mock[C, R]) UseFnFor(args C, f func(C) R) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fnFor[args] = f
}

// WithReporter attaches the diagnostics sink failed verifications log to,
// normally the test's *testing.T. Without one, diagnostics go to stderr.
// Returns the mock for chaining.
func (m *Mock[C, R]) WithReporter(t TestReporter) *Mock[C, R] {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.t = t

	return m
}

// reporter returns the attached diagnostics sink, or the stderr fallback.
func (m *Mock[C, R]) reporter() TestReporter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.t == nil {
		return stderrReporter{}
	}

	return m.t
}

// resolve appends args to the call history and picks the resolution path,
// atomically under the lock. The chosen func runs after the lock is
// released so user-supplied fns and closures may re-enter this mock or
// another without deadlocking.
func (m *Mock[C, R]) resolve(args C) func(C) R {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, args)

	if f, ok := m.closureFor[args]; ok {
		return f
	}

	if f, ok := m.fnFor[args]; ok {
		return f
	}

	if v, ok := m.returnFor[args]; ok {
		return func(C) R { return v }
	}

	if m.defaultClosure != nil {
		return m.defaultClosure
	}

	if m.defaultFn != nil {
		return m.defaultFn
	}

	if len(m.returnSeq) > 0 {
		v := m.returnSeq[0]
		m.returnSeq = m.returnSeq[1:]

		return func(C) R { return v }
	}

	v := m.defaultReturn

	return func(C) R { return v }
}
