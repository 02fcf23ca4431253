package double

// Option models a value that may be absent, so mocks of lookup-style
// operations keep one concrete return type. The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// GetOr returns the wrapped value, or fallback when absent.
func (o Option[T]) GetOr(fallback T) T {
	if !o.present {
		return fallback
	}

	return o.value
}

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// Result models a value-or-error outcome, so mocks of fallible operations
// keep one concrete return type. The zero value is OK with T's zero value.
type Result[T any] struct {
	value T
	err   error
}

// Err wraps a failure.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// OK wraps a success value.
func OK[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Get returns the success value and the error, in Go's usual pair shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// GetErr returns the wrapped error, nil on success.
func (r Result[T]) GetErr() error {
	return r.err
}

// IsErr reports whether the result is a failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// IsOK reports whether the result is a success.
func (r Result[T]) IsOK() bool {
	return r.err == nil
}

// ReturnErr sets the mock's default return to a failed Result. Free
// functions rather than methods because methods cannot introduce the
// success type parameter; each routes through ReturnValue or
// ReturnValueFor, the same tiers literal stubbing uses.
func ReturnErr[C comparable, T any](m *Mock[C, Result[T]], err error) {
	m.ReturnValue(Err[T](err))
}

// ReturnErrFor registers a failed Result for calls made with exactly args.
func ReturnErrFor[C comparable, T any](m *Mock[C, Result[T]], args C, err error) {
	m.ReturnValueFor(args, Err[T](err))
}

// ReturnNone sets the mock's default return to the absent Option.
func ReturnNone[C comparable, T any](m *Mock[C, Option[T]]) {
	m.ReturnValue(None[T]())
}

// ReturnOK sets the mock's default return to a successful Result.
func ReturnOK[C comparable, T any](m *Mock[C, Result[T]], v T) {
	m.ReturnValue(OK(v))
}

// ReturnOKFor registers a successful Result for calls made with exactly args.
func ReturnOKFor[C comparable, T any](m *Mock[C, Result[T]], args C, v T) {
	m.ReturnValueFor(args, OK(v))
}

// ReturnSome sets the mock's default return to a present Option.
func ReturnSome[C comparable, T any](m *Mock[C, Option[T]], v T) {
	m.ReturnValue(Some(v))
}

// ReturnSomeFor registers a present Option for calls made with exactly args.
func ReturnSomeFor[C comparable, T any](m *Mock[C, Option[T]], args C, v T) {
	m.ReturnValueFor(args, Some(v))
}
