package matcher

import "github.com/DonaldWhyte/double"

// IsErr matches failed Results whose error satisfies inner.
func IsErr[T any](inner func(error) bool) func(double.Result[T]) bool {
	return func(r double.Result[T]) bool {
		return r.IsErr() && inner(r.GetErr())
	}
}

// IsNone matches absent Options.
func IsNone[T any]() func(double.Option[T]) bool {
	return func(o double.Option[T]) bool { return o.IsNone() }
}

// IsOK matches successful Results whose value satisfies inner.
func IsOK[T any](inner func(T) bool) func(double.Result[T]) bool {
	return func(r double.Result[T]) bool {
		v, err := r.Get()

		return err == nil && inner(v)
	}
}

// IsSome matches present Options whose value satisfies inner.
func IsSome[T any](inner func(T) bool) func(double.Option[T]) bool {
	return func(o double.Option[T]) bool {
		v, ok := o.Get()

		return ok && inner(v)
	}
}
