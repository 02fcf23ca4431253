package matcher

import "cmp"

// BetweenExc matches values strictly between lo and hi, excluding both.
func BetweenExc[T cmp.Ordered](lo, hi T) func(T) bool {
	return func(v T) bool { return lo < v && v < hi }
}

// BetweenInc matches values between lo and hi, including both.
func BetweenInc[T cmp.Ordered](lo, hi T) func(T) bool {
	return func(v T) bool { return lo <= v && v <= hi }
}

// Ge matches values greater than or equal to limit.
func Ge[T cmp.Ordered](limit T) func(T) bool {
	return func(v T) bool { return v >= limit }
}

// Gt matches values strictly greater than limit.
func Gt[T cmp.Ordered](limit T) func(T) bool {
	return func(v T) bool { return v > limit }
}

// Le matches values less than or equal to limit.
func Le[T cmp.Ordered](limit T) func(T) bool {
	return func(v T) bool { return v <= limit }
}

// Lt matches values strictly less than limit.
func Lt[T cmp.Ordered](limit T) func(T) bool {
	return func(v T) bool { return v < limit }
}
