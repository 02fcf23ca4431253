// Package matcher provides predicate constructors for double's
// pattern-based verification queries: comparison, float, string, container,
// Option and Result matchers, and logical combinators over them.
//
// Each constructor returns a plain func(T) bool, usable anywhere a
// double.Pattern is accepted:
//
//	mock.HasPatternsInOrder(matcher.Eq(5), matcher.Gt(10))
//
// Third-party matchers in the gomega shape plug in through Satisfies:
//
//	mock.CalledWithPattern(matcher.Satisfies[string](ContainSubstring("id=")))
package matcher

// Matcher is the shape of a third-party matcher the Satisfies bridge
// accepts. Compatible with gomega.GomegaMatcher via duck typing, so gomega
// never has to be imported outside test files.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// AllOf matches when every given matcher matches, stopping at the first
// that does not.
func AllOf[T any](matchers ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, m := range matchers {
			if !m(v) {
				return false
			}
		}

		return true
	}
}

// Any matches every value.
func Any[T any]() func(T) bool {
	return func(T) bool { return true }
}

// AnyOf matches when at least one given matcher matches, stopping at the
// first that does.
func AnyOf[T any](matchers ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, m := range matchers {
			if m(v) {
				return true
			}
		}

		return false
	}
}

// Eq matches values equal to want.
func Eq[T comparable](want T) func(T) bool {
	return func(v T) bool { return v == want }
}

// Ne matches values not equal to want.
func Ne[T comparable](want T) func(T) bool {
	return func(v T) bool { return v != want }
}

// Not inverts a matcher.
func Not[T any](m func(T) bool) func(T) bool {
	return func(v T) bool { return !m(v) }
}

// Satisfies adapts a gomega-shaped matcher into a pattern. Values of other
// types and Match errors count as non-matches.
func Satisfies[T any](m Matcher) func(T) bool {
	return func(v T) bool {
		ok, err := m.Match(v)

		return err == nil && ok
	}
}
