package matcher

import (
	"cmp"
	"slices"
)

// Contains matches slices in which some element equals want.
func Contains[T comparable](want T) func([]T) bool {
	return func(vs []T) bool { return slices.Contains(vs, want) }
}

// Each matches slices in which every element equals want. The empty slice
// matches vacuously.
func Each[T comparable](want T) func([]T) bool {
	return func(vs []T) bool {
		for _, v := range vs {
			if v != want {
				return false
			}
		}

		return true
	}
}

// IsEmpty matches empty slices.
func IsEmpty[T any]() func([]T) bool {
	return func(vs []T) bool { return len(vs) == 0 }
}

// IsLength matches slices of exactly n elements.
func IsLength[T any](n int) func([]T) bool {
	return func(vs []T) bool { return len(vs) == n }
}

// UnorderedElementsAre matches slices holding exactly the elements of want,
// multiplicity included, in any order.
func UnorderedElementsAre[T comparable](want []T) func([]T) bool {
	return func(vs []T) bool {
		if len(vs) != len(want) {
			return false
		}

		counts := make(map[T]int, len(want))
		for _, w := range want {
			counts[w]++
		}

		for _, v := range vs {
			counts[v]--
			if counts[v] < 0 {
				return false
			}
		}

		return true
	}
}

// WhenSorted matches slices that equal want elementwise after sorting a
// copy of the matched slice. want is taken as given, unsorted.
func WhenSorted[T cmp.Ordered](want []T) func([]T) bool {
	return func(vs []T) bool {
		sorted := slices.Clone(vs)
		slices.Sort(sorted)

		return slices.Equal(sorted, want)
	}
}
