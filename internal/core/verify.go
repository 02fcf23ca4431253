package core

import "fmt"

// CalledWith reports whether some recorded call equals expected.
func (m *Mock[C, R]) CalledWith(expected C) bool {
	return m.HasCalls(expected)
}

// CalledWithPattern reports whether some recorded call satisfies pattern.
func (m *Mock[C, R]) CalledWithPattern(pattern Pattern[C]) bool {
	return m.HasPatterns(pattern)
}

// HasCalls reports whether every expected value equals at least one
// recorded call. Expectations are matched independently: one call may
// satisfy several expectations, and neither order nor multiplicity is
// constrained.
func (m *Mock[C, R]) HasCalls(expected ...C) bool {
	return m.matchValues(expected).expectationsMatched()
}

// HasCallsExactly reports whether every expected value matched some call
// and the expectation count equals the call count.
func (m *Mock[C, R]) HasCallsExactly(expected ...C) bool {
	return m.matchValues(expected).expectationsMatchedExactly()
}

// HasCallsExactlyInOrder reports whether the expected values were all
// matched, in expectation order, by exactly as many calls as were recorded.
func (m *Mock[C, R]) HasCallsExactlyInOrder(expected ...C) bool {
	return m.matchValues(expected).expectationsMatchedInOrderExactly()
}

// HasCallsInOrder reports whether every expected value matched some call
// and one matching call can be chosen per expectation such that the chosen
// call indices strictly increase in expectation order.
func (m *Mock[C, R]) HasCallsInOrder(expected ...C) bool {
	info := m.matchValues(expected)

	return info.expectationsMatched() && info.matchesAreInOrder()
}

// HasPatterns reports whether every pattern is satisfied by at least one
// recorded call. The pattern analog of HasCalls.
func (m *Mock[C, R]) HasPatterns(patterns ...Pattern[C]) bool {
	return m.matchPatterns(patterns).expectationsMatched()
}

// HasPatternsExactly reports whether every pattern matched some call and
// the pattern count equals the call count.
func (m *Mock[C, R]) HasPatternsExactly(patterns ...Pattern[C]) bool {
	return m.matchPatterns(patterns).expectationsMatchedExactly()
}

// HasPatternsExactlyInOrder reports whether the patterns were all matched,
// in pattern order, by exactly as many calls as were recorded.
func (m *Mock[C, R]) HasPatternsExactlyInOrder(patterns ...Pattern[C]) bool {
	return m.matchPatterns(patterns).expectationsMatchedInOrderExactly()
}

// HasPatternsInOrder reports whether every pattern matched some call and
// one matching call can be chosen per pattern such that the chosen call
// indices strictly increase in pattern order.
func (m *Mock[C, R]) HasPatternsInOrder(patterns ...Pattern[C]) bool {
	info := m.matchPatterns(patterns)

	return info.expectationsMatched() && info.matchesAreInOrder()
}

// matchPatterns builds the match table for pattern expectations against a
// snapshot of the call history.
func (m *Mock[C, R]) matchPatterns(patterns []Pattern[C]) matchInfo {
	descs := make([]string, len(patterns))
	for i := range patterns {
		descs[i] = fmt.Sprintf("pattern %d", i)
	}

	return buildMatchInfo(m.reporter(), patterns, m.Calls(), descs)
}

// matchValues reduces value expectations to equality patterns, so every
// verification query flows through the same match table construction.
func (m *Mock[C, R]) matchValues(expected []C) matchInfo {
	patterns := make([]Pattern[C], len(expected))
	descs := make([]string, len(expected))

	for i, want := range expected {
		patterns[i] = func(call C) bool { return call == want }
		descs[i] = fmt.Sprintf("%v", want)
	}

	return buildMatchInfo(m.reporter(), patterns, m.Calls(), descs)
}
