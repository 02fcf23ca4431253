package core

import "fmt"

// orderingSearchLimit caps the number of candidate assignments the ordering
// proof will enumerate. Past it the proof is abandoned and the query fails
// closed, since a silent hang on pathological histories would be worse than
// a conservative false.
const orderingSearchLimit = 1 << 20

// matchInfo is the match table built fresh for each verification query:
// which call indices satisfied which expectation. All verification booleans
// derive from it; it is discarded when the query returns.
type matchInfo struct {
	t               TestReporter
	numExpectations int
	numCalls        int
	matches         map[int][]int // expectation index -> ascending call indices
	expectationDesc []string
	callDesc        []string
}

// buildMatchInfo tests every (expectation, call) pair and records the call
// indices satisfying each expectation. expectationDesc supplies the
// human-readable form of each expectation for diagnostics.
func buildMatchInfo[C any](
	t TestReporter, patterns []Pattern[C], calls []C, expectationDesc []string,
) matchInfo {
	matches := make(map[int][]int, len(patterns))

	for ei, pattern := range patterns {
		for ci, call := range calls {
			if pattern(call) {
				matches[ei] = append(matches[ei], ci)
			}
		}
	}

	callDesc := make([]string, len(calls))
	for i, call := range calls {
		callDesc[i] = fmt.Sprintf("%v", call)
	}

	return matchInfo{
		t:               t,
		numExpectations: len(patterns),
		numCalls:        len(calls),
		matches:         matches,
		expectationDesc: expectationDesc,
		callDesc:        callDesc,
	}
}

// countsMatch reports whether as many calls were recorded as expectations
// were given, logging the mismatch and a diff of the two lists otherwise.
func (info matchInfo) countsMatch() bool {
	if info.numExpectations == info.numCalls {
		return true
	}

	info.t.Helper()
	info.t.Logf(
		"expected exactly %d call(s) but %d were recorded\n%s",
		info.numExpectations,
		info.numCalls,
		diffExpectations(info.expectationDesc, info.callDesc),
	)

	return false
}

// expectationsMatched reports whether every expectation was satisfied by at
// least one recorded call. Unmatched expectations are logged, never fatal:
// turning a false into a test failure is the caller's decision.
func (info matchInfo) expectationsMatched() bool {
	var unmatched []int

	for i := range info.numExpectations {
		if len(info.matches[i]) == 0 {
			unmatched = append(unmatched, i)
		}
	}

	if len(unmatched) == 0 {
		return true
	}

	info.t.Helper()

	for _, i := range unmatched {
		info.t.Logf("expectation %d (%s) matched none of the %d recorded call(s)",
			i, info.expectationDesc[i], info.numCalls)
	}

	info.t.Logf("%s", diffExpectations(info.expectationDesc, info.callDesc))

	return false
}

// expectationsMatchedExactly reports whether every expectation matched and
// the expectation count equals the call count.
func (info matchInfo) expectationsMatchedExactly() bool {
	return info.expectationsMatched() && info.countsMatch()
}

// expectationsMatchedInOrderExactly reports whether every expectation
// matched, an order-respecting assignment exists, and the counts agree.
func (info matchInfo) expectationsMatchedInOrderExactly() bool {
	return info.expectationsMatched() && info.matchesAreInOrder() && info.countsMatch()
}

// matchesAreInOrder proves or refutes the existence of one matching call
// index per expectation with the chosen indices strictly increasing in
// expectation order. Only meaningful once expectationsMatched holds. The
// proof enumerates the Cartesian product of the per-expectation match sets
// with an odometer, stopping at the first strictly increasing choice;
// candidate counts past orderingSearchLimit abandon the search as unproven.
func (info matchInfo) matchesAreInOrder() bool {
	if info.numExpectations == 0 {
		return true
	}

	sets := make([][]int, info.numExpectations)
	candidates := 1

	for i := range info.numExpectations {
		sets[i] = info.matches[i]
		candidates *= len(sets[i])

		if candidates == 0 {
			return false
		}

		if candidates > orderingSearchLimit {
			info.t.Helper()
			info.t.Logf(
				"ordering proof abandoned: %d+ candidate assignments exceeds the %d limit; treating order as unproven",
				candidates, orderingSearchLimit)

			return false
		}
	}

	choice := make([]int, len(sets))

	for {
		if strictlyIncreasing(sets, choice) {
			return true
		}

		if !advance(sets, choice) {
			break
		}
	}

	info.t.Helper()
	info.t.Logf("calls matched every expectation, but never in expectation order; match sets by expectation: %v", sets)

	return false
}

// advance steps the odometer to the next candidate assignment, rightmost
// digit fastest. Returns false once every candidate has been produced.
func advance(sets [][]int, choice []int) bool {
	for i := len(choice) - 1; i >= 0; i-- {
		choice[i]++
		if choice[i] < len(sets[i]) {
			return true
		}

		choice[i] = 0
	}

	return false
}

// strictlyIncreasing reports whether the call indices selected by choice
// increase monotonically across expectations.
func strictlyIncreasing(sets [][]int, choice []int) bool {
	prev := -1

	for i, set := range sets {
		idx := set[choice[i]]
		if idx <= prev {
			return false
		}

		prev = idx
	}

	return true
}
