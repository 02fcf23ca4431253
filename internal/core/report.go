package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/akedrou/textdiff"
)

// TestReporter is the minimal interface double needs from test frameworks.
// *testing.T satisfies it. Diagnostics use Logf, never a fatal call: failed
// verifications report through booleans and leave failing the test to the
// caller.
type TestReporter interface {
	Helper()
	Logf(format string, args ...any)
}

// stderrReporter is the diagnostics sink of last resort, for mocks used
// outside a test framework or before WithReporter is called.
type stderrReporter struct{}

func (stderrReporter) Helper() {}

func (stderrReporter) Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// diffExpectations renders a unified diff between the expected call list
// and the recorded history, one entry per line, for failure diagnostics.
func diffExpectations(expected, recorded []string) string {
	diff := textdiff.Unified("expected calls", "recorded calls", joinLines(expected), joinLines(recorded))
	if diff == "" {
		return "expected and recorded call lists match line for line"
	}

	return diff
}

// joinLines renders one entry per line with a trailing newline, the shape
// line-oriented diffs want.
func joinLines(entries []string) string {
	if len(entries) == 0 {
		return ""
	}

	return strings.Join(entries, "\n") + "\n"
}
