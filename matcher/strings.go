package matcher

import "strings"

// EndsWith matches strings ending with suffix.
func EndsWith(suffix string) func(string) bool {
	return func(v string) bool { return strings.HasSuffix(v, suffix) }
}

// EqNoCase matches strings whose lowercased form equals want. Only the
// matched value is lowercased, so want itself must already be lowercase to
// match anything.
func EqNoCase(want string) func(string) bool {
	return func(v string) bool { return strings.ToLower(v) == want }
}

// HasSubstr matches strings containing sub.
func HasSubstr(sub string) func(string) bool {
	return func(v string) bool { return strings.Contains(v, sub) }
}

// NeNoCase matches strings whose lowercased form differs from want.
func NeNoCase(want string) func(string) bool {
	return func(v string) bool { return strings.ToLower(v) != want }
}

// StartsWith matches strings beginning with prefix.
func StartsWith(prefix string) func(string) bool {
	return func(v string) bool { return strings.HasPrefix(v, prefix) }
}
