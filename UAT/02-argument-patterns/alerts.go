// Package alerts demonstrates pattern verification: matching recorded calls
// by predicate instead of by exact value, with the matcher package supplying
// the predicates for single-argument mocks and plain closures matching
// generated args structs field by field.
package alerts

//go:generate go run ../../doublegen/main.go Notifier

// Notifier delivers operator alerts.
type Notifier interface {
	Ping(seq int)
	Send(level string, code int) error
}

// Escalate reports code to the notifier: a warning first, then a critical
// alert when the code is in the server error range. Heartbeat pings bracket
// the sends.
func Escalate(notifier Notifier, code int) {
	const serverErrorFloor = 500

	notifier.Ping(1)

	_ = notifier.Send("warn", code)

	if code >= serverErrorFloor {
		_ = notifier.Send("crit", code)
	}

	notifier.Ping(2)
}
