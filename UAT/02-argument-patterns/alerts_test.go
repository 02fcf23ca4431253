package alerts_test

import (
	"testing"

	alerts "github.com/DonaldWhyte/double/UAT/02-argument-patterns"
	"github.com/DonaldWhyte/double/matcher"
)

// TestEscalationSendsCriticalAlert verifies ordered delivery by predicate.
//
// Key Requirements Met:
//  1. Field-wise matching: closures over the generated args struct match on
//     the fields a test cares about and ignore the rest.
//  2. Order verification: HasPatternsInOrder proves the warning preceded the
//     critical alert without pinning down any other call.
func TestEscalationSendsCriticalAlert(t *testing.T) {
	t.Parallel()

	notifier := alerts.NewNotifierDouble()
	notifier.SendMock.WithReporter(t)

	alerts.Escalate(notifier, 503)

	warned := func(a alerts.NotifierDoubleSendArgs) bool { return a.Level == "warn" }
	criticized := func(a alerts.NotifierDoubleSendArgs) bool { return a.Level == "crit" }

	if !notifier.SendMock.HasPatternsInOrder(warned, criticized) {
		t.Error("expected a warning before the critical alert")
	}

	if !notifier.SendMock.CalledWith(alerts.NotifierDoubleSendArgs{Level: "crit", Code: 503}) {
		t.Error("expected the critical alert to carry the code")
	}
}

// TestRoutineCodeSendsOnlyWarning verifies that sub-threshold codes never
// escalate: exactly one send happened, and no recorded call was critical.
func TestRoutineCodeSendsOnlyWarning(t *testing.T) {
	t.Parallel()

	notifier := alerts.NewNotifierDouble()
	notifier.SendMock.WithReporter(t)

	alerts.Escalate(notifier, 204)

	warned := func(a alerts.NotifierDoubleSendArgs) bool { return a.Level == "warn" }
	criticized := func(a alerts.NotifierDoubleSendArgs) bool { return a.Level == "crit" }

	if !notifier.SendMock.HasPatternsExactly(warned) {
		t.Error("expected the warning to be the only send")
	}

	if notifier.SendMock.CalledWithPattern(criticized) {
		t.Error("expected no critical alert for a routine code")
	}
}

// TestHeartbeatsBracketTheSends uses the matcher package on a
// single-argument mock, where predicates apply to the argument directly.
func TestHeartbeatsBracketTheSends(t *testing.T) {
	t.Parallel()

	notifier := alerts.NewNotifierDouble()
	notifier.PingMock.WithReporter(t)

	alerts.Escalate(notifier, 204)

	if !notifier.PingMock.HasCallsExactlyInOrder(1, 2) {
		t.Error("expected exactly the two bracketing pings, in order")
	}

	if !notifier.PingMock.HasPatternsExactlyInOrder(matcher.Eq(1), matcher.Gt(1)) {
		t.Error("expected the ping sequence to increase")
	}

	if !notifier.PingMock.CalledWithPattern(matcher.BetweenInc(1, 2)) {
		t.Error("expected a ping in the bracketing range")
	}
}
