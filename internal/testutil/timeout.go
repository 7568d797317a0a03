package testutil

import (
	"time"
)

// Slack is the scheduling tolerance allowed on top of a matcher's window
// before a test treats it as overrunning.
const Slack = 250 * time.Millisecond

// Reporter is the part of testing.TB that Within reports through.
type Reporter interface {
	Helper()
	Errorf(format string, args ...any)
}

// Within fails t if f does not return within d. It still waits for f to
// finish before returning.
func Within(t Reporter, d time.Duration, f func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()

	select {
	case <-done:
	case <-time.After(d):
		t.Errorf("did not finish within %v", d)
		<-done
	}
}

// Elapsed runs f and returns how long it took.
func Elapsed(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}
