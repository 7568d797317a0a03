package signaltest

import (
	"fmt"

	"github.com/thruflo/sigwatch/internal/logging"
	"github.com/thruflo/sigwatch/signal"
)

// Scope schedules work to run when a test, or any other bounded run, ends.
// *testing.T, *testing.B and testing.TB satisfy it.
type Scope interface {
	Cleanup(func())
}

// Watch returns a hot, replaying version of s.
//
// The returned signal is connected before Watch returns, so every value s
// emits from now on is recorded and replayed to later subscribers; values s
// emitted earlier are not. The connection is released exactly once when
// scope runs its cleanups, whether the test passed, failed or panicked.
func Watch[T any](scope Scope, s signal.Signal[T]) *signal.Replay[T] {
	hot := signal.NewReplay(s)
	conn := hot.Connect()

	log := logging.Default().With("signal", fmt.Sprintf("%T", s))
	log.Debug("watching signal")

	scope.Cleanup(func() {
		conn.Unsubscribe()
		log.Debug("released watched signal", "recorded", len(hot.Values()))
	})

	return hot
}
