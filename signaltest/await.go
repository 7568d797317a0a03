package signaltest

import (
	"context"
	"sync/atomic"

	"github.com/thruflo/sigwatch/signal"
)

// Outcome is the result of waiting on a signal: either a value was emitted
// or the window closed first.
type Outcome[T any] struct {
	value   T
	emitted bool
}

// Emitted returns the Outcome for an observed value.
func Emitted[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, emitted: true}
}

// TimedOut returns the Outcome for a window that closed without a value.
func TimedOut[T any]() Outcome[T] {
	return Outcome[T]{}
}

// Value returns the observed value and whether there was one.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.emitted
}

// TimedOut reports whether the window closed without a value.
func (o Outcome[T]) TimedOut() bool {
	return !o.emitted
}

// Await waits for the first value s emits, up to the configured timeout.
//
// Values already recorded by a replaying signal count, since they are
// delivered during Subscribe. A cancelled ctx closes the window early.
// The returned Subscription is the one Await observed through. Await never
// releases it; that is left to the caller or to the scope set by WithScope.
func Await[T any](ctx context.Context, s signal.Signal[T], opts ...Option) (Outcome[T], signal.Subscription) {
	o := newOptions(opts)
	return await(ctx, s, o, func(T) bool { return true })
}

// AwaitValue waits for s to emit a value equal to expected, up to the
// configured timeout. Values that do not match are ignored.
func AwaitValue[T any](ctx context.Context, s signal.Signal[T], expected T, opts ...Option) (Outcome[T], signal.Subscription) {
	o := newOptions(opts)
	return await(ctx, s, o, func(v T) bool {
		return o.formatter.Equal(expected, v)
	})
}

func await[T any](ctx context.Context, s signal.Signal[T], o options, accept func(T) bool) (Outcome[T], signal.Subscription) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	found := make(chan T, 1)
	var decided atomic.Bool

	sub := s.Subscribe(signal.Func(func(v T) {
		if decided.Load() || !accept(v) {
			return
		}
		if decided.CompareAndSwap(false, true) {
			found <- v
		}
	}))
	if o.scope != nil {
		o.scope.Cleanup(sub.Unsubscribe)
	}

	select {
	case v := <-found:
		return Emitted(v), sub
	case <-ctx.Done():
	}

	// The window is closed. A value that got in first still wins; otherwise
	// the callback is disarmed so nothing later is observed.
	if decided.CompareAndSwap(false, true) {
		o.logger.Debug("signal did not emit", "timeout", o.timeout, "cause", context.Cause(ctx))
		return TimedOut[T](), sub
	}
	return Emitted(<-found), sub
}
