package testutil

import (
	"sync"
	"time"

	"github.com/thruflo/sigwatch/signal"
)

// EmitAfter emits values on s from a new goroutine once delay has passed.
// The returned channel is closed after the last value was emitted.
func EmitAfter[T any](s *signal.Subject[T], delay time.Duration, values ...T) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(delay)
		for _, v := range values {
			s.Next(v)
		}
	}()
	return done
}

// Collect subscribes to s and returns a function reporting the values seen
// so far. The subscription is released through scope.
func Collect[T any](scope interface{ Cleanup(func()) }, s signal.Signal[T]) func() []T {
	var (
		mu   sync.Mutex
		seen []T
	)
	sub := s.Subscribe(signal.Func(func(v T) {
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	}))
	scope.Cleanup(sub.Unsubscribe)

	return func() []T {
		mu.Lock()
		defer mu.Unlock()
		return append([]T(nil), seen...)
	}
}
