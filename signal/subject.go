package signal

import "sync"

// Subject is a cold, multicasting Signal that is fed by its owner.
//
// Values are delivered only to observers subscribed when Next is called.
// Subject is safe for concurrent use; values emitted from a single goroutine
// are delivered in order.
type Subject[T any] struct {
	mu        sync.Mutex
	observers observers[T]
	stopped   bool
	err       error
}

// NewSubject creates an empty Subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe attaches o. If the Subject has already terminated, o receives the
// terminal notification immediately and the returned Subscription is inert.
func (s *Subject[T]) Subscribe(o Observer[T]) Subscription {
	s.mu.Lock()
	if s.stopped {
		err := s.err
		s.mu.Unlock()
		o.terminate(err)
		return noop
	}

	id := s.observers.add(o)
	s.mu.Unlock()

	return SubscriptionFunc(func() {
		s.mu.Lock()
		s.observers.remove(id)
		s.mu.Unlock()
	})
}

// SubscribeAny implements Untyped.
func (s *Subject[T]) SubscribeAny(o Observer[any]) Subscription {
	return s.Subscribe(widen[T](o))
}

// Next emits v to the current observers. It is a no-op after termination.
func (s *Subject[T]) Next(v T) {
	for _, o := range s.snapshot(false, nil) {
		o.next(v)
	}
}

// Error terminates the Subject with err.
func (s *Subject[T]) Error(err error) {
	for _, o := range s.snapshot(true, err) {
		o.terminate(err)
	}
}

// Complete terminates the Subject without an error.
func (s *Subject[T]) Complete() {
	for _, o := range s.snapshot(true, nil) {
		o.terminate(nil)
	}
}

// Observed reports the number of attached observers.
func (s *Subject[T]) Observed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.observers.size()
}

// snapshot copies the observers in subscription order. When stop is set the
// Subject is marked terminated and its observers are detached.
func (s *Subject[T]) snapshot(stop bool, err error) []Observer[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return nil
	}

	out := s.observers.snapshot()
	if stop {
		s.stopped = true
		s.err = err
		s.observers.clear()
	}
	return out
}
