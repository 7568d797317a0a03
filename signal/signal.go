package signal

import "sync"

// Signal is a push-based source of values of type T.
type Signal[T any] interface {
	// Subscribe attaches o and returns the handle that detaches it.
	Subscribe(o Observer[T]) Subscription
}

// Untyped is implemented by signals that can be observed without knowing
// their element type. Matchers that receive their actual value as any use it.
type Untyped interface {
	SubscribeAny(o Observer[any]) Subscription
}

// Observer receives notifications from a Signal. Nil callbacks are skipped.
type Observer[T any] struct {
	// Next is called for each emitted value.
	Next func(T)

	// Err is called once if the signal terminates with an error.
	Err func(error)

	// Done is called once if the signal completes.
	Done func()
}

// Func returns an Observer that only handles values.
func Func[T any](next func(T)) Observer[T] {
	return Observer[T]{Next: next}
}

func (o Observer[T]) next(v T) {
	if o.Next != nil {
		o.Next(v)
	}
}

func (o Observer[T]) terminate(err error) {
	if err != nil {
		if o.Err != nil {
			o.Err(err)
		}
		return
	}
	if o.Done != nil {
		o.Done()
	}
}

// widen converts an Observer[any] into an Observer[T].
func widen[T any](o Observer[any]) Observer[T] {
	w := Observer[T]{Err: o.Err, Done: o.Done}
	if o.Next != nil {
		w.Next = func(v T) { o.Next(v) }
	}
	return w
}

// Erase adapts any Signal into an Untyped one.
func Erase[T any](s Signal[T]) Untyped {
	if u, ok := s.(Untyped); ok {
		return u
	}
	return erased[T]{s}
}

type erased[T any] struct {
	s Signal[T]
}

func (e erased[T]) SubscribeAny(o Observer[any]) Subscription {
	return e.s.Subscribe(widen[T](o))
}

// Any views an Untyped signal as a Signal[any].
func Any(u Untyped) Signal[any] {
	if s, ok := u.(Signal[any]); ok {
		return s
	}
	return anySignal{u}
}

type anySignal struct {
	u Untyped
}

func (a anySignal) Subscribe(o Observer[any]) Subscription {
	return a.u.SubscribeAny(o)
}

// Subscription is the live link between an observer and a Signal.
type Subscription interface {
	// Unsubscribe severs the link. Only the first call has an effect.
	Unsubscribe()
}

// SubscriptionFunc wraps release so that it runs at most once.
func SubscriptionFunc(release func()) Subscription {
	return &subscription{release: release}
}

type subscription struct {
	once    sync.Once
	release func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}

// noop is returned when there is nothing to release.
var noop = SubscriptionFunc(nil)
