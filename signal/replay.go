package signal

import (
	"slices"
	"sync"
)

// Replay is a hot Signal that records every value from its source and
// replays the whole history to each new subscriber before live values.
//
// Deliveries are serialised so that replayed and live values never
// interleave. Observers may unsubscribe or read the Replay's state from
// inside a callback, but must not subscribe to it, connect it or emit on its
// source from there.
type Replay[T any] struct {
	src  Signal[T]
	auto bool

	// deliver is held while observers are being called. mu guards the state
	// and is never held across a callback.
	deliver sync.Mutex

	mu        sync.Mutex
	history   []T
	observers observers[T]
	conn      Subscription
	upstream  Subscription
	connected bool
	released  bool
	stopped   bool
	err       error
}

// NewReplay wraps src. Nothing is recorded until Connect is called.
func NewReplay[T any](src Signal[T]) *Replay[T] {
	return &Replay[T]{src: src}
}

// ShareReplay wraps src and connects on the first Subscribe.
func ShareReplay[T any](src Signal[T]) *Replay[T] {
	r := NewReplay(src)
	r.auto = true
	return r
}

// Connect subscribes the Replay to its source. Recording starts before
// Connect returns, including any values the source delivers synchronously.
//
// The returned Subscription detaches the Replay from its source and drops
// its live observers; the recorded history is kept. Connect is idempotent
// and every call returns the same Subscription.
func (r *Replay[T]) Connect() Subscription {
	r.mu.Lock()
	if r.connected {
		conn := r.conn
		r.mu.Unlock()
		return conn
	}
	r.connected = true
	r.conn = SubscriptionFunc(r.release)
	conn := r.conn
	r.mu.Unlock()

	upstream := r.src.Subscribe(Observer[T]{
		Next: r.onNext,
		Err:  r.onError,
		Done: func() { r.onError(nil) },
	})

	r.mu.Lock()
	released := r.released
	if !released {
		r.upstream = upstream
	}
	r.mu.Unlock()

	// Released while the source was still delivering synchronously.
	if released {
		upstream.Unsubscribe()
	}
	return conn
}

// Subscribe replays the recorded history to o synchronously and then attaches
// it for live values.
func (r *Replay[T]) Subscribe(o Observer[T]) Subscription {
	r.deliver.Lock()

	r.mu.Lock()
	history := slices.Clip(r.history)
	stopped, err := r.stopped, r.err
	attach := !stopped && !r.released
	var id uint64
	if attach {
		id = r.observers.add(o)
	}
	connect := attach && r.auto && !r.connected
	r.mu.Unlock()

	for _, v := range history {
		o.next(v)
	}
	if stopped {
		o.terminate(err)
	}
	r.deliver.Unlock()

	if !attach {
		return noop
	}
	if connect {
		r.Connect()
	}

	return SubscriptionFunc(func() {
		r.mu.Lock()
		r.observers.remove(id)
		r.mu.Unlock()
	})
}

// SubscribeAny implements Untyped.
func (r *Replay[T]) SubscribeAny(o Observer[any]) Subscription {
	return r.Subscribe(widen[T](o))
}

// Values returns a copy of the recorded history.
func (r *Replay[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.history)
}

// Err returns the error the source terminated with, if any.
func (r *Replay[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Connected reports whether the Replay is attached to its source.
func (r *Replay[T]) Connected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.connected && !r.released
}

func (r *Replay[T]) onNext(v T) {
	r.deliver.Lock()
	defer r.deliver.Unlock()

	r.mu.Lock()
	if r.stopped || r.released {
		r.mu.Unlock()
		return
	}
	r.history = append(r.history, v)
	live := r.observers.snapshot()
	r.mu.Unlock()

	for _, o := range live {
		o.next(v)
	}
}

func (r *Replay[T]) onError(err error) {
	r.deliver.Lock()
	defer r.deliver.Unlock()

	r.mu.Lock()
	if r.stopped || r.released {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.err = err
	live := r.observers.snapshot()
	r.observers.clear()
	r.mu.Unlock()

	for _, o := range live {
		o.terminate(err)
	}
}

func (r *Replay[T]) release() {
	r.mu.Lock()
	r.released = true
	r.observers.clear()
	upstream := r.upstream
	r.upstream = nil
	r.mu.Unlock()

	if upstream != nil {
		upstream.Unsubscribe()
	}
}
