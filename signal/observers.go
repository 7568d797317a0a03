package signal

import "slices"

// observers is the subscription-ordered set of observers attached to a
// signal. It is not safe for concurrent use; owners guard it with their lock.
type observers[T any] struct {
	entries []observerEntry[T]
	nextID  uint64
}

type observerEntry[T any] struct {
	id uint64
	o  Observer[T]
}

// add appends o and returns the id that removes it.
func (l *observers[T]) add(o Observer[T]) uint64 {
	id := l.nextID
	l.nextID++
	l.entries = append(l.entries, observerEntry[T]{id: id, o: o})
	return id
}

func (l *observers[T]) remove(id uint64) {
	l.entries = slices.DeleteFunc(l.entries, func(e observerEntry[T]) bool {
		return e.id == id
	})
}

// snapshot copies the observers in subscription order.
func (l *observers[T]) snapshot() []Observer[T] {
	out := make([]Observer[T], len(l.entries))
	for i, e := range l.entries {
		out[i] = e.o
	}
	return out
}

func (l *observers[T]) clear() {
	l.entries = nil
}

func (l *observers[T]) size() int {
	return len(l.entries)
}
