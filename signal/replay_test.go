package signal

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestReplay(t *testing.T) {
	t.Run("records nothing before connect", func(t *testing.T) {
		src := NewSubject[string]()
		r := NewReplay[string](src)

		src.Next("a")
		conn := r.Connect()
		defer conn.Unsubscribe()
		src.Next("b")

		assert.Equal(t, []string{"b"}, r.Values())
	})

	t.Run("replays history then live values", func(t *testing.T) {
		src := NewSubject[string]()
		r := NewReplay[string](src)
		conn := r.Connect()
		defer conn.Unsubscribe()

		src.Next("a")
		src.Next("b")

		var got []string
		r.Subscribe(record(&got))
		assert.Equal(t, []string{"a", "b"}, got, "history is delivered inside Subscribe")

		src.Next("c")
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("every subscriber sees the same history", func(t *testing.T) {
		src := NewSubject[int]()
		r := NewReplay[int](src)
		defer r.Connect().Unsubscribe()

		src.Next(1)
		src.Next(2)

		var first, second []int
		r.Subscribe(record(&first))
		r.Subscribe(record(&second))

		assert.Equal(t, first, second)
	})

	t.Run("connect is idempotent", func(t *testing.T) {
		src := NewSubject[int]()
		r := NewReplay[int](src)

		c1 := r.Connect()
		c2 := r.Connect()
		assert.Same(t, c1, c2)
		assert.Equal(t, 1, src.Observed())

		c1.Unsubscribe()
		assert.Equal(t, 0, src.Observed())
		assert.False(t, r.Connected())
	})

	t.Run("release keeps history and drops live observers", func(t *testing.T) {
		src := NewSubject[int]()
		r := NewReplay[int](src)
		conn := r.Connect()

		var live []int
		r.Subscribe(record(&live))
		src.Next(1)
		conn.Unsubscribe()
		src.Next(2)

		assert.Equal(t, []int{1}, live)
		assert.Equal(t, []int{1}, r.Values())

		var late []int
		r.Subscribe(record(&late))
		assert.Equal(t, []int{1}, late)
	})

	t.Run("observers subscribed before connect receive live values", func(t *testing.T) {
		src := NewSubject[int]()
		r := NewReplay[int](src)

		var got []int
		r.Subscribe(record(&got))
		src.Next(1)
		defer r.Connect().Unsubscribe()
		src.Next(2)

		assert.Equal(t, []int{2}, got)
	})

	t.Run("records the terminal error", func(t *testing.T) {
		src := NewSubject[int]()
		r := NewReplay[int](src)
		defer r.Connect().Unsubscribe()
		boom := errors.New("boom")

		src.Next(1)
		src.Error(boom)

		var got []int
		var gotErr error
		r.Subscribe(Observer[int]{
			Next: func(v int) { got = append(got, v) },
			Err:  func(err error) { gotErr = err },
		})

		assert.Equal(t, []int{1}, got)
		assert.ErrorIs(t, gotErr, boom)
		assert.ErrorIs(t, r.Err(), boom)
	})

	t.Run("observers may unsubscribe while being notified", func(t *testing.T) {
		src := NewSubject[int]()
		r := NewReplay[int](src)
		defer r.Connect().Unsubscribe()

		var sub Subscription
		calls := 0
		sub = r.Subscribe(Func(func(int) {
			calls++
			sub.Unsubscribe()
		}))

		src.Next(1)
		src.Next(2)

		assert.Equal(t, 1, calls)
		assert.Equal(t, []int{1, 2}, r.Values())
	})

	t.Run("observers may read state while being notified", func(t *testing.T) {
		src := NewSubject[int]()
		r := NewReplay[int](src)
		defer r.Connect().Unsubscribe()

		var seen [][]int
		r.Subscribe(Func(func(int) {
			seen = append(seen, r.Values())
			assert.NoError(t, r.Err())
			assert.True(t, r.Connected())
		}))

		src.Next(1)
		src.Next(2)

		assert.Equal(t, [][]int{{1}, {1, 2}}, seen)
	})

	t.Run("observers may release the connection while being notified", func(t *testing.T) {
		src := NewSubject[int]()
		r := NewReplay[int](src)
		conn := r.Connect()

		var got []int
		r.Subscribe(Func(func(v int) {
			got = append(got, v)
			conn.Unsubscribe()
		}))

		src.Next(1)
		src.Next(2)

		assert.Equal(t, []int{1}, got)
		assert.Equal(t, []int{1}, r.Values())
		assert.Equal(t, 0, src.Observed())
	})

	t.Run("unsubscribing keeps the others in subscription order", func(t *testing.T) {
		src := NewSubject[int]()
		r := NewReplay[int](src)
		defer r.Connect().Unsubscribe()

		var order []string
		r.Subscribe(Func(func(int) { order = append(order, "a") }))
		b := r.Subscribe(Func(func(int) { order = append(order, "b") }))
		r.Subscribe(Func(func(int) { order = append(order, "c") }))

		b.Unsubscribe()
		src.Next(1)

		assert.Equal(t, []string{"a", "c"}, order)
	})

	t.Run("connecting to a replay replays its history", func(t *testing.T) {
		src := NewSubject[int]()
		inner := NewReplay[int](src)
		defer inner.Connect().Unsubscribe()
		src.Next(1)

		outer := NewReplay[int](inner)
		defer outer.Connect().Unsubscribe()
		src.Next(2)

		assert.Equal(t, []int{1, 2}, outer.Values())
	})
}

func TestShareReplay(t *testing.T) {
	src := NewSubject[string]()
	r := ShareReplay[string](src)

	src.Next("lost")
	assert.False(t, r.Connected())

	sub := r.Subscribe(Func(func(string) {}))
	assert.True(t, r.Connected())

	src.Next("kept")
	sub.Unsubscribe()
	src.Next("still kept")

	assert.Equal(t, []string{"kept", "still kept"}, r.Values())
	r.Connect().Unsubscribe()
}

func TestReplayConcurrentSubscribers(t *testing.T) {
	src := NewSubject[int]()
	r := NewReplay[int](src)
	defer r.Connect().Unsubscribe()

	const n = 200
	var wg sync.WaitGroup
	results := make([][]int, 8)

	wg.Go(func() {
		for i := range n {
			src.Next(i)
		}
	})
	for i := range results {
		wg.Go(func() {
			var mu sync.Mutex
			r.Subscribe(Func(func(v int) {
				mu.Lock()
				results[i] = append(results[i], v)
				mu.Unlock()
			}))
		})
	}
	wg.Wait()

	for i, got := range results {
		require.Len(t, got, n, "subscriber %d", i)
		for j, v := range got {
			assert.Equal(t, j, v, "subscriber %d saw values out of order", i)
		}
	}
}

func TestReplayProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		before := rapid.SliceOf(rapid.Int()).Draw(rt, "before")
		after := rapid.SliceOf(rapid.Int()).Draw(rt, "after")

		src := NewSubject[int]()
		r := NewReplay[int](src)
		for _, v := range before {
			src.Next(v)
		}
		conn := r.Connect()
		defer conn.Unsubscribe()
		for _, v := range after {
			src.Next(v)
		}

		var got []int
		r.Subscribe(record(&got))

		if len(after) == 0 {
			if len(got) != 0 || len(r.Values()) != 0 {
				rt.Fatalf("expected no history, got %v", got)
			}
			return
		}
		assert.Equal(rt, after, got)
		assert.Equal(rt, after, r.Values())
	})
}
