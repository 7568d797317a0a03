package signaltest

import (
	"context"

	"github.com/stretchr/testify/assert"
	"github.com/thruflo/sigwatch/signal"
)

// TB is the part of testing.TB the assertions need.
type TB interface {
	assert.TestingT
	Helper()
	Cleanup(func())
}

// AssertEmits asserts that s emits a value within the timeout.
func AssertEmits[T any](t TB, s signal.Signal[T], opts ...Option) bool {
	t.Helper()
	return check(t, Emit(context.Background(), s, scoped(t, opts)...), false)
}

// AssertNotEmits asserts that s emits nothing within the timeout.
func AssertNotEmits[T any](t TB, s signal.Signal[T], opts ...Option) bool {
	t.Helper()
	return check(t, Emit(context.Background(), s, scoped(t, opts)...), true)
}

// AssertEmitsValue asserts that s emits a value equal to expected within
// the timeout.
func AssertEmitsValue[T any](t TB, s signal.Signal[T], expected T, opts ...Option) bool {
	t.Helper()
	return check(t, EmitValue(context.Background(), s, expected, scoped(t, opts)...), false)
}

// AssertNotEmitsValue asserts that s does not emit a value equal to expected
// within the timeout.
func AssertNotEmitsValue[T any](t TB, s signal.Signal[T], expected T, opts ...Option) bool {
	t.Helper()
	return check(t, EmitValue(context.Background(), s, expected, scoped(t, opts)...), true)
}

// scoped releases the matcher's subscription when the test ends.
func scoped(t TB, opts []Option) []Option {
	return append([]Option{WithScope(t)}, opts...)
}

func check(t TB, res MatchResult, negated bool) bool {
	t.Helper()
	if res.Satisfied(negated) {
		return true
	}
	return assert.Fail(t, res.Message())
}
