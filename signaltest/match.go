package signaltest

import (
	"context"
	"fmt"

	"github.com/thruflo/sigwatch/signal"
)

// MatchResult is the verdict of a matcher.
//
// Pass reports whether the signal emitted (a matching value, for EmitValue).
// Message describes whatever happened: the emitted value when Pass is true,
// the absence of one otherwise. It is rendered only when called.
type MatchResult struct {
	Pass bool

	// Actual is the value that decided a passing result, or nil.
	Actual any

	message func() string
}

// Message renders the diagnostic text.
func (r MatchResult) Message() string {
	if r.message == nil {
		return ""
	}
	return r.message()
}

// Satisfied applies negation: a plain assertion is satisfied by a passing
// result, a negated one by a failing result.
func (r MatchResult) Satisfied(negated bool) bool {
	return r.Pass != negated
}

// Emit reports whether s emits any value within the timeout.
func Emit[T any](ctx context.Context, s signal.Signal[T], opts ...Option) MatchResult {
	o := newOptions(opts)
	outcome, _ := await(ctx, s, o, func(T) bool { return true })
	return emitResult(o.formatter, outcome)
}

// EmitValue reports whether s emits a value equal to expected within the
// timeout. A signal that only emits other values fails exactly like a silent
// one.
func EmitValue[T any](ctx context.Context, s signal.Signal[T], expected T, opts ...Option) MatchResult {
	o := newOptions(opts)
	outcome, _ := await(ctx, s, o, func(v T) bool {
		return o.formatter.Equal(expected, v)
	})
	return emitValueResult(o.formatter, expected, outcome)
}

func emitResult[T any](f Formatter, outcome Outcome[T]) MatchResult {
	v, ok := outcome.Value()
	if !ok {
		return MatchResult{
			message: func() string {
				return fmt.Sprintf("%s\n\nExpected signal to emit\nSignal did not emit", f.Hint("Emit"))
			},
		}
	}

	return MatchResult{
		Pass:   true,
		Actual: v,
		message: func() string {
			return fmt.Sprintf("%s\n\nExpected signal not to emit\nReceived: %s",
				f.Hint("Emit"), f.Received(v))
		},
	}
}

func emitValueResult[T any](f Formatter, expected T, outcome Outcome[T]) MatchResult {
	v, ok := outcome.Value()
	if !ok {
		return MatchResult{
			message: func() string {
				return fmt.Sprintf("%s\n\nExpected: %s\nSignal did not emit the expected value",
					f.Hint("EmitValue"), f.Expected(expected))
			},
		}
	}

	return MatchResult{
		Pass:   f.Equal(expected, v),
		Actual: v,
		message: func() string {
			return fmt.Sprintf("%s\n\nExpected signal not to emit %s\nReceived: %s",
				f.Hint("EmitValue"), f.Received(expected), f.Received(v))
		},
	}
}
