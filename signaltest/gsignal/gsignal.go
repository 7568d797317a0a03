// Package gsignal provides gomega matchers for signals.
//
//	g := gomega.NewWithT(t)
//	hot := signaltest.Watch(t, src)
//	src.Next("a")
//	g.Expect(hot).To(gsignal.EmitValue("a"))
//	g.Expect(src).NotTo(gsignal.Emit())
//
// The actual value must implement signal.Untyped, which every Subject and
// Replay does; wrap other signals with signal.Erase.
package gsignal

import (
	"context"
	"fmt"
	"reflect"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
	"github.com/thruflo/sigwatch/signal"
	"github.com/thruflo/sigwatch/signaltest"
)

// Formatter renders diagnostics with gomega's format package and compares
// with gomega's Equal.
type Formatter struct{}

// Equal implements signaltest.Formatter. A nil expected value matches with
// BeNil, since gomega's Equal refuses to compare nil with nil.
func (Formatter) Equal(expected, actual any) bool {
	matcher := gomega.Equal(expected)
	if expected == nil {
		matcher = gomega.BeNil()
	}
	ok, err := matcher.Match(actual)
	if err != nil {
		return reflect.DeepEqual(expected, actual)
	}
	return ok
}

// Hint implements signaltest.Formatter.
func (Formatter) Hint(name string) string {
	return fmt.Sprintf("Expect(signal).To(gsignal.%s())", name)
}

// Received implements signaltest.Formatter.
func (Formatter) Received(v any) string {
	return "\n" + format.Object(v, 1)
}

// Expected implements signaltest.Formatter.
func (Formatter) Expected(v any) string {
	return "\n" + format.Object(v, 1)
}

// Emit succeeds if the signal emits any value within the timeout.
func Emit(opts ...signaltest.Option) types.GomegaMatcher {
	return &emitMatcher{name: "Emit", opts: opts}
}

// EmitValue succeeds if the signal emits a value equal to expected within
// the timeout.
func EmitValue(expected any, opts ...signaltest.Option) types.GomegaMatcher {
	return &emitMatcher{name: "EmitValue", expected: expected, matchValue: true, opts: opts}
}

type emitMatcher struct {
	name       string
	expected   any
	matchValue bool
	opts       []signaltest.Option
	result     signaltest.MatchResult
}

func (m *emitMatcher) Match(actual any) (bool, error) {
	u, ok := actual.(signal.Untyped)
	if !ok {
		return false, fmt.Errorf("%s matcher expects a signal.Untyped.  Got:\n%s", m.name, format.Object(actual, 1))
	}

	opts := append([]signaltest.Option{signaltest.WithFormatter(Formatter{})}, m.opts...)
	s := signal.Any(u)
	if m.matchValue {
		m.result = signaltest.EmitValue(context.Background(), s, m.expected, opts...)
	} else {
		m.result = signaltest.Emit(context.Background(), s, opts...)
	}
	return m.result.Pass, nil
}

// FailureMessage is shown when the signal did not emit.
func (m *emitMatcher) FailureMessage(any) string {
	return m.result.Message()
}

// NegatedFailureMessage is shown when the signal emitted but should not have.
func (m *emitMatcher) NegatedFailureMessage(any) string {
	return m.result.Message()
}
