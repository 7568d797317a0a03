package signaltest

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Formatter compares values and renders the pieces of a diagnostic message.
type Formatter interface {
	// Equal reports whether actual deep-equals expected.
	Equal(expected, actual any) bool

	// Hint renders the header line naming the matcher.
	Hint(name string) string

	// Received renders a value the signal emitted.
	Received(v any) string

	// Expected renders the value the caller asked for.
	Expected(v any) string
}

// DefaultFormatter compares with testify's ObjectsAreEqual and prints values
// with their Go syntax, so strings appear quoted.
type DefaultFormatter struct{}

// Equal implements Formatter.
func (DefaultFormatter) Equal(expected, actual any) bool {
	return assert.ObjectsAreEqual(expected, actual)
}

// Hint implements Formatter.
func (DefaultFormatter) Hint(name string) string {
	return fmt.Sprintf("signaltest.%s(signal)", name)
}

// Received implements Formatter.
func (DefaultFormatter) Received(v any) string {
	return fmt.Sprintf("%#v", v)
}

// Expected implements Formatter.
func (DefaultFormatter) Expected(v any) string {
	return fmt.Sprintf("%#v", v)
}
