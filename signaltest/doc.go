// Package signaltest provides assertions about the emission behaviour of
// signals.
//
// # Watching
//
// Watch turns a cold signal into a hot, replaying one that starts recording
// immediately and is released when the test finishes:
//
//	src := signal.NewSubject[string]()
//	hot := signaltest.Watch(t, src)
//	src.Next("a")
//
// # Matching
//
// Emit and EmitValue race the first (matching) value of a signal against a
// timeout window, DefaultTimeout unless WithTimeout says otherwise, and
// return a MatchResult. The result's Pass field says whether the signal
// emitted; its Message is rendered on demand and describes whichever branch
// happened, so it reads correctly both for plain and for negated use.
//
// # Assertions
//
// The Assert functions wire the matchers into testify:
//
//	signaltest.AssertEmitsValue(t, hot, "a")
//	signaltest.AssertNotEmits(t, src)
//
// Gomega users can use the matchers in the gsignal subpackage instead.
package signaltest
