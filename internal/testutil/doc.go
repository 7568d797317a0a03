// Package testutil provides shared test helpers for sigwatch.
//
//   - RecordingT: a stand-in for *testing.T that records failures and
//     cleanups, used to test how assertions fail
//   - EmitAfter: emits values on a Subject from another goroutine
//   - Collect: records everything a signal delivers
//   - Within, Elapsed: bound and measure matcher calls
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    rt := testutil.NewRecordingT()
//	    signaltest.AssertEmits(rt, signal.NewSubject[int]())
//	    assert.Contains(t, rt.Output(), "Signal did not emit")
//	}
package testutil
