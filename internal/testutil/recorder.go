package testutil

import (
	"fmt"
	"strings"
	"sync"
)

// RecordingT is a stand-in for *testing.T that records failures instead of
// reporting them, so tests can assert on how an assertion fails.
//
// Cleanups run in last-in-first-out order when RunCleanups is called.
type RecordingT struct {
	mu       sync.Mutex
	errors   []string
	cleanups []func()
	helpers  int
}

// NewRecordingT creates an empty RecordingT.
func NewRecordingT() *RecordingT {
	return &RecordingT{}
}

// Errorf records a failure.
func (r *RecordingT) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

// Helper counts calls; it has no other effect.
func (r *RecordingT) Helper() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.helpers++
}

// Helpers reports how many times Helper was called.
func (r *RecordingT) Helpers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.helpers
}

// Cleanup registers fn to run in RunCleanups.
func (r *RecordingT) Cleanup(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleanups = append(r.cleanups, fn)
}

// RunCleanups runs and forgets the registered cleanups, newest first.
func (r *RecordingT) RunCleanups() {
	r.mu.Lock()
	fns := r.cleanups
	r.cleanups = nil
	r.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// PendingCleanups reports how many cleanups are registered.
func (r *RecordingT) PendingCleanups() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cleanups)
}

// Failed reports whether any failure was recorded.
func (r *RecordingT) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errors) > 0
}

// Output returns every recorded failure joined by newlines.
func (r *RecordingT) Output() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.errors, "\n")
}
