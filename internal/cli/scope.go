package cli

import "sync"

// runScope collects cleanups for one command run, the way a test collects
// them with t.Cleanup.
type runScope struct {
	mu  sync.Mutex
	fns []func()
}

func (s *runScope) Cleanup(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fns = append(s.fns, fn)
}

// Close runs the cleanups newest first. It is safe to call more than once.
func (s *runScope) Close() {
	s.mu.Lock()
	fns := s.fns
	s.fns = nil
	s.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
