package kernel

import "sync/atomic"

// schedulerState tracks whether a Scheduler has been started, guarding
// the "Start runs on exactly one thread of execution, for the lifetime of
// the program" contract with a cheap, lock-free check rather than leaving
// a double-Start call to silently corrupt the cursor/ready-flag state.
//
// A single CAS is all this needs: unlike a general-purpose event loop,
// this scheduler has exactly two states (not yet started, started) and
// never transitions back — Start does not return.
type schedulerState struct {
	started atomic.Bool
}

// tryStart reports whether this call is the one that gets to start the
// scheduler; it returns false on every call after the first.
func (s *schedulerState) tryStart() bool {
	return s.started.CompareAndSwap(false, true)
}
