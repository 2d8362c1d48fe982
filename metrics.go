package kernel

import "sync/atomic"

// stats holds the scheduler's internal lock-free counters. All fields are
// plain integer counts — no floating point, no percentile estimation —
// matching the kernel's integer-only-tick-arithmetic discipline.
type stats struct {
	dispatches   atomic.Uint64
	idleCycles   atomic.Uint64
	bindRefusals atomic.Uint64
	postsDropped atomic.Uint64
}

// Stats is a point-in-time snapshot of a [Scheduler]'s runtime counters,
// returned by [Scheduler.Stats]. Intended for diagnostics only; nothing in
// the scheduling algorithm depends on these values.
type Stats struct {
	// Dispatches is the total number of task bodies invoked.
	Dispatches uint64
	// IdleCycles is the number of full scans of the task table that found
	// nothing ready.
	IdleCycles uint64
	// BindRefusals is the number of Bind/BindISR calls that returned
	// false.
	BindRefusals uint64
	// PostsDropped is the number of Post/PostISR calls made against an
	// unbound event.
	PostsDropped uint64
}
