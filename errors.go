package kernel

import "errors"

// ErrZeroTimeout is the panic value raised by [Scheduler.TimeoutStart] and
// [Scheduler.TimeoutStartISR] when called with ticks == 0.
//
// A zero-tick timeout has no well-defined meaning in a delta-encoded list
// that decays strictly in whole ticks: the caller almost certainly meant to
// raise the event immediately, which is what [Scheduler.Post] is for. This
// is the one place the kernel turns programmer misuse into a loud,
// debuggable failure rather than a silent zero-delta node that would fire
// on the very next tick.
var ErrZeroTimeout = errors.New("kernel: timeout_start called with ticks == 0")

// ErrNilTaskTable is the panic value raised by [New] when any [Task] in the
// table has a nil Body. An empty table is valid (the scheduler simply idles
// forever); a task with no body to run is not.
var ErrNilTaskTable = errors.New("kernel: task table contains a task with a nil Body")

// ErrAlreadyStarted is the panic value raised by [Scheduler.Start] if
// called more than once on the same Scheduler — Start is a one-way,
// one-time entry point, not a restartable loop.
var ErrAlreadyStarted = errors.New("kernel: Start called more than once on the same Scheduler")
