package kernel

// noCopy helps 'go vet' flag accidental copies of values containing it.
// See https://golang.org/issues/8005#issuecomment-190753527 for details.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Event is a single-bit signal that can be bound to exactly one [Task],
// raised from any context with [Scheduler.Post] or [Scheduler.PostISR],
// and optionally armed against the tick source as a one-shot timeout with
// [Scheduler.TimeoutStart].
//
// The zero value is a valid, unbound, unarmed Event — no constructor is
// needed. Once bound (via [Scheduler.Bind]), an Event must not be copied:
// it is linked into the scheduler's internal timer list by address when
// armed, and a copy would silently detach it from that list while the
// original's bookkeeping fields went stale.
type Event struct {
	_ noCopy

	task    *Task
	mask    uint32
	timeout Ticks
	next    *Event
}

// ID reports the index of the task this event is bound to, or -1 if the
// event is not yet bound.
func (e *Event) ID() int {
	if e.task == nil {
		return -1
	}
	return e.task.id
}

// Mask returns the single bit this event raises in its bound task's
// ready-flag word, or 0 if the event is not yet bound.
func (e *Event) Mask() uint32 { return e.mask }

// Armed reports whether the event currently has a pending timeout.
func (e *Event) Armed() bool { return e.timeout > 0 }

// bound reports whether the event has been successfully bound to a task.
func (e *Event) bound() bool { return e.task != nil }
