package kernel

// TaskFunc is a task's init or body function. The Task passed in is the
// same value stored in the scheduler's table; its accessor methods
// (ID, Counter, MaxTick) are safe to call from within the function, but
// it must not be retained past the call — its address is only stable for
// the lifetime of the [Scheduler] that owns it.
type TaskFunc func(t *Task)

// Task is a single entry in a scheduler's fixed task table. Declare a
// table as a plain slice literal:
//
//	tasks := []kernel.Task{
//	    {Body: blink},
//	    {Init: setupSensor, Body: pollSensor},
//	}
//
// Init is optional and, if set, is called exactly once by [Scheduler.Start]
// before the scheduling loop begins, in table order. Body is required and
// is called once per dispatch, whenever at least one bit in the task's
// ready-flag word is set.
//
// The remaining fields are maintained by the scheduler and must not be set
// by application code; their zero values are what [New] expects. A Task
// with a nil Body (including the zero value) makes [New] panic.
type Task struct {
	Init TaskFunc
	Body TaskFunc

	id      int
	flag    uint32
	counter uint8
	maxTick Ticks
}

// ID returns the task's index in its scheduler's table, assigned by [New].
// Before the task has been passed to [New], ID returns 0.
func (t *Task) ID() int { return t.id }

// Counter returns the number of events currently bound to this task.
func (t *Task) Counter() int { return int(t.counter) }

// MaxTick returns the largest body-execution duration observed so far, in
// ticks, as measured by the scheduler's configured timestamp source. It is
// zero if no [WithTimestampSource] was configured or the task has not yet
// run.
func (t *Task) MaxTick() Ticks { return t.maxTick }
