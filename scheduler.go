package kernel

// Ticks is the kernel's unit of time: an opaque, monotonically advancing
// count supplied by the host's tick source. All timing in this package is
// integer tick arithmetic; nothing here ever touches wall-clock time or
// floating point.
type Ticks uint32

// Scheduler is a fixed-priority, cooperative, non-preemptive task
// executor. Construct one with [New] and hand it to exactly one thread of
// execution via [Scheduler.Start].
type Scheduler struct {
	tasks  []Task
	cfg    *config
	cursor int

	readySnapshot uint32

	timerHead Event // sentinel; timerHead.next is the first armed event

	stats stats
	state schedulerState
}

// New builds a Scheduler over the given task table. tasks is retained by
// reference, not copied: its backing array must remain valid and must not
// be reallocated (e.g. by appending to the original slice) for the
// lifetime of the returned Scheduler. Every Task's ID becomes its index in
// tasks; index 0 is the highest scheduling priority.
//
// New panics with [ErrNilTaskTable] if any task has a nil Body.
func New(tasks []Task, opts ...Option) *Scheduler {
	for i := range tasks {
		if tasks[i].Body == nil {
			panic(ErrNilTaskTable)
		}
		tasks[i].id = i
	}
	s := &Scheduler{
		tasks: tasks,
		cfg:   resolveOptions(opts),
	}
	return s
}

// Start calls every task's Init function, in table order, then enters the
// scheduling loop. It never returns. Calling Start more than once on the
// same Scheduler panics with [ErrAlreadyStarted].
func (s *Scheduler) Start() {
	if !s.state.tryStart() {
		panic(ErrAlreadyStarted)
	}
	for i := range s.tasks {
		if s.tasks[i].Init != nil {
			s.tasks[i].Init(&s.tasks[i])
		}
	}
	for {
		s.runIteration()
	}
}

// runIteration performs one pass of the scheduler's algorithm: call the
// begin hook, examine the task at the current cursor, and either dispatch
// it (if ready — resetting the cursor to 0 and looping back to the begin
// hook, skipping the end hook, so any ready task restarts the scan from
// the top) or advance the cursor (calling the idle hook on wraparound),
// call the end hook, and return.
//
// One call processes exactly one cursor position that turns out not
// ready, however many ready dispatches preceded it. Split out of Start so
// it can be driven directly, a bounded number of times, by tests.
func (s *Scheduler) runIteration() {
	if len(s.tasks) == 0 {
		s.cfg.beginHook()
		s.cfg.idleHook()
		s.stats.idleCycles.Add(1)
		s.cfg.logIdle()
		s.cfg.endHook()
		return
	}

	for {
		s.cfg.beginHook()

		i := s.cursor

		s.cfg.critEnter()
		ready := s.tasks[i].flag
		s.tasks[i].flag = 0
		s.cfg.critExit()

		if ready != 0 {
			s.dispatch(i, ready)
			s.cursor = 0
			continue
		}

		if i < len(s.tasks)-1 {
			s.cursor = i + 1
		} else {
			s.cursor = 0
			s.cfg.idleHook()
			s.stats.idleCycles.Add(1)
			s.cfg.logIdle()
		}
		s.cfg.endHook()
		return
	}
}

// dispatch runs the task at index i against the given ready snapshot and
// updates its max-tick diagnostic.
func (s *Scheduler) dispatch(i int, ready uint32) {
	s.readySnapshot = ready
	t := &s.tasks[i]

	t0 := s.cfg.timestamp()
	s.cfg.logTaskDispatched(t.id, ready)
	t.Body(t)
	t1 := s.cfg.timestamp()

	if d := t1 - t0; d > t.maxTick {
		t.maxTick = d
	}
	s.stats.dispatches.Add(1)
}

// Bind associates event with task, assigning it the next free one-hot bit
// in task's ready-flag word. It reports false, making no change, if task
// already has 32 bound events or event is already bound to some task.
// Binding is monotonic: there is no unbind.
//
// Bind takes the scheduler's critical section; call [Scheduler.BindISR]
// instead from interrupt context.
func (s *Scheduler) Bind(t *Task, e *Event) bool {
	s.cfg.critEnter()
	ok := s.bindLocked(t, e)
	s.cfg.critExit()
	return ok
}

// BindISR is the interrupt-context variant of [Scheduler.Bind]: identical
// logic, no critical section taken.
func (s *Scheduler) BindISR(t *Task, e *Event) bool {
	return s.bindLocked(t, e)
}

func (s *Scheduler) bindLocked(t *Task, e *Event) bool {
	if t.counter >= 32 || e.bound() {
		s.cfg.logBindRefused(t.id)
		s.stats.bindRefusals.Add(1)
		return false
	}
	e.mask = 1 << t.counter
	e.task = t // publish last: mask must be visible before binding is observable
	t.counter++
	return true
}

// Post raises event's bit in its bound task's ready-flag word. It is a
// silent no-op if event is not yet bound.
//
// Post takes the scheduler's critical section; call [Scheduler.PostISR]
// instead from interrupt context.
func (s *Scheduler) Post(e *Event) {
	if !e.bound() {
		s.stats.postsDropped.Add(1)
		s.cfg.logPostDropped()
		return
	}
	s.cfg.critEnter()
	e.task.flag |= e.mask
	s.cfg.critExit()
}

// PostISR is the interrupt-context variant of [Scheduler.Post]: identical
// logic, no critical section taken.
func (s *Scheduler) PostISR(e *Event) {
	if !e.bound() {
		s.stats.postsDropped.Add(1)
		s.cfg.logPostDropped()
		return
	}
	e.task.flag |= e.mask
}

// Assert reports whether event's bit was set in the ready-flag snapshot
// captured for the dispatch currently in progress. It is only meaningful
// while called from within a task's Body — the snapshot it reads is
// overwritten by the next dispatch.
func (s *Scheduler) Assert(e *Event) bool {
	return e.bound() && s.readySnapshot&e.mask == e.mask
}

// Stats returns a snapshot of the scheduler's runtime counters.
func (s *Scheduler) Stats() Stats {
	return Stats{
		Dispatches:   s.stats.dispatches.Load(),
		IdleCycles:   s.stats.idleCycles.Load(),
		BindRefusals: s.stats.bindRefusals.Load(),
		PostsDropped: s.stats.postsDropped.Load(),
	}
}
