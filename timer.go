package kernel

// TimeoutStart arms event to raise its bit after ticks elapse, measured
// from now. If event was already armed, its pending timeout is replaced
// (not extended) by the new one.
//
// TimeoutStart panics with [ErrZeroTimeout] if ticks is 0 — see
// [ErrZeroTimeout] for why. event must already be bound (see
// [Scheduler.Bind]); arming an unbound event is a silent no-op, since
// there is no task for it to ever wake.
//
// TimeoutStart takes the scheduler's critical section; call
// [Scheduler.TimeoutStartISR] instead from interrupt context.
func (s *Scheduler) TimeoutStart(e *Event, ticks Ticks) {
	if ticks == 0 {
		panic(ErrZeroTimeout)
	}
	s.cfg.critEnter()
	s.timeoutStartLocked(e, ticks)
	s.cfg.critExit()
}

// TimeoutStartISR is the interrupt-context variant of
// [Scheduler.TimeoutStart]: identical logic, no critical section taken.
func (s *Scheduler) TimeoutStartISR(e *Event, ticks Ticks) {
	if ticks == 0 {
		panic(ErrZeroTimeout)
	}
	s.timeoutStartLocked(e, ticks)
}

func (s *Scheduler) timeoutStartLocked(e *Event, ticks Ticks) {
	if !e.bound() {
		return
	}
	if e.timeout > 0 {
		s.unlinkLocked(e)
	}

	prev := &s.timerHead
	remaining := ticks
	for prev.next != nil && prev.next.timeout <= remaining {
		remaining -= prev.next.timeout
		prev = prev.next
	}

	e.timeout = remaining
	if prev.next != nil {
		prev.next.timeout -= remaining
	}
	e.next = prev.next
	prev.next = e

	s.cfg.logTimerArmed(e.ID(), ticks)
}

// TimeoutStop disarms event. It is a silent no-op if event has no pending
// timeout.
//
// TimeoutStop takes the scheduler's critical section; call
// [Scheduler.TimeoutStopISR] instead from interrupt context.
func (s *Scheduler) TimeoutStop(e *Event) {
	if e.timeout == 0 {
		return
	}
	s.cfg.critEnter()
	s.unlinkLocked(e)
	s.cfg.critExit()
	s.cfg.logTimerStopped(e.ID())
}

// TimeoutStopISR is the interrupt-context variant of
// [Scheduler.TimeoutStop]: identical logic, no critical section taken.
func (s *Scheduler) TimeoutStopISR(e *Event) {
	if e.timeout == 0 {
		return
	}
	s.unlinkLocked(e)
	s.cfg.logTimerStopped(e.ID())
}

// unlinkLocked removes e from the timer list, folding its remaining delta
// into its successor so every later node's absolute deadline is
// unaffected. Must be called with the critical section already held (or
// from a context where it is not required).
func (s *Scheduler) unlinkLocked(e *Event) {
	prev := &s.timerHead
	for prev.next != nil && prev.next != e {
		prev = prev.next
	}
	if prev.next != e {
		// Not linked (already fired, or never armed). Nothing to do.
		return
	}
	prev.next = e.next
	if e.next != nil {
		e.next.timeout += e.timeout
	}
	e.next = nil
	e.timeout = 0
}

// TickHandle advances the timer list by ticks, firing (posting the bound
// event's bit for) every timer whose remaining delta is covered, and
// deducting the remainder from the next pending timer.
//
// TickHandle takes the scheduler's critical section; call
// [Scheduler.TickHandleISR] instead from interrupt context (the common
// case — tick sources are usually timer interrupts).
func (s *Scheduler) TickHandle(ticks Ticks) {
	s.cfg.critEnter()
	s.tickHandleLocked(ticks)
	s.cfg.critExit()
}

// TickHandleISR is the interrupt-context variant of
// [Scheduler.TickHandle]: identical logic, no critical section taken.
func (s *Scheduler) TickHandleISR(ticks Ticks) {
	s.tickHandleLocked(ticks)
}

func (s *Scheduler) tickHandleLocked(ticks Ticks) {
	for s.timerHead.next != nil && s.timerHead.next.timeout <= ticks {
		e := s.timerHead.next
		ticks -= e.timeout
		s.timerHead.next = e.next

		e.next = nil
		e.timeout = 0

		id := e.ID()
		if e.bound() {
			e.task.flag |= e.mask
		}
		s.cfg.logTimerFired(id)
	}
	if s.timerHead.next != nil {
		s.timerHead.next.timeout -= ticks
	}
}

// TickGetMin returns the number of ticks until the nearest pending
// timeout fires, or 0 if no timer is armed.
func (s *Scheduler) TickGetMin() Ticks {
	s.cfg.critEnter()
	defer s.cfg.critExit()
	if s.timerHead.next == nil {
		return 0
	}
	return s.timerHead.next.timeout
}

// TimersPending reports whether at least one event has a pending timeout.
func (s *Scheduler) TimersPending() bool {
	return s.TickGetMin() > 0
}
