package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deltas walks the timer list from the sentinel head and returns each
// node's raw delta value, in list order.
func (s *Scheduler) deltas() []Ticks {
	var out []Ticks
	for e := s.timerHead.next; e != nil; e = e.next {
		out = append(out, e.timeout)
	}
	return out
}

func TestScheduler_TimeoutStart_PanicsOnZeroTicks(t *testing.T) {
	tasks := []Task{{Body: func(*Task) {}}}
	s := New(tasks)
	var e Event
	s.Bind(&tasks[0], &e)

	assert.PanicsWithValue(t, ErrZeroTimeout, func() {
		s.TimeoutStart(&e, 0)
	})
}

// TestScheduler_TimerList_DeltaEncoding walks through the worked example:
// arm three timers with overlapping absolute deadlines and confirm the
// delta list matches at each step, then decay it by 4, 1 and 5 ticks.
func TestScheduler_TimerList_DeltaEncoding(t *testing.T) {
	tasks := []Task{{Body: func(*Task) {}}}
	s := New(tasks)

	var e1, e2, e3 Event
	require.True(t, s.Bind(&tasks[0], &e1))
	require.True(t, s.Bind(&tasks[0], &e2))
	require.True(t, s.Bind(&tasks[0], &e3))

	s.TimeoutStart(&e1, 5)
	assert.Equal(t, []Ticks{5}, s.deltas())

	s.TimeoutStart(&e2, 3)
	assert.Equal(t, []Ticks{3, 2}, s.deltas())

	s.TimeoutStart(&e3, 10)
	assert.Equal(t, []Ticks{3, 2, 5}, s.deltas())

	s.TickHandle(4)
	assert.Equal(t, []Ticks{1, 5}, s.deltas())
	assert.Equal(t, uint32(0), tasks[0].flag&e1.Mask(), "e1 must not have fired yet")
	assert.NotZero(t, tasks[0].flag&e2.Mask(), "e2 must have fired")
	tasks[0].flag = 0

	s.TickHandle(1)
	assert.Equal(t, []Ticks{5}, s.deltas())
	assert.NotZero(t, tasks[0].flag&e1.Mask(), "e1 must have fired")
	tasks[0].flag = 0

	s.TickHandle(5)
	assert.Empty(t, s.deltas())
	assert.NotZero(t, tasks[0].flag&e3.Mask(), "e3 must have fired")
}

func TestScheduler_TickGetMin(t *testing.T) {
	tasks := []Task{{Body: func(*Task) {}}}
	s := New(tasks)

	assert.Equal(t, Ticks(0), s.TickGetMin())
	assert.False(t, s.TimersPending())

	var e Event
	s.Bind(&tasks[0], &e)
	s.TimeoutStart(&e, 7)

	assert.Equal(t, Ticks(7), s.TickGetMin())
	assert.True(t, s.TimersPending())
}

func TestScheduler_TimeoutStop_IsNoOpIfNotArmed(t *testing.T) {
	tasks := []Task{{Body: func(*Task) {}}}
	s := New(tasks)
	var e Event
	s.Bind(&tasks[0], &e)

	assert.NotPanics(t, func() { s.TimeoutStop(&e) })
	assert.Empty(t, s.deltas())
}

func TestScheduler_TimeoutStop_UnlinksAndFoldsIntoSuccessor(t *testing.T) {
	tasks := []Task{{Body: func(*Task) {}}}
	s := New(tasks)
	var e1, e2, e3 Event
	s.Bind(&tasks[0], &e1)
	s.Bind(&tasks[0], &e2)
	s.Bind(&tasks[0], &e3)

	s.TimeoutStart(&e1, 3)
	s.TimeoutStart(&e2, 5) // deltas: e1=3, e2=2
	s.TimeoutStart(&e3, 8) // deltas: e1=3, e2=2, e3=3
	require.Equal(t, []Ticks{3, 2, 3}, s.deltas())

	s.TimeoutStop(&e2)
	// e2's remaining 2 folds into e3: e1=3, e3=5
	assert.Equal(t, []Ticks{3, 5}, s.deltas())
	assert.False(t, e2.Armed())
}

func TestScheduler_TimeoutStop_UnlinksTail(t *testing.T) {
	tasks := []Task{{Body: func(*Task) {}}}
	s := New(tasks)
	var e1, e2 Event
	s.Bind(&tasks[0], &e1)
	s.Bind(&tasks[0], &e2)

	s.TimeoutStart(&e1, 3)
	s.TimeoutStart(&e2, 8) // deltas: e1=3, e2=5

	assert.NotPanics(t, func() { s.TimeoutStop(&e2) })
	assert.Equal(t, []Ticks{3}, s.deltas())
}

func TestScheduler_TimeoutStart_ReArmsAlreadyArmedEvent(t *testing.T) {
	tasks := []Task{{Body: func(*Task) {}}}
	s := New(tasks)
	var e1, e2 Event
	s.Bind(&tasks[0], &e1)
	s.Bind(&tasks[0], &e2)

	s.TimeoutStart(&e1, 5)
	s.TimeoutStart(&e2, 5) // deltas: e1=5, e2=0... both at same absolute tick

	s.TimeoutStart(&e1, 2) // re-arm e1 to fire sooner
	assert.Equal(t, Ticks(2), s.TickGetMin())
}

func TestScheduler_TimeoutStart_OnUnboundEventIsNoOp(t *testing.T) {
	tasks := []Task{{Body: func(*Task) {}}}
	s := New(tasks)
	var e Event

	assert.NotPanics(t, func() { s.TimeoutStart(&e, 5) })
	assert.Empty(t, s.deltas())
}

func TestScheduler_TickHandle_FiresNothingWhenListEmpty(t *testing.T) {
	tasks := []Task{{Body: func(*Task) {}}}
	s := New(tasks)

	assert.NotPanics(t, func() { s.TickHandle(100) })
}
