package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_ZeroValueReadyForTable(t *testing.T) {
	var task Task
	assert.Equal(t, 0, task.ID())
	assert.Equal(t, 0, task.Counter())
	assert.Equal(t, Ticks(0), task.MaxTick())
}

func TestTask_IDAssignedByNew(t *testing.T) {
	tasks := []Task{
		{Body: func(*Task) {}},
		{Body: func(*Task) {}},
		{Body: func(*Task) {}},
	}
	New(tasks)
	for i, task := range tasks {
		assert.Equal(t, i, task.ID())
	}
}

func TestNew_PanicsOnNilBody(t *testing.T) {
	tasks := []Task{{Body: func(*Task) {}}, {}}
	assert.PanicsWithValue(t, ErrNilTaskTable, func() {
		New(tasks)
	})
}

func TestNew_EmptyTableIsValid(t *testing.T) {
	assert.NotPanics(t, func() {
		New(nil)
	})
}
