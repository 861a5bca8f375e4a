package task_test

import (
	"testing"
	"time"

	"github.com/davidvella/skipheap/task"
	"github.com/stretchr/testify/assert"
)

func TestComparators(t *testing.T) {
	earlier := time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)
	later := time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC)

	a := task.Task{Name: "a", Priority: 1, Due: later}
	b := task.Task{Name: "b", Priority: 2, Due: earlier}

	assert.True(t, task.ByName(a, b))
	assert.False(t, task.ByName(b, a))
	assert.False(t, task.ByName(a, a))

	assert.True(t, task.ByPriority(a, b))
	assert.False(t, task.ByPriority(b, a))

	assert.True(t, task.ByDue(b, a))
	assert.False(t, task.ByDue(a, b))
}

func TestIncomplete(t *testing.T) {
	assert.True(t, task.Task{Status: task.StatusIncomplete}.Incomplete())
	assert.True(t, task.Task{}.Incomplete(), "zero status counts as incomplete")
	assert.False(t, task.Task{Status: task.StatusComplete}.Incomplete())
}
