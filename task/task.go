package task

import (
	"cmp"
	"time"
)

// Status describes whether a task still needs doing.
type Status string

const (
	StatusIncomplete Status = "Incomplete"
	StatusComplete   Status = "Complete"
)

// Task is a unit of work identified by a unique name and scheduled by
// priority, where a lower priority value is more urgent.
type Task struct {
	Name     string
	Priority int
	Due      time.Time
	Status   Status
}

// Incomplete reports whether the task still needs doing.
func (t Task) Incomplete() bool {
	return t.Status != StatusComplete
}

// ByName orders tasks by name ascending.
func ByName(a, b Task) bool {
	return cmp.Compare(a.Name, b.Name) < 0
}

// ByPriority orders tasks by priority ascending, so the most urgent task
// comes first.
func ByPriority(a, b Task) bool {
	return a.Priority < b.Priority
}

// ByDue orders tasks by due date ascending.
func ByDue(a, b Task) bool {
	return a.Due.Before(b.Due)
}
