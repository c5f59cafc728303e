package model

import "time"

// Task is a task created through quick add.
type Task struct {
	ID        string
	Title     string     // Title with date, time and project phrases removed
	Project   string     // Empty when the task has no project
	ParentID  string     // ID of the parent task, empty for top-level tasks
	DueDate   *time.Time // nil when no date was recognised
	URL       string     // Deep link into the task store, if it has a UI
	CreatedAt time.Time
}

// HasDueDate reports whether the task is scheduled.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}
