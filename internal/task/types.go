package task

import (
	"time"

	"task-quickadd/internal/model"
)

// QuickAddInput is the input for creating a single task.
type QuickAddInput struct {
	Text string
}

// QuickAddOutput is the result of QuickAdd.
type QuickAddOutput struct {
	Task CreatedTask
}

// CreateBulkInput is the input for bulk task creation.
type CreateBulkInput struct {
	RawText string // One task per line, subtasks indented below their parent
}

// CreatedTask is a task that was stored, with its calendar event if one was
// created.
type CreatedTask struct {
	model.Task
	CalendarLink string
}

// CreateBulkOutput is the result of the bulk task creation operation.
type CreateBulkOutput struct {
	Tasks     []CreatedTask
	TaskCount int
	Failed    []string // Titles that could not be stored
}

// PreviewInput is the input for Preview. A zero Now means the service clock.
type PreviewInput struct {
	Text string
	Now  time.Time
}

// PreviewItem is one parsed line.
type PreviewItem struct {
	Title   string
	Project string
	Parent  string
	DueDate *time.Time
}

// PreviewOutput is the result of Preview.
type PreviewOutput struct {
	Items []PreviewItem
	Now   time.Time
}

// ListInput filters stored tasks.
type ListInput struct {
	Project string
	Limit   int
}

// ListOutput is the result of List.
type ListOutput struct {
	Tasks []model.Task
	Count int
}
