package http

import (
	"errors"
	"strings"
	"time"

	"task-quickadd/internal/model"
	"task-quickadd/internal/task"
	"task-quickadd/pkg/response"
)

// --- Request DTOs ---

type quickAddReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r quickAddReq) validate() error {
	if strings.ContainsAny(r.Text, "\r\n") {
		return errors.New("text must be a single line, use /quick-add/bulk for several tasks")
	}
	return nil
}

func (r quickAddReq) toInput() task.QuickAddInput {
	return task.QuickAddInput{Text: r.Text}
}

// ---

type bulkReq struct {
	Text string `json:"text" binding:"required,max=20000"`
}

func (r bulkReq) toInput() task.CreateBulkInput {
	return task.CreateBulkInput{RawText: r.Text}
}

// ---

type previewReq struct {
	Text string `json:"text" binding:"required,max=20000"`
	Now  string `json:"now"` // RFC3339, optional
}

func (r previewReq) toInput() (task.PreviewInput, error) {
	input := task.PreviewInput{Text: r.Text}
	if r.Now == "" {
		return input, nil
	}
	now, err := time.Parse(time.RFC3339, r.Now)
	if err != nil {
		return input, errors.New("now must be an RFC3339 timestamp")
	}
	input.Now = now
	return input, nil
}

// ---

type listReq struct {
	Project string `form:"project"`
	Limit   int    `form:"limit"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return task.ListInput{Project: r.Project, Limit: limit}
}

// --- Response DTOs ---

type taskResp struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Project      string             `json:"project,omitempty"`
	ParentID     string             `json:"parent_id,omitempty"`
	DueDate      *response.DateTime `json:"due_date,omitempty"`
	URL          string             `json:"url,omitempty"`
	CalendarLink string             `json:"calendar_link,omitempty"`
}

type quickAddResp struct {
	Task taskResp `json:"task"`
}

type bulkResp struct {
	Tasks  []taskResp `json:"tasks"`
	Count  int        `json:"count"`
	Failed []string   `json:"failed,omitempty"`
}

type previewItemResp struct {
	Title   string             `json:"title"`
	Project string             `json:"project,omitempty"`
	Parent  string             `json:"parent,omitempty"`
	DueDate *response.DateTime `json:"due_date,omitempty"`
}

type previewResp struct {
	Now   response.DateTime `json:"now"`
	Items []previewItemResp `json:"items"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func newTaskResp(t model.Task, calendarLink string) taskResp {
	return taskResp{
		ID:           t.ID,
		Title:        t.Title,
		Project:      t.Project,
		ParentID:     t.ParentID,
		DueDate:      response.NewDateTime(t.DueDate),
		URL:          t.URL,
		CalendarLink: calendarLink,
	}
}

func (h *handler) newQuickAddResp(o task.QuickAddOutput) quickAddResp {
	return quickAddResp{Task: newTaskResp(o.Task.Task, o.Task.CalendarLink)}
}

func (h *handler) newBulkResp(o task.CreateBulkOutput) bulkResp {
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, newTaskResp(t.Task, t.CalendarLink))
	}
	return bulkResp{Tasks: tasks, Count: o.TaskCount, Failed: o.Failed}
}

func (h *handler) newPreviewResp(o task.PreviewOutput) previewResp {
	items := make([]previewItemResp, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, previewItemResp{
			Title:   it.Title,
			Project: it.Project,
			Parent:  it.Parent,
			DueDate: response.NewDateTime(it.DueDate),
		})
	}
	return previewResp{Now: response.DateTime(o.Now), Items: items}
}

func (h *handler) newListResp(o task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, newTaskResp(t, ""))
	}
	return listResp{Tasks: tasks, Count: o.Count}
}
