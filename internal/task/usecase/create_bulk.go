package usecase

import (
	"context"
	"strings"

	"task-quickadd/internal/model"
	"task-quickadd/internal/task"
	"task-quickadd/internal/task/repository"
)

// CreateBulk stores one task per line, linking indented lines to their
// parent. A line that fails to store is skipped; its children become
// top-level tasks.
func (uc *implUseCase) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.CreateBulkOutput{}, task.ErrEmptyInput
	}

	parsed := uc.parseLines(input.RawText, uc.now())
	if len(parsed) == 0 {
		return task.CreateBulkOutput{}, task.ErrNoTasksParsed
	}

	uc.l.Infof(ctx, "CreateBulk: user=%s parsed %d tasks", sc.UserID, len(parsed))

	// Lines reference their parent by its text; the latest line wins.
	idsByLine := make(map[string]string, len(parsed))
	out := task.CreateBulkOutput{Tasks: make([]task.CreatedTask, 0, len(parsed))}

	for _, p := range parsed {
		stored, err := uc.repo.Create(ctx, repository.CreateOptions{
			UserID:   sc.UserID,
			Title:    p.title,
			Project:  p.project,
			ParentID: idsByLine[p.parent],
			DueDate:  p.due,
		})
		if err != nil {
			uc.l.Errorf(ctx, "CreateBulk: failed to store task %q: %v", p.title, err)
			out.Failed = append(out.Failed, p.title)
			delete(idsByLine, p.raw)
			continue
		}
		idsByLine[p.raw] = stored.ID

		out.Tasks = append(out.Tasks, task.CreatedTask{
			Task:         stored,
			CalendarLink: uc.tryCreateCalendarEvent(ctx, p, stored.URL),
		})
	}

	out.TaskCount = len(out.Tasks)
	if out.TaskCount == 0 {
		return out, task.ErrTaskCreate
	}
	return out, nil
}
