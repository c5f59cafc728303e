package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-quickadd/internal/model"
	"task-quickadd/internal/task"
	"task-quickadd/internal/task/repository"
)

// QuickAdd stores a single task parsed from one line of text.
func (uc *implUseCase) QuickAdd(ctx context.Context, sc model.Scope, input task.QuickAddInput) (task.QuickAddOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.QuickAddOutput{}, task.ErrEmptyInput
	}

	p := uc.parseLine(text, uc.now())
	uc.l.Infof(ctx, "QuickAdd: user=%s title=%q project=%q dated=%t", sc.UserID, p.title, p.project, p.due != nil)

	stored, err := uc.repo.Create(ctx, repository.CreateOptions{
		UserID:  sc.UserID,
		Title:   p.title,
		Project: p.project,
		DueDate: p.due,
	})
	if err != nil {
		return task.QuickAddOutput{}, fmt.Errorf("%w: %v", task.ErrTaskCreate, err)
	}

	return task.QuickAddOutput{
		Task: task.CreatedTask{
			Task:         stored,
			CalendarLink: uc.tryCreateCalendarEvent(ctx, p, stored.URL),
		},
	}, nil
}
