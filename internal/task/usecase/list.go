package usecase

import (
	"context"
	"errors"
	"fmt"

	"task-quickadd/internal/model"
	"task-quickadd/internal/task"
	"task-quickadd/internal/task/repository"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.List(ctx, repository.ListOptions{
		UserID:  sc.UserID,
		Project: input.Project,
		Limit:   input.Limit,
	})
	if err != nil {
		return task.ListOutput{}, fmt.Errorf("list tasks: %w", err)
	}
	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.Detail(ctx, repository.DetailOptions{ID: id, UserID: sc.UserID})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("task detail: %w", err)
	}
	return t, nil
}
