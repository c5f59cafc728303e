package repository

import (
	"context"
	"errors"

	"task-quickadd/internal/model"
)

// ErrNotFound is returned by Detail for unknown IDs and for tasks owned by
// another user.
var ErrNotFound = errors.New("task not found in store")

// Repository stores quick-add tasks.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Task, error)
	Detail(ctx context.Context, opt DetailOptions) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
}
