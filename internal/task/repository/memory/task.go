// Package memory is an in-process task store.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"task-quickadd/internal/model"
	"task-quickadd/internal/task/repository"
	pkgLog "task-quickadd/pkg/log"
)

type record struct {
	userID string
	task   model.Task
}

type implRepository struct {
	l   pkgLog.Logger
	now func() time.Time

	mu      sync.RWMutex
	byID    map[string]int
	records []record
}

// New creates an empty in-memory repository.
func New(l pkgLog.Logger) repository.Repository {
	return &implRepository{
		l:    l,
		now:  time.Now,
		byID: make(map[string]int),
	}
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	if err := ctx.Err(); err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:        uuid.NewString(),
		Title:     opt.Title,
		Project:   opt.Project,
		ParentID:  opt.ParentID,
		CreatedAt: r.now(),
	}
	if opt.DueDate != nil {
		due := *opt.DueDate
		t.DueDate = &due
	}

	r.mu.Lock()
	r.byID[t.ID] = len(r.records)
	r.records = append(r.records, record{userID: opt.UserID, task: t})
	r.mu.Unlock()

	r.l.Debugf(ctx, "memory repository: stored task %s", t.ID)
	return t, nil
}

func (r *implRepository) Detail(ctx context.Context, opt repository.DetailOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[opt.ID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	rec := r.records[i]
	if opt.UserID != "" && rec.userID != opt.UserID {
		return model.Task{}, repository.ErrNotFound
	}
	return rec.task, nil
}

// List returns the newest tasks first.
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0, min(limit, len(r.records)))
	for i := len(r.records) - 1; i >= 0 && len(tasks) < limit; i-- {
		rec := r.records[i]
		if opt.UserID != "" && rec.userID != opt.UserID {
			continue
		}
		if opt.Project != "" && rec.task.Project != opt.Project {
			continue
		}
		tasks = append(tasks, rec.task)
	}
	return tasks, nil
}
