package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-quickadd/internal/task/repository"
	pkgLog "task-quickadd/pkg/log"
)

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	return New(pkgLog.Init(pkgLog.ZapConfig{Level: "error", Encoding: pkgLog.EncodingJSON}))
}

func TestCreateAndDetail(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	due := time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, repository.CreateOptions{
		UserID:  "u1",
		Title:   "Meeting",
		Project: "work",
		DueDate: &due,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	due = due.Add(time.Hour)

	got, err := repo.Detail(ctx, repository.DetailOptions{ID: created.ID, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Meeting", got.Title)
	assert.Equal(t, "work", got.Project)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, 17, got.DueDate.Hour(), "stored due date must not alias the caller's")
}

func TestDetail_NotFound(t *testing.T) {
	_, err := newRepo(t).Detail(context.Background(), repository.DetailOptions{ID: "missing"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDetail_OwnerMismatch(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, repository.CreateOptions{UserID: "alice", Title: "Secret"})
	require.NoError(t, err)

	_, err = repo.Detail(ctx, repository.DetailOptions{ID: created.ID, UserID: "bob"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := repo.Detail(ctx, repository.DetailOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Secret", got.Title)
}

func TestCreate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRepo(t).Create(ctx, repository.CreateOptions{Title: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestList(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for i, opt := range []repository.CreateOptions{
		{UserID: "u1", Title: "a", Project: "home"},
		{UserID: "u1", Title: "b", Project: "work"},
		{UserID: "u2", Title: "c", Project: "work"},
		{UserID: "u1", Title: "d"},
	} {
		_, err := repo.Create(ctx, opt)
		require.NoError(t, err, i)
	}

	titles := func(opt repository.ListOptions) []string {
		tasks, err := repo.List(ctx, opt)
		require.NoError(t, err)
		out := make([]string, 0, len(tasks))
		for _, tk := range tasks {
			out = append(out, tk.Title)
		}
		return out
	}

	assert.Equal(t, []string{"d", "c", "b", "a"}, titles(repository.ListOptions{}))
	assert.Equal(t, []string{"d", "b", "a"}, titles(repository.ListOptions{UserID: "u1"}))
	assert.Equal(t, []string{"c", "b"}, titles(repository.ListOptions{Project: "work"}))
	assert.Equal(t, []string{"d", "c"}, titles(repository.ListOptions{Limit: 2}))
}

func TestCreate_Concurrent(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, repository.CreateOptions{Title: fmt.Sprint(i)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	tasks, err := repo.List(ctx, repository.ListOptions{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, tasks, 50)
}
