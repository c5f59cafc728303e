package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-quickadd/internal/model"
	"task-quickadd/internal/task/repository"
	"task-quickadd/pkg/datemath"
	"task-quickadd/pkg/gcalendar"
	"task-quickadd/pkg/prefix"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo records creates and fails titles containing failOn.
type mockRepo struct {
	created []repository.CreateOptions
	failOn  string
	tasks   map[string]model.Task
	owners  map[string]string
	listErr error
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	if m.failOn != "" && strings.Contains(opt.Title, m.failOn) {
		return model.Task{}, errors.New("store unavailable")
	}
	m.created = append(m.created, opt)
	t := model.Task{
		ID:       "task-" + string(rune('0'+len(m.created))),
		Title:    opt.Title,
		Project:  opt.Project,
		ParentID: opt.ParentID,
		DueDate:  opt.DueDate,
		URL:      "https://tasks.local/" + opt.Title,
	}
	if m.tasks == nil {
		m.tasks = map[string]model.Task{}
		m.owners = map[string]string{}
	}
	m.tasks[t.ID] = t
	m.owners[t.ID] = opt.UserID
	return t, nil
}

func (m *mockRepo) Detail(ctx context.Context, opt repository.DetailOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || (opt.UserID != "" && m.owners[opt.ID] != opt.UserID) {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Task
	for id, t := range m.tasks {
		if opt.UserID != "" && m.owners[id] != opt.UserID {
			continue
		}
		if opt.Project == "" || t.Project == opt.Project {
			out = append(out, t)
		}
	}
	return out, nil
}

type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (gcalendar.Event, error) {
	if m.err != nil {
		return gcalendar.Event{}, m.err
	}
	m.requests = append(m.requests, req)
	return gcalendar.Event{ID: "ev", HTMLLink: "https://calendar.local/" + req.Summary, AllDay: req.AllDay}, nil
}

// fixedNow is Monday 2024-01-01 00:00 UTC.
var fixedNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo *mockRepo, cal Calendar) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	uc := New(&mockLogger{}, repo, cal, parser, Options{
		PrefixMode: prefix.ModeVikunja,
		Clock:      func() time.Time { return fixedNow },
	})
	return uc.(*implUseCase)
}
