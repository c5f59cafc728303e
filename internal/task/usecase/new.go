package usecase

import (
	"context"
	"time"

	"task-quickadd/internal/task"
	"task-quickadd/internal/task/repository"
	"task-quickadd/pkg/datemath"
	"task-quickadd/pkg/gcalendar"
	pkgLog "task-quickadd/pkg/log"
	"task-quickadd/pkg/prefix"
)

// Calendar creates calendar events for dated tasks.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (gcalendar.Event, error)
}

// Options tunes the use case. Zero values pick the defaults.
type Options struct {
	PrefixMode    prefix.Mode
	EventDuration time.Duration
	Clock         func() time.Time
}

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.Repository
	calendar      Calendar
	dateMath      *datemath.Parser
	prefixMode    prefix.Mode
	eventDuration time.Duration
	clock         func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar Calendar,
	dateMath *datemath.Parser,
	opts Options,
) task.UseCase {
	uc := &implUseCase{
		l:             l,
		repo:          repo,
		calendar:      calendar,
		dateMath:      dateMath,
		prefixMode:    opts.PrefixMode,
		eventDuration: opts.EventDuration,
		clock:         opts.Clock,
	}
	if uc.prefixMode == "" {
		uc.prefixMode = prefix.ModeDisabled
	}
	if uc.clock == nil {
		uc.clock = time.Now
	}
	return uc
}
