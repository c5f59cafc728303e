package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-quickadd/internal/model"
	"task-quickadd/internal/task"
)

func TestQuickAdd(t *testing.T) {
	sc := model.Scope{UserID: "u1", Source: model.SourceHTTP}

	tests := []struct {
		name        string
		text        string
		wantTitle   string
		wantProject string
		wantDue     *time.Time
	}{
		{
			name:      "date and time",
			text:      "Meeting tomorrow at 5pm",
			wantTitle: "Meeting",
			wantDue:   ptr(time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)),
		},
		{
			name:        "project prefix",
			text:        "Buy milk +groceries today",
			wantTitle:   "Buy milk",
			wantProject: "groceries",
			wantDue:     ptr(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
		},
		{
			name:      "no date",
			text:      "  Read a book  ",
			wantTitle: "Read a book",
		},
		{
			name:      "only a date keeps the text as title",
			text:      "tomorrow",
			wantTitle: "tomorrow",
			wantDue:   ptr(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			uc := newTestUseCase(t, repo, nil)

			out, err := uc.QuickAdd(context.Background(), sc, task.QuickAddInput{Text: tt.text})
			require.NoError(t, err)

			require.Len(t, repo.created, 1)
			assert.Equal(t, "u1", repo.created[0].UserID)
			assert.Equal(t, tt.wantTitle, out.Task.Title)
			assert.Equal(t, tt.wantProject, out.Task.Project)
			assert.Equal(t, tt.wantDue, out.Task.DueDate)
			assert.Empty(t, out.Task.CalendarLink)
		})
	}
}

func TestQuickAdd_Errors(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{failOn: "boom"}, nil)
	ctx := context.Background()

	_, err := uc.QuickAdd(ctx, model.Scope{}, task.QuickAddInput{Text: "   "})
	assert.ErrorIs(t, err, task.ErrEmptyInput)

	_, err = uc.QuickAdd(ctx, model.Scope{}, task.QuickAddInput{Text: "boom tomorrow"})
	assert.ErrorIs(t, err, task.ErrTaskCreate)
}

func TestQuickAdd_Calendar(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(t, &mockRepo{}, cal)
	ctx := context.Background()

	out, err := uc.QuickAdd(ctx, model.Scope{}, task.QuickAddInput{Text: "Standup tomorrow at 9:30am"})
	require.NoError(t, err)
	assert.Equal(t, "https://calendar.local/Standup", out.Task.CalendarLink)

	_, err = uc.QuickAdd(ctx, model.Scope{}, task.QuickAddInput{Text: "Taxes 2024-04-15"})
	require.NoError(t, err)

	_, err = uc.QuickAdd(ctx, model.Scope{}, task.QuickAddInput{Text: "Undated"})
	require.NoError(t, err)

	require.Len(t, cal.requests, 2, "undated tasks are not scheduled")
	assert.False(t, cal.requests[0].AllDay)
	assert.Equal(t, "Task: https://tasks.local/Standup", cal.requests[0].Description)
	assert.Equal(t, "UTC", cal.requests[0].Timezone)
	assert.True(t, cal.requests[1].AllDay)
}

func TestQuickAdd_CalendarFailureIsNotFatal(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, &mockCalendar{err: errors.New("quota")})

	out, err := uc.QuickAdd(context.Background(), model.Scope{}, task.QuickAddInput{Text: "Call tomorrow"})
	require.NoError(t, err)
	assert.Empty(t, out.Task.CalendarLink)
	assert.NotEmpty(t, out.Task.ID)
}

func ptr(t time.Time) *time.Time { return &t }
