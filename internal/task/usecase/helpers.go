package usecase

import (
	"context"
	"strings"
	"time"

	"task-quickadd/internal/task"
	"task-quickadd/pkg/gcalendar"
	"task-quickadd/pkg/prefix"
	"task-quickadd/pkg/subtask"
)

// parsedTask is one line of input after date and project extraction.
type parsedTask struct {
	raw     string // Line as written, used to link children to parents
	title   string
	project string
	parent  string
	due     *time.Time
}

// now returns the service clock in the parser's timezone.
func (uc *implUseCase) now() time.Time {
	return uc.clock().In(uc.dateMath.Location())
}

// parseLine extracts the date and the project from a single title.
func (uc *implUseCase) parseLine(text string, now time.Time) parsedTask {
	res := uc.dateMath.Parse(text, now)

	project, title := prefix.Extract(res.RemainingText, uc.prefixMode)
	if title == "" {
		title = strings.TrimSpace(text)
	}

	return parsedTask{
		raw:     text,
		title:   title,
		project: project,
		due:     res.Date,
	}
}

// parseLines turns indented multi-line text into parsed tasks. Projects
// inherited through the hierarchy take effect when a line has none of its own.
func (uc *implUseCase) parseLines(raw string, now time.Time) []parsedTask {
	lines := subtask.Parse(raw, prefix.Resolver(uc.prefixMode))

	tasks := make([]parsedTask, 0, len(lines))
	for _, line := range lines {
		p := uc.parseLine(line.Title, now)
		if p.project == "" {
			p.project = line.Project
		}
		p.parent = line.Parent
		tasks = append(tasks, p)
	}
	return tasks
}

// isAllDay reports whether a due date carries no time of day.
func isAllDay(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}

// tryCreateCalendarEvent schedules a dated task and returns the event link.
// Failures are logged and yield "".
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t parsedTask, taskURL string) string {
	if uc.calendar == nil || t.due == nil {
		return ""
	}

	description := ""
	if taskURL != "" {
		description = "Task: " + taskURL
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     t.title,
		Description: description,
		Start:       *t.due,
		Duration:    uc.eventDuration,
		AllDay:      isAllDay(*t.due),
		Timezone:    uc.dateMath.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar event creation failed for %q (non-fatal): %v", t.title, err)
		return ""
	}
	return event.HTMLLink
}

func toPreviewItem(p parsedTask) task.PreviewItem {
	return task.PreviewItem{
		Title:   p.title,
		Project: p.project,
		Parent:  p.parent,
		DueDate: p.due,
	}
}
