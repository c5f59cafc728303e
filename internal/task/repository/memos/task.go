// Package memos stores quick-add tasks as Memos notes.
package memos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"task-quickadd/internal/model"
	"task-quickadd/internal/task/repository"
	pkgLog "task-quickadd/pkg/log"
)

const (
	visibilityPrivate = "PRIVATE"
	quickAddTag       = "#quickadd"
	memoPrefix        = "memos/"
	maxListPages      = 20

	dueLabel     = "- **Due:** "
	projectLabel = "- **Project:** "
	parentLabel  = "- **Parent:** "
	userLabel    = "- **User:** "
)

type implRepository struct {
	client      *Client
	memoBaseURL string // e.g. "http://localhost:5230" for deep links
	l           pkgLog.Logger
}

// New creates a new Memos repository.
func New(client *Client, memoBaseURL string, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:      client,
		memoBaseURL: strings.TrimSuffix(memoBaseURL, "/"),
		l:           l,
	}
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{
		Content:    encodeContent(opt),
		Visibility: visibilityPrivate,
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to create memo: %v", err)
		return model.Task{}, err
	}
	return r.memoToTask(memo), nil
}

func (r *implRepository) Detail(ctx context.Context, opt repository.DetailOptions) (model.Task, error) {
	memo, err := r.client.GetMemo(ctx, memoPrefix+opt.ID)
	if errors.Is(err, errMemoNotFound) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	if opt.UserID != "" && decodeContent(memo.Content).userID != opt.UserID {
		return model.Task{}, repository.ErrNotFound
	}
	return r.memoToTask(memo), nil
}

// List only returns memos created through quick add. User and project are
// filtered here, so it keeps paging until limit tasks match or the pages run
// out.
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}
	filter := fmt.Sprintf("tag in [%q]", strings.TrimPrefix(quickAddTag, "#"))

	tasks := make([]model.Task, 0, limit)
	token := ""
	for page := 0; page < maxListPages; page++ {
		resp, err := r.client.ListMemos(ctx, filter, limit, token)
		if err != nil {
			return nil, err
		}

		for _, m := range resp.Memos {
			fields := decodeContent(m.Content)
			if opt.UserID != "" && fields.userID != opt.UserID {
				continue
			}
			if opt.Project != "" && fields.project != opt.Project {
				continue
			}
			tasks = append(tasks, r.memoToTask(m))
			if len(tasks) == limit {
				return tasks, nil
			}
		}

		if resp.NextPageToken == "" {
			break
		}
		token = resp.NextPageToken
	}
	return tasks, nil
}

// encodeContent renders a task as a Markdown memo.
func encodeContent(opt repository.CreateOptions) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", opt.Title)

	if opt.DueDate != nil {
		sb.WriteString(dueLabel + opt.DueDate.Format(time.RFC3339) + "\n")
	}
	if opt.Project != "" {
		sb.WriteString(projectLabel + opt.Project + "\n")
	}
	if opt.ParentID != "" {
		sb.WriteString(parentLabel + opt.ParentID + "\n")
	}
	if opt.UserID != "" {
		sb.WriteString(userLabel + opt.UserID + "\n")
	}

	sb.WriteString("\n" + quickAddTag)
	if opt.Project != "" {
		sb.WriteString(" #project/" + strings.ReplaceAll(opt.Project, " ", "-"))
	}
	return sb.String()
}

type memoFields struct {
	title    string
	due      *time.Time
	project  string
	parentID string
	userID   string
}

// decodeContent reads back what encodeContent wrote. Unknown lines are
// ignored so memos edited by hand still load.
func decodeContent(content string) memoFields {
	var f memoFields
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "## ") && f.title == "":
			f.title = strings.TrimPrefix(line, "## ")
		case strings.HasPrefix(line, dueLabel):
			if due, err := time.Parse(time.RFC3339, strings.TrimPrefix(line, dueLabel)); err == nil {
				f.due = &due
			}
		case strings.HasPrefix(line, projectLabel):
			f.project = strings.TrimPrefix(line, projectLabel)
		case strings.HasPrefix(line, parentLabel):
			f.parentID = strings.TrimPrefix(line, parentLabel)
		case strings.HasPrefix(line, userLabel):
			f.userID = strings.TrimPrefix(line, userLabel)
		}
	}
	return f
}

// memoToTask converts a Memos API Memo object to the internal model.Task.
func (r *implRepository) memoToTask(m Memo) model.Task {
	// Name format is "memos/{uid}" from the Memos v1 API
	uid := m.UID
	if uid == "" {
		uid = strings.TrimPrefix(m.Name, memoPrefix)
	}

	memoURL := ""
	if uid != "" && r.memoBaseURL != "" {
		memoURL = fmt.Sprintf("%s/m/%s", r.memoBaseURL, uid)
	}

	f := decodeContent(m.Content)
	created, _ := time.Parse(time.RFC3339, m.CreateTime)

	return model.Task{
		ID:        uid,
		Title:     f.title,
		Project:   f.project,
		ParentID:  f.parentID,
		DueDate:   f.due,
		URL:       memoURL,
		CreatedAt: created,
	}
}
