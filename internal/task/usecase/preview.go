package usecase

import (
	"context"
	"strings"

	"task-quickadd/internal/task"
)

// Preview runs the CreateBulk parsing pipeline without storing anything.
func (uc *implUseCase) Preview(ctx context.Context, input task.PreviewInput) (task.PreviewOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.PreviewOutput{}, task.ErrEmptyInput
	}

	now := uc.now()
	if !input.Now.IsZero() {
		now = input.Now.In(uc.dateMath.Location())
	}

	parsed := uc.parseLines(input.Text, now)
	if len(parsed) == 0 {
		return task.PreviewOutput{}, task.ErrNoTasksParsed
	}

	items := make([]task.PreviewItem, 0, len(parsed))
	for _, p := range parsed {
		items = append(items, toPreviewItem(p))
	}

	uc.l.Debugf(ctx, "Preview: %d items", len(items))
	return task.PreviewOutput{Items: items, Now: now}, nil
}
