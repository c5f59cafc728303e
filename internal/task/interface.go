package task

import (
	"context"

	"task-quickadd/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// QuickAdd creates one task from a single line of free-form text.
	QuickAdd(ctx context.Context, sc model.Scope, input QuickAddInput) (QuickAddOutput, error)

	// CreateBulk creates a task hierarchy from indented multi-line text.
	CreateBulk(ctx context.Context, sc model.Scope, input CreateBulkInput) (CreateBulkOutput, error)

	// Preview parses text the way CreateBulk would without creating anything.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)

	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
}
