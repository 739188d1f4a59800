package task

import (
	"context"

	"github.com/Kenyi45/task-manager/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every operation is scoped to the authenticated identity; a task is only
// ever visible to its owner.
type UseCase interface {
	// Create validates, normalizes and persists a new task for the scope's user.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// Get returns one task after an ownership check.
	Get(ctx context.Context, sc model.Scope, id uint) (model.Task, error)

	// List returns the scope's tasks with search/ordering/pagination applied.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Update applies a partial or full update after validation and ownership checks.
	Update(ctx context.Context, sc model.Scope, id uint, input UpdateInput) (model.Task, error)

	// Delete removes a task after an ownership check.
	Delete(ctx context.Context, sc model.Scope, id uint) error
}
