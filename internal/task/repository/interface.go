package repository

import (
	"context"
	"errors"

	"github.com/Kenyi45/task-manager/internal/model"
)

// ErrNotFound is returned by GetByID when no row matches.
var ErrNotFound = errors.New("task row not found")

// ListOptions narrows and orders a user's task listing.
type ListOptions struct {
	Search   string
	Ordering string // sanitized SQL order expression is derived by the impl
	Limit    int
	Offset   int
}

// Repository defines persistence for tasks. Listing is always scoped to one
// owner; single-row lookups return the row regardless of owner so the
// usecase can distinguish not-found from forbidden.
type Repository interface {
	GetByID(ctx context.Context, id uint) (model.Task, error)
	ListByUser(ctx context.Context, userID uint, opt ListOptions) ([]model.Task, int64, error)
	Create(ctx context.Context, t *model.Task) error
	Update(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, t model.Task) error
}
