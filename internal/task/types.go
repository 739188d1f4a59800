package task

import "github.com/Kenyi45/task-manager/internal/model"

// CreateInput is the input for task creation.
type CreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateInput is the input for task updates. Nil fields are untouched in a
// partial update; Full marks a PUT, which requires a title.
type UpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Full        bool    `json:"-"`
}

// ListInput is the input for the list operation.
type ListInput struct {
	Search   string // case-insensitive substring over title and description
	Ordering string // created_at or title, optionally prefixed with -
	Limit    int
	Offset   int
}

// ListOutput is the result of the list operation.
type ListOutput struct {
	Tasks []model.Task
	Total int64
}
