package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNotFound           = errors.New("task not found")
	ErrForbidden          = errors.New("you do not have permission to access this task")
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooShort      = errors.New("title must be at least 3 characters")
	ErrTitleTooLong       = errors.New("title cannot exceed 200 characters")
	ErrDescriptionTooLong = errors.New("description cannot exceed 1000 characters")
	ErrNothingToUpdate    = errors.New("nothing to update")
	ErrInvalidOrdering    = errors.New("invalid ordering field")
)
