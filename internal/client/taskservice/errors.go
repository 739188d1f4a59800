package taskservice

// ValidationError is a client-side rejection raised before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validation failures for the task service.
var (
	ErrTitleRequired      = &ValidationError{"title is required"}
	ErrTitleTooShort      = &ValidationError{"title must be at least 3 characters"}
	ErrTitleTooLong       = &ValidationError{"title cannot exceed 200 characters"}
	ErrDescriptionTooLong = &ValidationError{"description cannot exceed 1000 characters"}
	ErrInvalidID          = &ValidationError{"task id must be a positive integer"}
	ErrNothingToUpdate    = &ValidationError{"nothing to update"}
	ErrQueryTooShort      = &ValidationError{"search query must be at least 2 characters"}
)
