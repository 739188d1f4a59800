package taskrepo

import "context"

// Repository translates task operations into calls against the REST API.
// Every failure is surfaced synchronously as an *apierr.Error; no retries
// happen at this layer.
type Repository interface {
	FindAll(ctx context.Context, params ListParams) (Page, error)
	FindByID(ctx context.Context, id int64) (Task, error)
	Create(ctx context.Context, input CreateInput) (Task, error)
	Update(ctx context.Context, id int64, input UpdateInput) (Task, error)
	Delete(ctx context.Context, id int64) error
}

// TitleSearcher is the optional server-side search capability. The service
// falls back to client-side filtering when a repository does not provide it.
type TitleSearcher interface {
	FindByTitle(ctx context.Context, query string) ([]Task, error)
}

// RecentFinder is the optional recent-tasks capability.
type RecentFinder interface {
	FindRecent(ctx context.Context) ([]Task, error)
}
