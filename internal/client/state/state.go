// Package state holds the client-side task list container backing one UI
// surface: the in-memory task list, loading/error flags and pagination
// bookkeeping, with optimistic local mutations after successful writes.
package state

import (
	"context"

	"github.com/Kenyi45/task-manager/internal/client/apierr"
	"github.com/Kenyi45/task-manager/internal/client/taskrepo"
	"github.com/Kenyi45/task-manager/pkg/paging"
)

// Service is the slice of the task service the container consumes.
// Injected at construction time to keep test doubles trivial.
type Service interface {
	ListTasks(ctx context.Context, params taskrepo.ListParams) (taskrepo.Page, error)
	CreateTask(ctx context.Context, input taskrepo.CreateInput) (taskrepo.Task, error)
	UpdateTask(ctx context.Context, id int64, input taskrepo.UpdateInput) (taskrepo.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// PageInfo is the derived pagination state, recomputed on every successful
// list fetch and never persisted.
type PageInfo struct {
	Page        int // 1-based
	PageSize    int
	TotalItems  int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// TaskList is the state container. It is deliberately unsynchronized: it
// models a single-surface event-loop client, so concurrent mutations race
// last-response-wins and no reconciliation with the server is attempted.
type TaskList struct {
	svc Service

	tasks   []taskrepo.Task // nil until the first successful load
	loading bool
	err     *apierr.Error

	page   PageInfo
	search string
}

// New creates the container and immediately loads page 1. A failed initial
// load is recorded in the error state, not returned.
func New(ctx context.Context, svc Service, pageSize int) *TaskList {
	if pageSize < 1 {
		pageSize = 10
	}
	l := &TaskList{
		svc:  svc,
		page: PageInfo{Page: 1, PageSize: pageSize},
	}
	_ = l.fetch(ctx)
	return l
}

// Tasks returns the in-memory list; nil until the first successful load.
func (l *TaskList) Tasks() []taskrepo.Task { return l.tasks }

// Loading reports whether an operation is in flight.
func (l *TaskList) Loading() bool { return l.loading }

// Err returns the structured error of the last failed operation, or nil.
func (l *TaskList) Err() *apierr.Error { return l.err }

// Page returns the current pagination state.
func (l *TaskList) Page() PageInfo { return l.page }

// LoadPage fetches the given 1-based page with the current filters.
func (l *TaskList) LoadPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	l.page.Page = page
	return l.fetch(ctx)
}

// ChangePageSize switches the page size and resets to page 1.
func (l *TaskList) ChangePageSize(ctx context.Context, size int) error {
	if size < 1 {
		size = 1
	}
	l.page.PageSize = size
	l.page.Page = 1
	return l.fetch(ctx)
}

// SearchWithPagination fetches the given page of the filtered listing. An
// empty query clears the filter.
func (l *TaskList) SearchWithPagination(ctx context.Context, query string, page int) error {
	if page < 1 {
		page = 1
	}
	l.search = query
	l.page.Page = page
	return l.fetch(ctx)
}

// CreateTask creates a task and prepends it to the in-memory list on
// success; the list is not re-fetched.
func (l *TaskList) CreateTask(ctx context.Context, input taskrepo.CreateInput) (taskrepo.Task, error) {
	l.begin()
	defer l.end()

	t, err := l.svc.CreateTask(ctx, input)
	if err != nil {
		l.err = apierr.From(err)
		return taskrepo.Task{}, l.err
	}

	l.tasks = append([]taskrepo.Task{t}, l.tasks...)
	l.page.TotalItems++
	return t, nil
}

// UpdateTask updates a task and replaces it in place by id; list order is
// otherwise unchanged.
func (l *TaskList) UpdateTask(ctx context.Context, id int64, input taskrepo.UpdateInput) (taskrepo.Task, error) {
	l.begin()
	defer l.end()

	t, err := l.svc.UpdateTask(ctx, id, input)
	if err != nil {
		l.err = apierr.From(err)
		return taskrepo.Task{}, l.err
	}

	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i] = t
			break
		}
	}
	return t, nil
}

// DeleteTask deletes a task and removes it from the in-memory list by id.
// On failure the local list is left unchanged.
func (l *TaskList) DeleteTask(ctx context.Context, id int64) error {
	l.begin()
	defer l.end()

	if err := l.svc.DeleteTask(ctx, id); err != nil {
		l.err = apierr.From(err)
		return l.err
	}

	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	l.tasks = kept
	if l.page.TotalItems > 0 {
		l.page.TotalItems--
	}
	return nil
}

// fetch loads the current page and recomputes the pagination state from the
// response's count and page cursors.
func (l *TaskList) fetch(ctx context.Context) error {
	l.begin()
	defer l.end()

	page, err := l.svc.ListTasks(ctx, taskrepo.ListParams{
		Page:     l.page.Page,
		PageSize: l.page.PageSize,
		Search:   l.search,
	})
	if err != nil {
		l.err = apierr.From(err)
		return l.err
	}

	l.tasks = page.Results
	l.page.TotalItems = page.Count
	l.page.TotalPages = paging.TotalPages(page.Count, l.page.PageSize)
	l.page.HasNext = page.Next != nil
	l.page.HasPrevious = page.Previous != nil
	return nil
}

func (l *TaskList) begin() {
	l.loading = true
	l.err = nil
}

func (l *TaskList) end() {
	l.loading = false
}
