package taskservice_test

import (
	"context"

	"github.com/Kenyi45/task-manager/internal/client/taskrepo"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository without the optional search capability, so the service
// falls back to local filtering.
type mockRepo struct {
	findAllFunc  func(params taskrepo.ListParams) (taskrepo.Page, error)
	findByIDFunc func(id int64) (taskrepo.Task, error)
	createFunc   func(input taskrepo.CreateInput) (taskrepo.Task, error)
	updateFunc   func(id int64, input taskrepo.UpdateInput) (taskrepo.Task, error)
	deleteFunc   func(id int64) error
}

func (m *mockRepo) FindAll(ctx context.Context, params taskrepo.ListParams) (taskrepo.Page, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(params)
	}
	return taskrepo.Page{Results: []taskrepo.Task{}}, nil
}

func (m *mockRepo) FindByID(ctx context.Context, id int64) (taskrepo.Task, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return taskrepo.Task{ID: id}, nil
}

func (m *mockRepo) Create(ctx context.Context, input taskrepo.CreateInput) (taskrepo.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(input)
	}
	return taskrepo.Task{ID: 1, Title: input.Title, Description: input.Description}, nil
}

func (m *mockRepo) Update(ctx context.Context, id int64, input taskrepo.UpdateInput) (taskrepo.Task, error) {
	if m.updateFunc != nil {
		return m.updateFunc(id, input)
	}
	return taskrepo.Task{ID: id}, nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

// mockSearchRepo adds the server-side search capability.
type mockSearchRepo struct {
	mockRepo
	findByTitleFunc func(query string) ([]taskrepo.Task, error)
}

func (m *mockSearchRepo) FindByTitle(ctx context.Context, query string) ([]taskrepo.Task, error) {
	return m.findByTitleFunc(query)
}

// singlePage wraps tasks in a one-page listing.
func singlePage(tasks []taskrepo.Task) func(taskrepo.ListParams) (taskrepo.Page, error) {
	return func(taskrepo.ListParams) (taskrepo.Page, error) {
		return taskrepo.Page{Count: len(tasks), Results: tasks}, nil
	}
}
