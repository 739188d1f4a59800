package usecase_test

import (
	"context"

	"github.com/Kenyi45/task-manager/internal/model"
	"github.com/Kenyi45/task-manager/internal/task/repository"
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

// Mock task repository with overridable behavior per test
type mockRepo struct {
	getByIDFunc    func(id uint) (model.Task, error)
	listByUserFunc func(userID uint, opt repository.ListOptions) ([]model.Task, int64, error)
	createFunc     func(t *model.Task) error
	updateFunc     func(t *model.Task) error
	deleteFunc     func(t model.Task) error
}

func (m *mockRepo) GetByID(ctx context.Context, id uint) (model.Task, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepo) ListByUser(ctx context.Context, userID uint, opt repository.ListOptions) ([]model.Task, int64, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(userID, opt)
	}
	return nil, 0, nil
}

func (m *mockRepo) Create(ctx context.Context, t *model.Task) error {
	if m.createFunc != nil {
		return m.createFunc(t)
	}
	return nil
}

func (m *mockRepo) Update(ctx context.Context, t *model.Task) error {
	if m.updateFunc != nil {
		return m.updateFunc(t)
	}
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, t model.Task) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(t)
	}
	return nil
}
