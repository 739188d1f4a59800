package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Kenyi45/task-manager/internal/model"
	"github.com/Kenyi45/task-manager/internal/task"
	"github.com/Kenyi45/task-manager/internal/task/repository"
	"github.com/Kenyi45/task-manager/internal/task/usecase"
)

var testScope = model.Scope{UserID: 1, Username: "alice"}

func TestCreate(t *testing.T) {
	t.Run("Trims And Persists", func(t *testing.T) {
		repo := &mockRepo{
			createFunc: func(tk *model.Task) error {
				tk.ID = 7
				return nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)
		out, err := uc.Create(context.Background(), testScope, task.CreateInput{
			Title:       "  Buy milk  ",
			Description: "  two liters  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Title != "Buy milk" {
			t.Errorf("expected trimmed title, got %q", out.Title)
		}
		if out.Description != "two liters" {
			t.Errorf("expected trimmed description, got %q", out.Description)
		}
		if out.ID != 7 {
			t.Errorf("expected repo-assigned id 7, got %d", out.ID)
		}
		if out.UserID != testScope.UserID {
			t.Errorf("expected owner %d, got %d", testScope.UserID, out.UserID)
		}
	})

	t.Run("Blank Description Allowed", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		out, err := uc.Create(context.Background(), testScope, task.CreateInput{
			Title:       "Valid title",
			Description: "   ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Description != "" {
			t.Errorf("expected blank description to normalize to empty, got %q", out.Description)
		}
	})

	t.Run("Title Required", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		_, err := uc.Create(context.Background(), testScope, task.CreateInput{Title: "   "})
		if !errors.Is(err, task.ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
	})

	t.Run("Title Too Short", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		_, err := uc.Create(context.Background(), testScope, task.CreateInput{Title: "ab"})
		if !errors.Is(err, task.ErrTitleTooShort) {
			t.Errorf("expected ErrTitleTooShort, got %v", err)
		}
	})

	t.Run("Title Length Bounds", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})

		if _, err := uc.Create(context.Background(), testScope, task.CreateInput{
			Title: strings.Repeat("a", 200),
		}); err != nil {
			t.Errorf("200-char title should pass, got %v", err)
		}
		_, err := uc.Create(context.Background(), testScope, task.CreateInput{
			Title: strings.Repeat("a", 201),
		})
		if !errors.Is(err, task.ErrTitleTooLong) {
			t.Errorf("expected ErrTitleTooLong, got %v", err)
		}
	})

	t.Run("Multibyte Bounds Count Characters", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})

		if _, err := uc.Create(context.Background(), testScope, task.CreateInput{
			Title: "ñé",
		}); !errors.Is(err, task.ErrTitleTooShort) {
			t.Errorf("2-char accented title should be too short, got %v", err)
		}
		if _, err := uc.Create(context.Background(), testScope, task.CreateInput{
			Title:       strings.Repeat("á", 150),
			Description: strings.Repeat("é", 1000),
		}); err != nil {
			t.Errorf("150-char accented title with 1000-char description should pass, got %v", err)
		}
	})

	t.Run("Description Too Long", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		_, err := uc.Create(context.Background(), testScope, task.CreateInput{
			Title:       "Valid title",
			Description: strings.Repeat("d", 1001),
		})
		if !errors.Is(err, task.ErrDescriptionTooLong) {
			t.Errorf("expected ErrDescriptionTooLong, got %v", err)
		}
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		repo := &mockRepo{
			createFunc: func(tk *model.Task) error { return errors.New("insert failed") },
		}
		uc := usecase.New(&mockLogger{}, repo)
		_, err := uc.Create(context.Background(), testScope, task.CreateInput{Title: "Valid title"})
		if err == nil {
			t.Errorf("expected repository error to propagate")
		}
	})
}

func TestGet(t *testing.T) {
	t.Run("Owned Task", func(t *testing.T) {
		repo := &mockRepo{
			getByIDFunc: func(id uint) (model.Task, error) {
				return model.Task{ID: id, Title: "Mine", UserID: 1}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)
		out, err := uc.Get(context.Background(), testScope, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ID != 5 {
			t.Errorf("expected task 5, got %d", out.ID)
		}
	})

	t.Run("Missing Task", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		_, err := uc.Get(context.Background(), testScope, 99)
		if !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Foreign Task Forbidden", func(t *testing.T) {
		repo := &mockRepo{
			getByIDFunc: func(id uint) (model.Task, error) {
				return model.Task{ID: id, UserID: 2}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)
		_, err := uc.Get(context.Background(), testScope, 5)
		if !errors.Is(err, task.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	t.Run("Passes Options Through", func(t *testing.T) {
		var got repository.ListOptions
		repo := &mockRepo{
			listByUserFunc: func(userID uint, opt repository.ListOptions) ([]model.Task, int64, error) {
				if userID != 1 {
					t.Errorf("expected scope user 1, got %d", userID)
				}
				got = opt
				return []model.Task{{ID: 1}}, 23, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)
		out, err := uc.List(context.Background(), testScope, task.ListInput{
			Search:   "milk",
			Ordering: "title",
			Limit:    5,
			Offset:   10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Search != "milk" || got.Ordering != "title" || got.Limit != 5 || got.Offset != 10 {
			t.Errorf("options not passed through: %+v", got)
		}
		if out.Total != 23 || len(out.Tasks) != 1 {
			t.Errorf("unexpected output: total=%d tasks=%d", out.Total, len(out.Tasks))
		}
	})
}

func TestUpdate(t *testing.T) {
	existing := func(id uint) (model.Task, error) {
		return model.Task{ID: id, Title: "Old title", Description: "old desc", UserID: 1}, nil
	}

	t.Run("Empty Patch Rejected", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{getByIDFunc: existing})
		_, err := uc.Update(context.Background(), testScope, 1, task.UpdateInput{})
		if !errors.Is(err, task.ErrNothingToUpdate) {
			t.Errorf("expected ErrNothingToUpdate, got %v", err)
		}
	})

	t.Run("Full Update Requires Title", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{getByIDFunc: existing})
		desc := "new desc"
		_, err := uc.Update(context.Background(), testScope, 1, task.UpdateInput{
			Description: &desc,
			Full:        true,
		})
		if !errors.Is(err, task.ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired on full update, got %v", err)
		}
	})

	t.Run("Description Only Patch Keeps Title", func(t *testing.T) {
		var saved model.Task
		repo := &mockRepo{
			getByIDFunc: existing,
			updateFunc: func(tk *model.Task) error {
				saved = *tk
				return nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)
		desc := "  new desc  "
		out, err := uc.Update(context.Background(), testScope, 1, task.UpdateInput{Description: &desc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Title != "Old title" {
			t.Errorf("title should be untouched, got %q", out.Title)
		}
		if saved.Description != "new desc" {
			t.Errorf("expected trimmed description persisted, got %q", saved.Description)
		}
	})

	t.Run("Invalid Title Patch Rejected", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{getByIDFunc: existing})
		title := "ab"
		_, err := uc.Update(context.Background(), testScope, 1, task.UpdateInput{Title: &title})
		if !errors.Is(err, task.ErrTitleTooShort) {
			t.Errorf("expected ErrTitleTooShort, got %v", err)
		}
	})

	t.Run("Foreign Task Forbidden", func(t *testing.T) {
		repo := &mockRepo{
			getByIDFunc: func(id uint) (model.Task, error) {
				return model.Task{ID: id, UserID: 2}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)
		title := "New title"
		_, err := uc.Update(context.Background(), testScope, 1, task.UpdateInput{Title: &title})
		if !errors.Is(err, task.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("Missing Task", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		title := "New title"
		_, err := uc.Update(context.Background(), testScope, 99, task.UpdateInput{Title: &title})
		if !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("Owned Task", func(t *testing.T) {
		var deleted uint
		repo := &mockRepo{
			getByIDFunc: func(id uint) (model.Task, error) {
				return model.Task{ID: id, UserID: 1}, nil
			},
			deleteFunc: func(tk model.Task) error {
				deleted = tk.ID
				return nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)
		if err := uc.Delete(context.Background(), testScope, 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 4 {
			t.Errorf("expected task 4 deleted, got %d", deleted)
		}
	})

	t.Run("Missing Task", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		err := uc.Delete(context.Background(), testScope, 99)
		if !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Foreign Task Forbidden", func(t *testing.T) {
		repo := &mockRepo{
			getByIDFunc: func(id uint) (model.Task, error) {
				return model.Task{ID: id, UserID: 2}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)
		err := uc.Delete(context.Background(), testScope, 4)
		if !errors.Is(err, task.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})
}
