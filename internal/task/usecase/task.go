package usecase

import (
	"context"
	"errors"

	"github.com/Kenyi45/task-manager/internal/model"
	"github.com/Kenyi45/task-manager/internal/task"
	"github.com/Kenyi45/task-manager/internal/task/repository"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return model.Task{}, err
	}
	description, err := validateDescription(input.Description)
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		Title:       title,
		Description: description,
		UserID:      sc.UserID,
	}
	if err := uc.repo.Create(ctx, &t); err != nil {
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task usecase: user %d created task %d", sc.UserID, t.ID)
	return t, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id uint) (model.Task, error) {
	return uc.getOwned(ctx, sc, id)
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, total, err := uc.repo.ListByUser(ctx, sc.UserID, repository.ListOptions{
		Search:   input.Search,
		Ordering: input.Ordering,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task usecase: failed to list tasks for user %d: %v", sc.UserID, err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Total: total}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, id uint, input task.UpdateInput) (model.Task, error) {
	if input.Title == nil && input.Description == nil {
		return model.Task{}, task.ErrNothingToUpdate
	}
	if input.Full && input.Title == nil {
		return model.Task{}, task.ErrTitleRequired
	}

	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return model.Task{}, err
	}

	// Fields validate independently: a description-only patch never touches
	// the title and vice versa.
	if input.Title != nil {
		title, err := validateTitle(*input.Title)
		if err != nil {
			return model.Task{}, err
		}
		t.Title = title
	}
	if input.Description != nil {
		description, err := validateDescription(*input.Description)
		if err != nil {
			return model.Task{}, err
		}
		t.Description = description
	}

	if err := uc.repo.Update(ctx, &t); err != nil {
		uc.l.Errorf(ctx, "task usecase: failed to update task %d: %v", id, err)
		return model.Task{}, err
	}
	return t, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id uint) error {
	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, t); err != nil {
		uc.l.Errorf(ctx, "task usecase: failed to delete task %d: %v", id, err)
		return err
	}
	uc.l.Infof(ctx, "task usecase: user %d deleted task %d", sc.UserID, id)
	return nil
}

// getOwned fetches a task and enforces row ownership. Not-found and
// forbidden stay distinct so delivery can map them to 404 and 403.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id uint) (model.Task, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, err
	}
	if t.UserID != sc.UserID {
		return model.Task{}, task.ErrForbidden
	}
	return t, nil
}
