package taskservice

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Kenyi45/task-manager/internal/client/apierr"
	"github.com/Kenyi45/task-manager/internal/client/taskrepo"
)

// Title and description bounds, enforced before any write reaches the API.
// The API is the authority of record and applies the same bounds itself.
const (
	titleMinLen       = 3
	titleMaxLen       = 200
	descriptionMaxLen = 1000
)

// CreateTask validates and normalizes the payload, then delegates to the
// repository. Title and description are trimmed; a blank description
// normalizes to the empty string.
func (s *Service) CreateTask(ctx context.Context, input taskrepo.CreateInput) (taskrepo.Task, error) {
	title, err := validTitle(input.Title)
	if err != nil {
		return taskrepo.Task{}, err
	}
	description, err := validDescription(input.Description)
	if err != nil {
		return taskrepo.Task{}, err
	}

	t, err := s.repo.Create(ctx, taskrepo.CreateInput{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return taskrepo.Task{}, apierr.From(err)
	}
	return t, nil
}

// UpdateTask validates a partial update and delegates to the repository.
// Present fields validate independently of absent ones.
func (s *Service) UpdateTask(ctx context.Context, id int64, input taskrepo.UpdateInput) (taskrepo.Task, error) {
	if id <= 0 {
		return taskrepo.Task{}, ErrInvalidID
	}
	if input.Title == nil && input.Description == nil {
		return taskrepo.Task{}, ErrNothingToUpdate
	}

	if input.Title != nil {
		title, err := validTitle(*input.Title)
		if err != nil {
			return taskrepo.Task{}, err
		}
		input.Title = &title
	}
	if input.Description != nil {
		description, err := validDescription(*input.Description)
		if err != nil {
			return taskrepo.Task{}, err
		}
		input.Description = &description
	}

	t, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return taskrepo.Task{}, apierr.From(err)
	}
	return t, nil
}

// GetTask fetches a single task by id.
func (s *Service) GetTask(ctx context.Context, id int64) (taskrepo.Task, error) {
	if id <= 0 {
		return taskrepo.Task{}, ErrInvalidID
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return taskrepo.Task{}, apierr.From(err)
	}
	return t, nil
}

// DeleteTask removes a task by id.
func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierr.From(err)
	}
	return nil
}

// ListTasks fetches one page of the listing.
func (s *Service) ListTasks(ctx context.Context, params taskrepo.ListParams) (taskrepo.Page, error) {
	page, err := s.repo.FindAll(ctx, params)
	if err != nil {
		return taskrepo.Page{}, apierr.From(err)
	}
	return page, nil
}

func validTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrTitleRequired
	}
	// Bounds are in characters, not bytes.
	if utf8.RuneCountInString(trimmed) < titleMinLen {
		return "", ErrTitleTooShort
	}
	if utf8.RuneCountInString(trimmed) > titleMaxLen {
		return "", ErrTitleTooLong
	}
	return trimmed, nil
}

func validDescription(description string) (string, error) {
	if utf8.RuneCountInString(description) > descriptionMaxLen {
		return "", ErrDescriptionTooLong
	}
	return strings.TrimSpace(description), nil
}
