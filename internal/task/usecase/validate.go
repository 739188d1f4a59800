package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/Kenyi45/task-manager/internal/model"
	"github.com/Kenyi45/task-manager/internal/task"
)

// validateTitle enforces the 3-200 character bound on the trimmed title and
// returns the trimmed value.
func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", task.ErrTitleRequired
	}
	// Bounds are in characters, not bytes.
	if utf8.RuneCountInString(trimmed) < model.TitleMinLen {
		return "", task.ErrTitleTooShort
	}
	if utf8.RuneCountInString(trimmed) > model.TitleMaxLen {
		return "", task.ErrTitleTooLong
	}
	return trimmed, nil
}

// validateDescription enforces the 1000 character bound and returns the
// trimmed value; a blank description normalizes to the empty string.
func validateDescription(description string) (string, error) {
	if utf8.RuneCountInString(description) > model.DescriptionMaxLen {
		return "", task.ErrDescriptionTooLong
	}
	return strings.TrimSpace(description), nil
}
