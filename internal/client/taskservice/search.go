package taskservice

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Kenyi45/task-manager/internal/client/apierr"
	"github.com/Kenyi45/task-manager/internal/client/taskrepo"
)

// searchMinLen is the shortest query worth sending anywhere.
const searchMinLen = 2

// SearchTasksByTitle searches tasks by title. Server-side search is
// preferred; when the repository has no search capability the full set is
// filtered locally with a case-insensitive substring match.
func (s *Service) SearchTasksByTitle(ctx context.Context, query string) ([]taskrepo.Task, error) {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < searchMinLen {
		return nil, ErrQueryTooShort
	}

	if searcher, ok := s.repo.(taskrepo.TitleSearcher); ok {
		tasks, err := searcher.FindByTitle(ctx, trimmed)
		if err != nil {
			return nil, apierr.From(err)
		}
		return tasks, nil
	}

	all, err := s.fetchAll(ctx)
	if err != nil {
		return nil, apierr.From(err)
	}

	needle := strings.ToLower(trimmed)
	matched := make([]taskrepo.Task, 0, len(all))
	for _, t := range all {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// fetchAll walks every page of the listing.
func (s *Service) fetchAll(ctx context.Context) ([]taskrepo.Task, error) {
	var all []taskrepo.Task

	page := 1
	for {
		p, err := s.repo.FindAll(ctx, taskrepo.ListParams{Page: page, PageSize: 100})
		if err != nil {
			return nil, err
		}
		all = append(all, p.Results...)
		if p.Next == nil {
			return all, nil
		}
		page++
	}
}
