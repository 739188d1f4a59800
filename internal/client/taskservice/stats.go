package taskservice

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/Kenyi45/task-manager/internal/client/apierr"
)

// Stats are derived aggregates over the full task set.
type Stats struct {
	Total            int `json:"total"`
	Recent           int `json:"recent"`
	WithDescription  int `json:"with_description"`
	AverageWordCount int `json:"average_word_count"`
}

// GetTaskStats fetches the full task set and computes the aggregate counts.
// An empty set yields all zeros.
func (s *Service) GetTaskStats(ctx context.Context) (Stats, error) {
	all, err := s.fetchAll(ctx)
	if err != nil {
		return Stats{}, apierr.From(err)
	}

	stats := Stats{Total: len(all)}
	if len(all) == 0 {
		return stats, nil
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	totalWords := 0
	for _, t := range all {
		if t.CreatedAt.Time().After(cutoff) {
			stats.Recent++
		}
		if strings.TrimSpace(t.Description) != "" {
			stats.WithDescription++
		}
		totalWords += len(strings.Fields(t.Title)) + len(strings.Fields(t.Description))
	}

	stats.AverageWordCount = int(math.Round(float64(totalWords) / float64(len(all))))
	return stats, nil
}
