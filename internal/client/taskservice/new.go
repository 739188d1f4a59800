package taskservice

import (
	"github.com/Kenyi45/task-manager/internal/client/taskrepo"
	pkgLog "github.com/Kenyi45/task-manager/pkg/log"
)

// Service validates and normalizes task payloads before delegating to the
// repository, and computes derived aggregates over the full task set.
type Service struct {
	l    pkgLog.Logger
	repo taskrepo.Repository
}

// New creates a new task Service instance. The repository is injected
// explicitly; nothing is resolved from a global registry.
func New(l pkgLog.Logger, repo taskrepo.Repository) *Service {
	return &Service{
		l:    l,
		repo: repo,
	}
}
