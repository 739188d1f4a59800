package usecase

import (
	"github.com/Kenyi45/task-manager/internal/task"
	"github.com/Kenyi45/task-manager/internal/task/repository"
	pkgLog "github.com/Kenyi45/task-manager/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) task.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
