package usecase

import (
	"github.com/Kenyi45/task-manager/internal/auth"
	"github.com/Kenyi45/task-manager/internal/user"
	"github.com/Kenyi45/task-manager/pkg/jwtauth"
	pkgLog "github.com/Kenyi45/task-manager/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	users  user.Repository
	tokens *jwtauth.Manager
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, users user.Repository, tokens *jwtauth.Manager) auth.UseCase {
	return &implUseCase{
		l:      l,
		users:  users,
		tokens: tokens,
	}
}
