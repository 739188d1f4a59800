package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Kenyi45/task-manager/internal/auth"
	pkgLog "github.com/Kenyi45/task-manager/pkg/log"
)

// Handler is the interface for the auth HTTP delivery handlers.
type Handler interface {
	Login(c *gin.Context)
	Refresh(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc auth.UseCase
}

// New creates a new auth HTTP handler.
func New(l pkgLog.Logger, uc auth.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
