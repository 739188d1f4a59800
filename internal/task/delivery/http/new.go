package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Kenyi45/task-manager/internal/task"
	pkgLog "github.com/Kenyi45/task-manager/pkg/log"
)

// Handler is the interface for the task HTTP delivery handlers.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// Config holds the pagination bounds the list endpoint works with.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	cfg Config
}

// New creates a new task HTTP handler.
func New(l pkgLog.Logger, uc task.UseCase, cfg Config) Handler {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	return &handler{
		l:   l,
		uc:  uc,
		cfg: cfg,
	}
}
