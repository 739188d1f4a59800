package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/Kenyi45/task-manager/internal/auth/delivery/http"
	"github.com/Kenyi45/task-manager/internal/middleware"
	taskHTTP "github.com/Kenyi45/task-manager/internal/task/delivery/http"
	"github.com/Kenyi45/task-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware  middleware.Middleware
	corsOrigins []string
	loginPerMin int
	authHandler authHTTP.Handler
	taskHandler taskHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware  middleware.Middleware
	CORSOrigins []string
	LoginPerMin int
	AuthHandler authHTTP.Handler
	TaskHandler taskHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		middleware:  cfg.Middleware,
		corsOrigins: cfg.CORSOrigins,
		loginPerMin: cfg.LoginPerMin,
		authHandler: cfg.AuthHandler,
		taskHandler: cfg.TaskHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authHandler == nil {
		return errors.New("auth handler is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
