package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kenyi45/task-manager/config"
	_ "github.com/Kenyi45/task-manager/docs" // Swagger docs
	authHTTP "github.com/Kenyi45/task-manager/internal/auth/delivery/http"
	authUsecase "github.com/Kenyi45/task-manager/internal/auth/usecase"
	"github.com/Kenyi45/task-manager/internal/database"
	"github.com/Kenyi45/task-manager/internal/httpserver"
	"github.com/Kenyi45/task-manager/internal/middleware"
	taskHTTP "github.com/Kenyi45/task-manager/internal/task/delivery/http"
	taskGorm "github.com/Kenyi45/task-manager/internal/task/repository/gorm"
	taskUsecase "github.com/Kenyi45/task-manager/internal/task/usecase"
	"github.com/Kenyi45/task-manager/internal/user"
	"github.com/Kenyi45/task-manager/pkg/jwtauth"
	"github.com/Kenyi45/task-manager/pkg/log"
)

// @title       Task Manager API
// @description Single-user-scoped task management REST API with JWT authentication.
// @version     1
// @host        localhost:8000
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Manager API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Storage
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}

	// 4. Auth domain
	tokenManager := jwtauth.New(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	userRepo := user.NewRepository(db)
	authUC := authUsecase.New(logger, userRepo, tokenManager)
	authHandler := authHTTP.New(logger, authUC)

	// 5. Task domain
	taskRepo := taskGorm.New(db, logger)
	taskUC := taskUsecase.New(logger, taskRepo)
	taskHandler := taskHTTP.New(logger, taskUC, taskHTTP.Config{
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, tokenManager),
		CORSOrigins: cfg.CORS.AllowedOrigins,
		LoginPerMin: cfg.RateLimit.LoginPerMin,
		AuthHandler: authHandler,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
