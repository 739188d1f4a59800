package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Kenyi45/task-manager/internal/middleware"
	"github.com/Kenyi45/task-manager/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(middleware.Metrics())
	srv.gin.Use(middleware.CORS(srv.corsOrigins))

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	token := api.Group("/token")
	token.Use(srv.middleware.RateLimit(srv.loginPerMin))
	token.POST("/", srv.authHandler.Login)
	token.POST("/refresh/", srv.authHandler.Refresh)

	tasks := api.Group("/tasks")
	tasks.Use(srv.middleware.Auth())
	tasks.GET("/", srv.taskHandler.List)
	tasks.POST("/", srv.taskHandler.Create)
	tasks.GET("/:id/", srv.taskHandler.Get)
	tasks.PUT("/:id/", srv.taskHandler.Update)
	tasks.PATCH("/:id/", srv.taskHandler.Update)
	tasks.DELETE("/:id/", srv.taskHandler.Delete)

	srv.l.Infof(ctx, "task routes registered under /api/tasks")
}
