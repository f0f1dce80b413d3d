package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/interfaces/http/handlers"
)

// OperationsRouteConfig holds dependencies for health and metrics routes.
type OperationsRouteConfig struct {
	HealthHandler  *handlers.HealthHandler
	MetricsHandler http.Handler
}

func SetupOperationsRoutes(engine *gin.Engine, cfg *OperationsRouteConfig) {
	engine.GET("/health", cfg.HealthHandler.HealthCheck)
	engine.GET("/version", cfg.HealthHandler.Version)
	if cfg.MetricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}
}
