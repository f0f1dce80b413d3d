package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/interfaces/http/handlers"
)

// CatalogRouteConfig holds dependencies for catalog routes.
type CatalogRouteConfig struct {
	CatalogHandler *handlers.CatalogHandler
}

// SetupCatalogRoutes configures the public catalog routes.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	catalog := engine.Group("/catalog")
	{
		catalog.GET("", cfg.CatalogHandler.List)
		catalog.GET("/music/token", cfg.CatalogHandler.MusicToken)
		catalog.POST("/games/search", cfg.CatalogHandler.SearchGames)
		catalog.GET("/:id", cfg.CatalogHandler.Get)
	}
}
