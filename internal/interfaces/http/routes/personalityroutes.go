package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/interfaces/http/handlers"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/middleware"
)

// PersonalityRouteConfig holds dependencies for personality profile routes.
type PersonalityRouteConfig struct {
	PersonalityHandler *handlers.PersonalityHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// SetupPersonalityRoutes configures personality profile routes. All of them
// require a signed-in account. For the user type the listing route takes
// precedence over the single profile lookup.
func SetupPersonalityRoutes(engine *gin.Engine, cfg *PersonalityRouteConfig) {
	personality := engine.Group("/personality", cfg.AuthMiddleware.RequireAuth())
	{
		personality.POST("", cfg.PersonalityHandler.Save)
		personality.GET("/user/:accountRef", cfg.PersonalityHandler.ListForAccount)
		personality.GET("/:entityType/:entityId", cfg.PersonalityHandler.Get)
		personality.DELETE("/:entityType/:entityId", cfg.PersonalityHandler.Delete)
	}
}
