package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/interfaces/http/handlers"
	"github.com/artsoul-app/artsoul/internal/shared/constants"
)

// IdentityRouteConfig holds dependencies for identity provider routes.
type IdentityRouteConfig struct {
	IdentityHandler *handlers.IdentityHandler
	RateLimit       gin.HandlerFunc
}

// SetupIdentityRoutes configures the OAuth round trip routes.
func SetupIdentityRoutes(engine *gin.Engine, cfg *IdentityRouteConfig) {
	identity := engine.Group("/identity")
	{
		identity.GET("/google/start", cfg.IdentityHandler.StartGoogle)
		identity.GET("/google/callback", cfg.IdentityHandler.GoogleCallback)
		identity.POST("/session-codes/exchange", append(limitedChain(cfg.RateLimit), cfg.IdentityHandler.ExchangeSessionCode)...)
	}
	engine.GET(constants.ActivationPath, cfg.IdentityHandler.Activation)
}
