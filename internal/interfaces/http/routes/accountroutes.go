package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/interfaces/http/handlers"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/middleware"
)

// AccountRouteConfig holds dependencies for account, session and collection routes.
type AccountRouteConfig struct {
	AccountHandler   *handlers.AccountHandler
	FavoritesHandler *handlers.CollectionHandler
	PendingHandler   *handlers.CollectionHandler
	AuthMiddleware   *middleware.AuthMiddleware
	// RateLimit guards credential endpoints; nil when rate limiting is disabled
	RateLimit gin.HandlerFunc
}

// SetupAccountRoutes configures account and session routes.
func SetupAccountRoutes(engine *gin.Engine, cfg *AccountRouteConfig) {
	limited := limitedChain(cfg.RateLimit)

	engine.POST("/sessions", append(limited, cfg.AccountHandler.Login)...)

	accounts := engine.Group("/accounts")
	{
		accounts.POST("", append(limited, cfg.AccountHandler.Register)...)
		accounts.POST("/password-reset", append(limited, cfg.AccountHandler.RequestPasswordReset)...)
		accounts.POST("/password-reset/confirm", append(limited, cfg.AccountHandler.ConfirmPasswordReset)...)

		me := accounts.Group("/me", cfg.AuthMiddleware.RequireAuth())
		{
			me.GET("", cfg.AccountHandler.GetMe)
			me.PATCH("", cfg.AccountHandler.UpdateMe)
			me.DELETE("", cfg.AccountHandler.DeleteMe)

			setupCollectionRoutes(me.Group("/favorites"), cfg.FavoritesHandler)
			setupCollectionRoutes(me.Group("/pending"), cfg.PendingHandler)
		}
	}
}

func setupCollectionRoutes(group *gin.RouterGroup, h *handlers.CollectionHandler) {
	group.GET("", h.List)
	group.POST("", h.Add)
	group.DELETE("/:entityRef", h.Remove)
}

func limitedChain(rateLimit gin.HandlerFunc) []gin.HandlerFunc {
	if rateLimit == nil {
		return nil
	}
	return []gin.HandlerFunc{rateLimit}
}
