package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/infrastructure/metrics"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/handlers"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/middleware"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/routes"
)

// SetupRoutes installs the global middlewares and all HTTP routes.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.AccessLog(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.Metrics(c.metrics))
	c.engine.Use(middleware.CORS(c.cfg.Server.Origins()))
	c.engine.Use(middleware.SecurityHeaders())

	routes.SetupOperationsRoutes(c.engine, &routes.OperationsRouteConfig{
		HealthHandler:  c.hdlrs.healthHandler,
		MetricsHandler: metrics.Handler(c.registry),
	})

	routes.SetupAccountRoutes(c.engine, &routes.AccountRouteConfig{
		AccountHandler:   c.hdlrs.accountHandler,
		FavoritesHandler: c.hdlrs.favoritesHandler,
		PendingHandler:   c.hdlrs.pendingHandler,
		AuthMiddleware:   c.authMiddleware,
		RateLimit:        c.rateLimit,
	})

	routes.SetupIdentityRoutes(c.engine, &routes.IdentityRouteConfig{
		IdentityHandler: c.hdlrs.identityHandler,
		RateLimit:       c.rateLimit,
	})

	routes.SetupCatalogRoutes(c.engine, &routes.CatalogRouteConfig{
		CatalogHandler: c.hdlrs.catalogHandler,
	})

	routes.SetupPersonalityRoutes(c.engine, &routes.PersonalityRouteConfig{
		PersonalityHandler: c.hdlrs.personalityHandler,
		AuthMiddleware:     c.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Run starts the HTTP server
func (c *Container) Run(addr string) error {
	return c.engine.Run(addr)
}

// Shutdown releases background sweepers and connections. It is safe to call
// on a partially initialized container.
func (c *Container) Shutdown() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			c.log.Warnw("failed to release resource on shutdown", "error", err)
		}
	}
	c.closers = nil
}

// pinger reports database reachability to the health handler.
func (c *Container) pinger() handlers.Pinger {
	return pingerFunc(func(ctx context.Context) error {
		sqlDB, err := c.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}
