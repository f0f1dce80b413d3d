package http

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/artsoul-app/artsoul/internal/infrastructure/config"
	"github.com/artsoul-app/artsoul/internal/infrastructure/metrics"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/middleware"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/utils"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and middlewares. It wires everything together and releases
// background resources in Shutdown().
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Observability
	registry *prometheus.Registry
	metrics  *metrics.Collector

	// Repositories
	repos *repositories

	// Services backing the use cases
	svcs *services

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimit      gin.HandlerFunc

	// closers are released in reverse order on shutdown
	closers []io.Closer
}

// NewContainer creates and initializes all components. Initialization is
// split into sections that run in dependency order.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	engine := gin.New()

	utils.RegisterValidators()
	utils.SetExposeErrorDetails(!cfg.Server.IsProduction())

	c := &Container{
		engine: engine,
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Metrics, Repositories
	if err := c.initInfrastructure(); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 2: Services - credentials, providers, upstreams, stores
	c.initServices()

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

// initInfrastructure connects Redis when enabled, creates the metrics
// registry and all repositories.
func (c *Container) initInfrastructure() error {
	if c.cfg.Redis.Enabled {
		client, err := initRedis(context.Background(), c.cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
		c.closers = append(c.closers, client)
	}

	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.metrics = metrics.NewCollector(c.registry)

	c.repos = newRepositories(c.db, c.log)
	return nil
}
