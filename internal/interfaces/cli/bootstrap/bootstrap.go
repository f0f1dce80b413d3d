// Package bootstrap loads configuration and opens shared resources for the
// commands of the binary.
package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/infrastructure/config"
	"github.com/artsoul-app/artsoul/internal/infrastructure/database"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// Env loads the configuration for environment, installs the process logger
// and connects the database.
func Env(environment string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(MapEnvToGinMode(environment))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log := logger.NewLogger()
	if cfg.InsecureJWTSecret() {
		log.Warnw("auth.jwt.secret is the built-in default; set ARTSOUL_AUTH_JWT_SECRET or JWT_SECRET",
			"mode", cfg.Server.Mode)
	}

	return cfg, log, nil
}

// MapEnvToGinMode translates deployment environments to gin modes.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
