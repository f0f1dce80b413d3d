package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	accountUsecases "github.com/artsoul-app/artsoul/internal/application/account/usecases"
	identityUsecases "github.com/artsoul-app/artsoul/internal/application/identity/usecases"
	"github.com/artsoul-app/artsoul/internal/infrastructure/auth"
	"github.com/artsoul-app/artsoul/internal/infrastructure/cache"
	"github.com/artsoul-app/artsoul/internal/infrastructure/config"
	"github.com/artsoul-app/artsoul/internal/infrastructure/ratelimit"
	"github.com/artsoul-app/artsoul/internal/infrastructure/token"
	"github.com/artsoul-app/artsoul/internal/infrastructure/upstream"
	"github.com/artsoul-app/artsoul/internal/shared/db"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/services/markdown"
)

const sessionCodeKeyPrefix = "artsoul:session_code:"

// services holds the infrastructure services behind the use case ports.
type services struct {
	jwtSvc       *auth.JWTService
	hasher       *auth.BcryptPasswordHasher
	resetTokens  token.TokenGenerator
	mailer       accountUsecases.PasswordResetMailer
	markdown     markdown.Service
	txManager    *db.TransactionManager
	sessionCodes identityUsecases.SessionCodeStore
	rateLimiter  ratelimit.RateLimiter

	// Optional providers, nil when not configured
	google        identityUsecases.IdentityProvider
	igdbTokens    *upstream.TokenCache
	spotifyTokens *upstream.TokenCache
	igdb          *upstream.IGDBClient
}

// ============================================================
// Section 2: Services - credentials, providers, upstreams, stores
// ============================================================

func (c *Container) initServices() {
	cfg := c.cfg
	log := c.log

	s := &services{
		jwtSvc:      auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpDays),
		hasher:      auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		resetTokens: token.NewTokenGenerator(),
		markdown:    markdown.NewService(),
		txManager:   db.NewTransactionManager(c.db, cfg.Database.Transactions),
	}

	s.mailer = newMailer(cfg, s.markdown, log)
	s.google = newGoogleProvider(cfg)
	s.sessionCodes = c.newSessionCodeStore(log)

	if cfg.RateLimit.Enabled {
		s.rateLimiter = c.newRateLimiter(log)
	}

	timeout := seconds(cfg.Catalog.TimeoutSeconds)
	if cfg.Catalog.IGDB.Enabled() {
		s.igdbTokens = upstream.NewTokenCache(upstream.TokenCacheConfig{
			Name:         "igdb",
			ClientID:     cfg.Catalog.IGDB.ClientID,
			ClientSecret: cfg.Catalog.IGDB.ClientSecret,
			TokenURL:     cfg.Catalog.IGDB.TokenURL,
			Timeout:      timeout,
		}, log)
		s.igdb = upstream.NewIGDBClient(cfg.Catalog.IGDB.BaseURL, cfg.Catalog.IGDB.ClientID, s.igdbTokens, timeout, log)
	} else {
		log.Infow("games catalog is not configured, search is disabled")
	}
	if cfg.Catalog.Spotify.Enabled() {
		s.spotifyTokens = upstream.NewTokenCache(upstream.TokenCacheConfig{
			Name:                "spotify",
			ClientID:            cfg.Catalog.Spotify.ClientID,
			ClientSecret:        cfg.Catalog.Spotify.ClientSecret,
			TokenURL:            cfg.Catalog.Spotify.TokenURL,
			CredentialsInHeader: true,
			Timeout:             timeout,
		}, log)
	} else {
		log.Infow("music catalog is not configured, token endpoint is disabled")
	}

	c.svcs = s
}

// initRedis creates the Redis client and tests the connection.
func initRedis(ctx context.Context, cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// newSessionCodeStore shares codes through Redis when it is available so
// that any replica can redeem them.
func (c *Container) newSessionCodeStore(log logger.Interface) identityUsecases.SessionCodeStore {
	if c.redis != nil {
		return cache.NewRedisSessionCodeStore(c.redis, sessionCodeKeyPrefix, cache.DefaultSessionCodeTTL)
	}
	store := cache.NewMemorySessionCodeStore(log, cache.DefaultSessionCodeTTL, cache.DefaultSweepInterval)
	c.closers = append(c.closers, store)
	return store
}

func (c *Container) newRateLimiter(log logger.Interface) ratelimit.RateLimiter {
	policy := ratelimit.Policy{
		Requests: c.cfg.RateLimit.Requests,
		Window:   seconds(c.cfg.RateLimit.WindowSeconds),
	}
	if c.redis != nil {
		return ratelimit.NewRedisRateLimiter(c.redis, policy)
	}
	limiter := ratelimit.NewMemoryRateLimiter(log, policy)
	c.closers = append(c.closers, limiter)
	return limiter
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
