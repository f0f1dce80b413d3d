// Package upstream talks to the third-party catalogs whose APIs need an
// application token: IGDB (through Twitch) and Spotify.
package upstream

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"

	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

const (
	// refreshMargin renews a token this long before the upstream would reject it
	refreshMargin = 60 * time.Second
	// requestTimeout bounds every call to an upstream
	requestTimeout = 10 * time.Second
	// maxResponseSize caps upstream response bodies (4MB)
	maxResponseSize = 4 << 20
)

// TokenCacheConfig names one upstream and its client credentials.
type TokenCacheConfig struct {
	Name         string
	ClientID     string
	ClientSecret string
	TokenURL     string
	// CredentialsInHeader sends the client credentials with HTTP basic auth
	// instead of the form body.
	CredentialsInHeader bool
	Timeout             time.Duration
}

// TokenCache holds a single application token for one upstream. Concurrent
// callers that find the slot stale share one refresh.
type TokenCache struct {
	name       string
	config     *clientcredentials.Config
	httpClient *http.Client
	logger     logger.Interface
	now        func() time.Time
	refresh    singleflight.Group

	mu    sync.RWMutex
	token *oauth2.Token
}

func NewTokenCache(cfg TokenCacheConfig, log logger.Interface) *TokenCache {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}
	authStyle := oauth2.AuthStyleInParams
	if cfg.CredentialsInHeader {
		authStyle = oauth2.AuthStyleInHeader
	}
	return &TokenCache{
		name: cfg.Name,
		config: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    authStyle,
		},
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
		now:        time.Now,
	}
}

// WithClock replaces the time source; used by tests to age the cached token.
func (c *TokenCache) WithClock(now func() time.Time) *TokenCache {
	c.now = now
	return c
}

// Token returns the cached token while it has more than a minute left, and
// fetches a new one otherwise.
func (c *TokenCache) Token(ctx context.Context) (*oauth2.Token, error) {
	now := c.now()

	c.mu.RLock()
	cached := c.token
	c.mu.RUnlock()
	if cached != nil && now.Before(cached.Expiry.Add(-refreshMargin)) {
		return cached, nil
	}

	v, err, _ := c.refresh.Do(c.name, func() (any, error) {
		c.mu.RLock()
		current := c.token
		c.mu.RUnlock()
		if current != nil && current != cached && now.Before(current.Expiry.Add(-refreshMargin)) {
			return current, nil
		}

		c.logger.Debugw("refreshing upstream token", "upstream", c.name)
		// Detached from the caller so one cancelled request does not fail the others waiting on it.
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.httpClient.Timeout)
		defer cancel()
		fresh, err := c.config.Token(context.WithValue(fetchCtx, oauth2.HTTPClient, c.httpClient))
		if err != nil {
			c.logger.Errorw("failed to fetch upstream token", "upstream", c.name, "error", err)
			return nil, fmt.Errorf("failed to fetch %s token: %w", c.name, err)
		}

		c.mu.Lock()
		c.token = fresh
		c.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*oauth2.Token), nil
}

// Invalidate drops the cached token, e.g. after the upstream rejected it.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}

// AppToken is the client-facing form of an application token.
type AppToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AppToken returns the cached token with its remaining lifetime in seconds.
func (c *TokenCache) AppToken(ctx context.Context) (*AppToken, error) {
	tok, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}
	expiresIn := int64(0)
	if !tok.Expiry.IsZero() {
		expiresIn = int64(tok.Expiry.Sub(c.now()).Seconds())
		if expiresIn < 0 {
			expiresIn = 0
		}
	}
	return &AppToken{
		AccessToken: tok.AccessToken,
		TokenType:   tok.Type(),
		ExpiresIn:   expiresIn,
	}, nil
}
