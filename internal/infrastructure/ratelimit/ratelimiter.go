// Package ratelimit throttles credential endpoints per client.
package ratelimit

import (
	"context"
	"time"
)

// Policy allows Requests per Window for each key.
type Policy struct {
	Requests int
	Window   time.Duration
}

type RateLimiter interface {
	// Allow records one request for key and reports whether it is within the policy
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}
