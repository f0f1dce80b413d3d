package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/artsoul-app/artsoul/internal/shared/goroutine"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

const maxMemoryEntries = 10000

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// MemoryRateLimiter is a token bucket per key for single-instance deployments.
// The bucket holds Requests tokens and refills at Requests per Window.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	idle     time.Duration

	cancel context.CancelFunc
	done   <-chan struct{}
}

func NewMemoryRateLimiter(log logger.Interface, policy Policy) *MemoryRateLimiter {
	window := policy.Window
	if window <= 0 {
		window = time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	l := &MemoryRateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(float64(policy.Requests) / window.Seconds()),
		burst:    policy.Requests,
		idle:     2 * window,
		cancel:   cancel,
	}
	if policy.Requests <= 0 {
		l.limit = rate.Inf
	}
	l.done = goroutine.Every(ctx, log, "ratelimit-cleanup", window, l.cleanup)
	return l
}

func (l *MemoryRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.getLimiter(key).Allow(), nil
}

func (l *MemoryRateLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	delete(l.limiters, key)
	l.mu.Unlock()
	return nil
}

// Close stops the cleanup loop
func (l *MemoryRateLimiter) Close() error {
	l.cancel()
	<-l.done
	return nil
}

func (l *MemoryRateLimiter) getLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, exists := l.limiters[key]
	if !exists {
		if len(l.limiters) >= maxMemoryEntries {
			l.evictOldest()
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastAccess = time.Now()
	return entry.limiter
}

func (l *MemoryRateLimiter) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	for key, entry := range l.limiters {
		if oldestKey == "" || entry.lastAccess.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.lastAccess
		}
	}
	if oldestKey != "" {
		delete(l.limiters, oldestKey)
	}
}

func (l *MemoryRateLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-l.idle)
	for key, entry := range l.limiters {
		if entry.lastAccess.Before(cutoff) {
			delete(l.limiters, key)
		}
	}
}
