// Package goroutine launches background work with panic recovery.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and logs a panic with its stack instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}

// Every calls fn on each tick of interval until ctx is cancelled. The returned
// channel is closed once the loop has exited.
func Every(ctx context.Context, log logger.Interface, name string, interval time.Duration, fn func()) <-chan struct{} {
	done := make(chan struct{})
	SafeGo(log, name, func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn()
			}
		}
	})
	return done
}
