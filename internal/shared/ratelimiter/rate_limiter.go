// Package ratelimiter throttles outbound calls with a fixed-window counter.
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface limits the frequency of an operation, typically
// outbound calls against a quota-enforcing endpoint.
type RateLimiterInterface interface {
	WaitIfNeeded(ctx context.Context)
}

// RateLimiter counts calls within a fixed window and sleeps out the rest of
// the window once the limit is hit. It is safe for concurrent use; request
// handlers share one instance.
type RateLimiter struct {
	limit    int           // calls allowed per window
	interval time.Duration // window length

	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a RateLimiter allowing limit calls per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks until the current call fits within the window, or
// until ctx is cancelled.
func (rl *RateLimiter) WaitIfNeeded(ctx context.Context) {
	rl.mu.Lock()
	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count <= rl.limit {
		rl.mu.Unlock()
		return
	}
	sleep := rl.interval - now.Sub(rl.lastReset)
	rl.mu.Unlock()

	if sleep > 0 {
		slog.Info("rate limit reached, waiting", "limit", rl.limit, "sleep", sleep)
		t := time.NewTimer(sleep)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}

	rl.mu.Lock()
	rl.count = 1
	rl.lastReset = time.Now()
	rl.mu.Unlock()
}
