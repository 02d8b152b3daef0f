// Package retry implements a bounded-retry policy driven by outcome
// classification rather than by error values alone.
package retry

import (
	"context"
	"time"
)

// Class is the outcome classification of a single attempt.
type Class int

const (
	// Success ends the loop immediately.
	Success Class = iota
	// Transient is retried until MaxAttempts is reached.
	Transient
	// Permanent ends the loop immediately; retrying cannot fix it.
	Permanent
)

// Policy describes how many attempts to make and how long to wait between
// them. The caller supplies the classification rule per attempt, so the
// policy itself stays independent of networking.
type Policy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// Do invokes fn until it reports Success or Permanent, or until MaxAttempts
// is reached. Between transient attempts it sleeps for Backoff, returning
// early if ctx is cancelled. It returns the number of attempts made and the
// class of the last one.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context, attempt int) Class) (int, Class) {
	max := p.MaxAttempts
	if max < 1 {
		max = 1
	}

	attempts := 0
	last := Transient
	for attempt := 1; attempt <= max; attempt++ {
		attempts = attempt
		last = fn(ctx, attempt)
		if last != Transient {
			break
		}
		if attempt == max {
			break
		}
		if !sleep(ctx, p.Backoff) {
			break
		}
	}
	return attempts, last
}

// sleep waits for d or until ctx is cancelled. It reports whether the full
// wait completed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
