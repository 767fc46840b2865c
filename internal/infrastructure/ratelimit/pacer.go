// Package ratelimit spaces outbound calls to the award search API. The
// upstream endpoint answers 429 quickly under load, so every request passes
// through a token-bucket pacer before it is issued.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces a minimum interval between outbound calls.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a pacer that allows one call per minInterval, with the
// given burst allowance. A non-positive interval disables pacing entirely
// (useful in tests).
func NewPacer(minInterval time.Duration, burst int) *Pacer {
	if minInterval <= 0 {
		return &Pacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	if burst < 1 {
		burst = 1
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(minInterval), burst)}
}

// Wait blocks until the next call is allowed or the context is done.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Allow reports whether a call may proceed right now without waiting.
func (p *Pacer) Allow() bool {
	return p.limiter.Allow()
}
