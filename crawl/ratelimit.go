package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/webmd"
	"golang.org/x/time/rate"
)

var _ webmd.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain request pacing using token buckets.
// Each domain gets its own limiter with a burst of 1, so successive
// requests to one host are spaced by the politeness interval while
// requests to different hosts don't block each other.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a DomainLimiter with the specified requests
// per second limit.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
	}
}

// NewDomainLimiterForDelay creates a DomainLimiter that spaces requests
// to one domain by at least the given delay. A non-positive delay means
// no pacing.
func NewDomainLimiterForDelay(delay time.Duration) *DomainLimiter {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
