package throttle

import (
	"context"
	"time"

	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// MemoryLimiter is a per-process token bucket used when no Redis is available.
// The bucket holds Limit tokens and refills at Limit per Period.
type MemoryLimiter struct {
	store *middleware.RateLimiterMemoryStore
}

func NewMemoryLimiter(r Rate) *MemoryLimiter {
	return &MemoryLimiter{
		store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(r.Limit) / r.Period.Seconds()),
			Burst:     r.Limit,
			ExpiresIn: max(r.Period, 3*time.Minute),
		}),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.store.Allow(key)
}
