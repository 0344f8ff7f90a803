package security

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		limit:  limit,
		window: window,
	}
}

// BookingRateLimit caps booking attempts per client IP within the window.
func (r *RateLimiter) BookingRateLimit() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !r.allow(e.Request.Context(), e.RealIP()) {
			return e.JSON(http.StatusTooManyRequests, map[string]string{
				"error": "Rate limit exceeded. Please try again later.",
			})
		}
		return e.Next()
	}
}

// allow counts one attempt for the client and reports whether it is still
// within the limit. Redis being down fails open: bookings keep working
// without the limiter.
func (r *RateLimiter) allow(ctx context.Context, clientIP string) bool {
	if r.redis == nil {
		return true
	}

	key := fmt.Sprintf("ratelimit:booking:%s", clientIP)

	count, err := r.redis.Incr(ctx, key).Result()
	if err != nil {
		return true
	}

	if count == 1 {
		r.redis.Expire(ctx, key, r.window)
	}

	return count <= int64(r.limit)
}
