package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"task-service/internal/auth"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	globalRequestsPerSecond = 100
	globalBurst             = 200

	msgRateLimitExceeded = "rate limit exceeded"
)

// RateLimiter implements token bucket rate limiting per identity
type RateLimiter struct {
	limiters sync.Map // key -> *limiterEntry
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter creates a new rate limiter
// requestsPerSecond: number of requests allowed per second
// burst: maximum burst size
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate.Limit(requestsPerSecond),
		burst: burst,
		now:   time.Now,
	}
}

// getLimiter gets or creates a rate limiter for the given key
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	raw, ok := rl.limiters.Load(key)
	if !ok {
		raw, _ = rl.limiters.LoadOrStore(key, &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)})
	}
	entry := raw.(*limiterEntry)
	entry.lastSeen.Store(rl.now().UnixNano())
	return entry.limiter
}

// Prune drops limiters not used for at least idle and returns how many were
// removed. A dropped key starts again with a full bucket.
func (rl *RateLimiter) Prune(idle time.Duration) int {
	cutoff := rl.now().Add(-idle).UnixNano()
	removed := 0
	rl.limiters.Range(func(key, raw any) bool {
		if raw.(*limiterEntry).lastSeen.Load() <= cutoff {
			rl.limiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Allow checks if a request should be allowed for the given key
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// Middleware returns an Echo middleware function for rate limiting.
// Authenticated callers are limited per user id, everyone else per IP.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ip:" + c.RealIP()
			if userID, err := auth.GetUserID(c); err == nil {
				key = "user:" + userID
			}

			limiter := rl.getLimiter(key)
			limit := strconv.Itoa(rl.burst)

			if !limiter.Allow() {
				c.Response().Header().Set("X-RateLimit-Limit", limit)
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("Retry-After", "1")

				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": msgRateLimitExceeded,
				})
			}

			c.Response().Header().Set("X-RateLimit-Limit", limit)
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

			return next(c)
		}
	}
}

// NewLoginRateLimiter creates the strict limiter placed in front of login.
func NewLoginRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return NewRateLimiter(requestsPerSecond, burst)
}

// NewGlobalRateLimiter creates the lenient limiter applied to every route.
func NewGlobalRateLimiter() *RateLimiter {
	return NewRateLimiter(globalRequestsPerSecond, globalBurst)
}
