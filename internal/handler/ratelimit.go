package handler

import (
	"sync"
	"time"

	"swipe-service/config"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const LimitGroupSwipes = "swipes"

type groupLimit struct {
	requestsPerMinute int
	burst             int
}

type RateLimiter struct {
	globalLimiter *rate.Limiter

	groupLimits   map[string]groupLimit
	groupLimiters sync.Map
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		globalLimiter: newLimiter(cfg.RequestsPerMinute, cfg.Burst),
		groupLimits: map[string]groupLimit{
			LimitGroupSwipes: {requestsPerMinute: cfg.SwipeRequestsPerMinute, burst: cfg.SwipeBurst},
		},
	}
}

// newLimiter treats a non-positive rate as unlimited.
func newLimiter(requestsPerMinute, burst int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), burst)
}

func (rl *RateLimiter) getOrCreateGroupLimiter(group string) *rate.Limiter {
	limit, exists := rl.groupLimits[group]
	if !exists {
		return nil
	}

	limiter, _ := rl.groupLimiters.LoadOrStore(group, newLimiter(limit.requestsPerMinute, limit.burst))
	return limiter.(*rate.Limiter)
}

func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.globalLimiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Global rate limit exceeded",
			})
		}
		return c.Next()
	}
}

// GroupMiddleware applies the limit of the named group on top of the global one.
func (rl *RateLimiter) GroupMiddleware(group string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter := rl.getOrCreateGroupLimiter(group); limiter != nil {
			if !limiter.Allow() {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded for " + group,
				})
			}
		}
		return c.Next()
	}
}
