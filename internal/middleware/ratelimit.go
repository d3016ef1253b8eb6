package middleware

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"tuberank/internal/cache"
	"tuberank/internal/models"
)

// RateLimiter enforces a per-caller sliding window over an injectable
// TTL store, so the quota is shared across replicas when the store is
// Redis. Writes race under concurrency; losing an increment widens the
// window slightly, which is acceptable for a quota.
type RateLimiter struct {
	store  cache.Store
	max    int
	window time.Duration
}

// NewRateLimiter creates a limiter allowing max requests per caller per
// window.
func NewRateLimiter(store cache.Store, max int, window time.Duration) *RateLimiter {
	return &RateLimiter{store: store, max: max, window: window}
}

// Limit is the middleware handler. The caller identity is the
// authenticated user's subject, falling back to the client IP. Store
// failures fail open: scoring beats quota precision.
func (rl *RateLimiter) Limit(c fiber.Ctx) error {
	key := "ratelimit:" + callerIdentity(c)
	now := time.Now()
	cutoff := now.Add(-rl.window)

	var stamps []int64
	if raw, err := rl.store.Get(key); err != nil {
		slog.Error("rate limit store read failed", "error", err)
		return c.Next()
	} else if raw != nil {
		if err := json.Unmarshal(raw, &stamps); err != nil {
			stamps = nil
		}
	}

	recent := stamps[:0]
	for _, ts := range stamps {
		if time.UnixMilli(ts).After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= rl.max {
		retryAfter := rl.window - now.Sub(time.UnixMilli(recent[0]))
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		c.Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"status": "error",
			"error":  "rate limit exceeded, try again later",
		})
	}

	recent = append(recent, now.UnixMilli())
	if raw, err := json.Marshal(recent); err == nil {
		if err := rl.store.Set(key, raw, rl.window); err != nil {
			slog.Error("rate limit store write failed", "error", err)
		}
	}

	return c.Next()
}

func callerIdentity(c fiber.Ctx) string {
	if user, ok := c.Locals("user").(*models.User); ok && user.Sub != "" {
		return user.Sub
	}
	return c.IP()
}
