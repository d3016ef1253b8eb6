package cache

import (
	"github.com/gofiber/storage/redis/v3"
)

// NewRedis creates a Redis-backed Store so cache entries and rate-limit
// windows are shared across replicas. The URL is a standard redis://
// connection string.
func NewRedis(url string) Store {
	return redis.New(redis.Config{
		URL:   url,
		Reset: false,
	})
}
