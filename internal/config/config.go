package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Redis; empty means the in-memory store is used
	RedisURL string

	// YouTube Data API; empty disables the candidate source and forces
	// the fallback scoring path
	YouTubeAPIKey string

	// Candidate fetch bounds
	SearchMaxResults int // per page, hard-capped at 50 by the data source
	SearchMaxPages   int

	// Keyword research
	KeywordCacheTTL time.Duration
	RateLimitMax    int           // requests per caller per window
	RateLimitWindow time.Duration // sliding window size

	// OIDC
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Curated lexicon overrides, optional YAML file
	LexiconFile string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		ServerAddr:       getEnv("SERVER_ADDR", ":3000"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:      getEnv("DATABASE_URL", "postgres://localhost:5432/tuberank?sslmode=disable"),
		RedisURL:         getEnv("REDIS_URL", ""),
		YouTubeAPIKey:    getEnv("YOUTUBE_API_KEY", ""),
		SearchMaxResults: getEnvInt("SEARCH_MAX_RESULTS", 25),
		SearchMaxPages:   getEnvInt("SEARCH_MAX_PAGES", 2),
		KeywordCacheTTL:  getEnvDuration("KEYWORD_CACHE_TTL", time.Hour),
		RateLimitMax:     getEnvInt("RATE_LIMIT_MAX", 10),
		RateLimitWindow:  getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:      getEnv("CORS_ORIGINS", ""),
		LexiconFile:      getEnv("LEXICON_FILE", "lexicon.yaml"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
