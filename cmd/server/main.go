package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tuberank/internal/cache"
	"tuberank/internal/config"
	"tuberank/internal/db"
	"tuberank/internal/metrics"
	"tuberank/internal/server"
	"tuberank/internal/youtube"
)

func main() {
	// Local development convenience; a missing .env is fine.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	ctx := context.Background()
	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	metrics.Init(database)

	// TTL store backing the keyword cache and the rate limiter
	var store cache.Store
	if cfg.RedisURL != "" {
		store = cache.NewRedis(cfg.RedisURL)
		log.Println("Using Redis TTL store")
	} else {
		store = cache.NewMemory()
		log.Println("Using in-memory TTL store")
	}

	source := youtube.NewClient(cfg.YouTubeAPIKey)
	if cfg.YouTubeAPIKey == "" {
		log.Println("YOUTUBE_API_KEY not set; tag scoring will use fallback scores")
	}

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, store, source); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()
	log.Printf("Listening on %s", cfg.ServerAddr)

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	if err := srv.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
