package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tuberank/internal/cache"
	"tuberank/internal/db"
	"tuberank/internal/handlers"
	"tuberank/internal/handlers/api"
	"tuberank/internal/middleware"
	"tuberank/internal/seo"
)

// RegisterRoutes registers all application routes. The candidate source
// and TTL store are injected so tests can swap in fakes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, store cache.Store, source api.CandidateSource) error {
	lexicon, err := s.Cfg.LoadLexicon()
	if err != nil {
		return err
	}
	extractor := seo.NewExtractor(lexicon)
	scorer := seo.NewTitleScorer(lexicon.PowerWords)
	weights := seo.DefaultWeights()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware()
	rateLimiter := middleware.NewRateLimiter(store, s.Cfg.RateLimitMax, s.Cfg.RateLimitWindow)

	// Initialize handlers
	tagHandler := api.NewTagHandler(source, extractor, weights, s.Cfg.SearchMaxResults, s.Cfg.SearchMaxPages)
	titleHandler := api.NewTitleHandler(source, extractor, scorer, s.Cfg.SearchMaxResults, s.Cfg.SearchMaxPages)
	keywordHandler := api.NewKeywordHandler(store, s.Cfg.KeywordCacheTTL)
	healthHandler := api.NewHealthHandler(database)
	pageHandler := handlers.NewPageHandler(s.Cfg)

	// Auth routes. Without an OIDC issuer the API is open; meant for
	// local development only.
	requireAPIUser := authMiddleware.RequireAPIUser
	requirePageUser := authMiddleware.RequirePageUser
	if s.Cfg.OIDCIssuer != "" {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		log.Println("OIDC_ISSUER not set; running without authentication")
		requireAPIUser = authMiddleware.OptionalAuth
		requirePageUser = authMiddleware.OptionalAuth
	}

	// Frontend routes
	s.App.Get("/", requirePageUser, pageHandler.Index)
	s.App.Get("/login", pageHandler.Login)

	// Scoring API
	s.App.Post("/api/titles/score", requireAPIUser, titleHandler.Score)
	s.App.Post("/api/tags/suggest", requireAPIUser, tagHandler.Suggest)
	s.App.Post("/api/keywords/research", requireAPIUser, rateLimiter.Limit, keywordHandler.Research)

	// Operational routes
	s.App.Get("/api/health", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
