package api

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"tuberank/internal/cache"
	"tuberank/internal/metrics"
	"tuberank/internal/models"
	"tuberank/internal/seo"
)

// KeywordHandler serves synthetic keyword research metrics.
type KeywordHandler struct {
	store cache.Store
	ttl   time.Duration
	now   func() time.Time
}

// NewKeywordHandler creates a new keyword research handler backed by the
// given TTL store.
func NewKeywordHandler(store cache.Store, ttl time.Duration) *KeywordHandler {
	return &KeywordHandler{store: store, ttl: ttl, now: time.Now}
}

// Research returns metrics for a keyword, serving from cache within the
// TTL. Values are deterministic per sanitized keyword, so concurrent
// populations of the same key are harmless.
func (h *KeywordHandler) Research(c fiber.Ctx) error {
	var body models.KeywordResearchRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	sanitized := seo.SanitizeKeyword(body.Keyword)
	if sanitized == "" {
		return jsonError(c, fiber.StatusBadRequest, "keyword must contain letters or digits")
	}

	cacheKey := "keyword:" + sanitized
	if raw, err := h.store.Get(cacheKey); err != nil {
		slog.Error("keyword cache read failed", "keyword", sanitized, "error", err)
	} else if raw != nil {
		var cached seo.KeywordMetrics
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.RecordUsage("keyword_research", "cached")
			return jsonSuccess(c, models.KeywordResearchResponse{
				Success:   true,
				Result:    cached,
				FromCache: true,
			})
		}
	}

	result := seo.GenerateMetrics(sanitized)
	result.CachedAt = h.now().UTC()

	if raw, err := json.Marshal(result); err == nil {
		if err := h.store.Set(cacheKey, raw, h.ttl); err != nil {
			slog.Error("keyword cache write failed", "keyword", sanitized, "error", err)
		}
	}

	metrics.RecordUsage("keyword_research", "scored")
	return jsonSuccess(c, models.KeywordResearchResponse{
		Success:   true,
		Result:    result,
		FromCache: false,
	})
}
