package api

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"tuberank/internal/metrics"
	"tuberank/internal/models"
	"tuberank/internal/seo"
	"tuberank/internal/validation"
)

// maxQueryKeywords is how many intent keywords form the candidate search
// query.
const maxQueryKeywords = 3

// TagHandler serves SEO tag suggestions.
type TagHandler struct {
	source     CandidateSource
	extractor  *seo.Extractor
	weights    seo.Weights
	maxResults int
	maxPages   int
}

// NewTagHandler creates a new tag suggestion handler.
func NewTagHandler(source CandidateSource, extractor *seo.Extractor, weights seo.Weights, maxResults, maxPages int) *TagHandler {
	return &TagHandler{
		source:     source,
		extractor:  extractor,
		weights:    weights,
		maxResults: maxResults,
		maxPages:   maxPages,
	}
}

// Suggest ranks candidate tags for a title. mode=missing bypasses the
// scorer and returns n-gram tags derived from the title itself.
func (h *TagHandler) Suggest(c fiber.Ctx) error {
	var body models.TagSuggestRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if ok, msg := validation.ValidateTitle(body.Title); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if !validation.ValidateVideoType(body.VideoType) {
		return jsonError(c, fiber.StatusBadRequest, "videoType must be \"long\" or \"shorts\"")
	}
	if !validation.ValidateMode(body.Mode) {
		return jsonError(c, fiber.StatusBadRequest, "mode must be \"suggest\" or \"missing\"")
	}

	normalized := seo.NormalizeTitle(body.Title)
	if normalized == "" {
		return jsonError(c, fiber.StatusBadRequest, "title contains no usable text")
	}
	intent := h.extractor.Extract(normalized)

	if body.Mode == models.ModeMissing {
		metrics.RecordUsage("tag_suggest", "ngram")
		return jsonSuccess(c, models.TagSuggestResponse{
			Tags:            seo.MissingTags(normalized, body.ExistingTags),
			NormalizedTitle: normalized,
			IntentKeywords:  intent,
			Source:          models.SourceNgram,
		})
	}

	query := buildQuery(normalized, intent, body.VideoType)
	candidates, _, err := h.source.FetchCandidates(c.Context(), query, h.maxResults, h.maxPages)
	if err != nil || len(candidates) == 0 {
		if err != nil {
			slog.Warn("candidate source unavailable, using fallback scoring", "error", err)
		}
		if len(intent) == 0 {
			metrics.RecordUsage("tag_suggest", "failed")
			return jsonError(c, fiber.StatusBadGateway, "no candidate data available to score against")
		}
		metrics.RecordUsage("tag_suggest", "fallback")
		return jsonSuccess(c, models.TagSuggestResponse{
			Tags:            dropExisting(seo.FallbackScores(intent), body.ExistingTags),
			NormalizedTitle: normalized,
			IntentKeywords:  intent,
			Source:          models.SourceFallback,
		})
	}

	table := seo.Aggregate(candidates)
	tags := dropExisting(seo.ScoreTags(table, normalized, h.weights), body.ExistingTags)

	metrics.RecordUsage("tag_suggest", "scored")
	return jsonSuccess(c, models.TagSuggestResponse{
		Tags:            tags,
		NormalizedTitle: normalized,
		IntentKeywords:  intent,
		TotalCandidates: len(candidates),
		Source:          models.SourceScored,
	})
}

// buildQuery joins the leading intent keywords into the candidate search
// query, falling back to the whole normalized title when extraction found
// nothing.
func buildQuery(normalized string, intent []string, videoType string) string {
	query := normalized
	if len(intent) > 0 {
		n := len(intent)
		if n > maxQueryKeywords {
			n = maxQueryKeywords
		}
		query = strings.Join(intent[:n], " ")
	}
	if videoType == models.VideoTypeShorts {
		query += " shorts"
	}
	return query
}

// dropExisting removes tags the video already carries.
func dropExisting(tags []seo.ScoredTag, existing []string) []seo.ScoredTag {
	if len(existing) == 0 {
		return tags
	}
	have := make(map[string]struct{}, len(existing))
	for _, tag := range existing {
		have[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}
	kept := tags[:0]
	for _, tag := range tags {
		if _, dup := have[strings.ToLower(tag.Tag)]; !dup {
			kept = append(kept, tag)
		}
	}
	return kept
}
