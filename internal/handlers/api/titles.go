package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"tuberank/internal/metrics"
	"tuberank/internal/models"
	"tuberank/internal/seo"
	"tuberank/internal/validation"
)

// maxSearchQueries bounds the expanded query set derived from candidate
// tags.
const maxSearchQueries = 10

// TitleHandler serves composite title quality scores.
type TitleHandler struct {
	source     CandidateSource
	extractor  *seo.Extractor
	scorer     *seo.TitleScorer
	maxResults int
	maxPages   int
}

// NewTitleHandler creates a new title scoring handler.
func NewTitleHandler(source CandidateSource, extractor *seo.Extractor, scorer *seo.TitleScorer, maxResults, maxPages int) *TitleHandler {
	return &TitleHandler{
		source:     source,
		extractor:  extractor,
		scorer:     scorer,
		maxResults: maxResults,
		maxPages:   maxPages,
	}
}

// Score evaluates a title. External signals (search queries from
// comparable videos, competition) are fetched per request; each failing
// signal degrades only its own sub-score.
func (h *TitleHandler) Score(c fiber.Ctx) error {
	var body models.TitleScoreRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if ok, msg := validation.ValidateTitle(body.Title); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	normalized := seo.NormalizeTitle(body.Title)
	if normalized == "" {
		return jsonError(c, fiber.StatusBadRequest, "title contains no usable text")
	}
	intent := h.extractor.Extract(normalized)

	primary := normalized
	if len(intent) > 0 {
		primary = intent[0]
	}
	sanitized := seo.SanitizeKeyword(primary)
	synthetic := seo.GenerateMetrics(sanitized)

	queries, competitionTotal, hasCompetition := h.searchSignals(c, primary, synthetic)

	eval := h.scorer.Evaluate(body.Title, queries, competitionTotal, hasCompetition)

	competition := seo.CompetitionLabel(competitionTotal)
	outcome := "scored"
	if !hasCompetition {
		// Degraded: bucket the synthetic competition figure instead.
		competition = syntheticCompetitionLabel(synthetic.Competition)
		outcome = "fallback"
	}

	metrics.RecordUsage("title_score", outcome)
	return jsonSuccess(c, models.TitleScoreResponse{
		TitleScore:      eval.Score,
		Status:          eval.Status,
		Breakdown:       eval.Breakdown,
		Recommendations: eval.Recommendations,
		SearchQueries:   queries,
		SearchDemand:    synthetic.SearchVolume,
		Competition:     competition,
		Trend:           synthetic.Trend,
		SuggestedTitles: suggestTitles(primary),
		Keywords:        intent,
	})
}

// searchSignals derives the expanded search queries and the competition
// total from the candidate source, degrading to synthetic related
// keywords when the source is unavailable.
func (h *TitleHandler) searchSignals(c fiber.Ctx, primary string, synthetic seo.KeywordMetrics) (queries []string, total int64, has bool) {
	candidates, total, err := h.source.FetchCandidates(c.Context(), primary, h.maxResults, h.maxPages)
	if err != nil || len(candidates) == 0 {
		if err != nil {
			slog.Warn("candidate source unavailable, using synthetic search signals", "error", err)
		}
		return synthetic.RelatedKeywords, 0, false
	}

	for _, entry := range seo.Aggregate(candidates) {
		queries = append(queries, strings.ToLower(entry.Tag))
		if len(queries) == maxSearchQueries {
			break
		}
	}
	if len(queries) == 0 {
		queries = synthetic.RelatedKeywords
	}
	return queries, total, true
}

func syntheticCompetitionLabel(competition int) string {
	switch {
	case competition < 40:
		return seo.CompetitionLow
	case competition < 70:
		return seo.CompetitionMedium
	default:
		return seo.CompetitionHigh
	}
}

// suggestTitles builds a few alternative titles around the primary
// keyword.
func suggestTitles(primary string) []string {
	year := time.Now().Year()
	return []string{
		fmt.Sprintf("The Ultimate %s Guide (%d)", titleCase(primary), year),
		fmt.Sprintf("I Tried %s for 30 Days - Here's What Happened", titleCase(primary)),
		fmt.Sprintf("%s Explained in 10 Minutes", titleCase(primary)),
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
