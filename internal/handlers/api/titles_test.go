package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"tuberank/internal/models"
	"tuberank/internal/seo"
)

func titleApp(source CandidateSource) *fiber.App {
	app := fiber.New()
	lex := seo.DefaultLexicon()
	h := NewTitleHandler(source, seo.NewExtractor(lex), seo.NewTitleScorer(lex.PowerWords), 25, 2)
	app.Post("/api/titles/score", h.Score)
	return app
}

func TestScoreScoredPath(t *testing.T) {
	source := &fakeSource{
		candidates: []seo.Candidate{
			{Title: "drone photography tutorial for beginners", Tags: []string{"drone", "photography", "drone tutorial"}},
			{Title: "best drone for beginners 2026", Tags: []string{"drone", "beginner drone"}},
		},
		total: 50_000,
	}
	app := titleApp(source)

	resp := postJSON(t, app, "/api/titles/score", models.TitleScoreRequest{
		Title: "The Ultimate Drone Tutorial for Beginners (Easy Setup Guide)",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	data := decodeData[models.TitleScoreResponse](t, resp)
	if data.TitleScore < 0 || data.TitleScore > 100 {
		t.Errorf("titleScore = %d, out of range", data.TitleScore)
	}
	if data.Status == "" {
		t.Error("status missing")
	}
	if data.Competition != seo.CompetitionLow {
		t.Errorf("competition = %q, want LOW for 50k results", data.Competition)
	}
	if data.Breakdown.CompetitionScore != 15 {
		t.Errorf("competitionScore = %d, want 15 for low competition", data.Breakdown.CompetitionScore)
	}
	if len(data.SearchQueries) == 0 || len(data.SearchQueries) > 10 {
		t.Errorf("searchQueries = %v, want 1..10 entries", data.SearchQueries)
	}
	if len(data.SuggestedTitles) != 3 {
		t.Errorf("suggestedTitles = %v, want 3 entries", data.SuggestedTitles)
	}
	if len(data.Keywords) == 0 {
		t.Error("keywords missing")
	}
	if data.SearchDemand < 100 {
		t.Errorf("searchDemand = %d, want >= 100", data.SearchDemand)
	}
}

func TestScoreDegradedPath(t *testing.T) {
	app := titleApp(&fakeSource{err: errors.New("quota exceeded")})

	resp := postJSON(t, app, "/api/titles/score", models.TitleScoreRequest{
		Title: "Drone Tutorial for Beginners",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (degraded, not failed)", resp.StatusCode)
	}

	data := decodeData[models.TitleScoreResponse](t, resp)
	if data.Breakdown.CompetitionScore != 0 {
		t.Errorf("competitionScore = %d, want 0 without competition data", data.Breakdown.CompetitionScore)
	}
	// Synthetic related keywords stand in for the expanded queries.
	if len(data.SearchQueries) != 5 {
		t.Errorf("searchQueries = %v, want the 5 synthetic related keywords", data.SearchQueries)
	}
	switch data.Trend {
	case seo.TrendRising, seo.TrendStable, seo.TrendFalling:
	default:
		t.Errorf("trend = %q, want a known trend label", data.Trend)
	}
	switch data.Competition {
	case seo.CompetitionLow, seo.CompetitionMedium, seo.CompetitionHigh:
	default:
		t.Errorf("competition = %q, want a bucketed label", data.Competition)
	}
}

func TestScoreDeterministicAcrossRequests(t *testing.T) {
	app := titleApp(&fakeSource{err: errors.New("down")})

	body := models.TitleScoreRequest{Title: "Photo Editing Tutorial"}
	first := decodeData[models.TitleScoreResponse](t, postJSON(t, app, "/api/titles/score", body))
	second := decodeData[models.TitleScoreResponse](t, postJSON(t, app, "/api/titles/score", body))

	if first.SearchDemand != second.SearchDemand || first.Trend != second.Trend {
		t.Errorf("degraded metrics not deterministic: %+v vs %+v", first, second)
	}
	if first.TitleScore != second.TitleScore {
		t.Errorf("titleScore varies across identical requests: %d vs %d", first.TitleScore, second.TitleScore)
	}
}

func TestScoreValidation(t *testing.T) {
	app := titleApp(&fakeSource{})

	tests := []struct {
		name  string
		title string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too long", string(make([]byte, 201))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/titles/score", models.TitleScoreRequest{Title: tt.title})
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}
