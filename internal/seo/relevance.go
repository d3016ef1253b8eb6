package seo

import (
	"math"
	"sort"
	"strings"
)

// Score levels. Boundaries are exact: 60 is high, 59 and 40 are medium,
// 39 is low.
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// ScoredTag is a candidate tag with its 0-100 relevance score.
type ScoredTag struct {
	Tag   string `json:"tag"`
	Score int    `json:"score"`
	Level string `json:"level"`
}

// Weights are the relevance scorer's heuristic constants. The defaults
// reproduce the documented behavior; they are injectable rather than
// hard-coded so tuning does not require touching scorer logic.
type Weights struct {
	// Frequency is the saturation ceiling of the corpus-frequency signal.
	Frequency float64
	// TitleRelevance scales the title-overlap signal.
	TitleRelevance float64
	// ShapeMulti is the bonus for tags of 2-4 words.
	ShapeMulti int
	// ShapeSingle is the bonus for single-word tags.
	ShapeSingle int
	// SaturationDivisor normalizes the distinct-tag count in the
	// frequency signal.
	SaturationDivisor float64
}

// DefaultWeights returns the documented scoring constants.
func DefaultWeights() Weights {
	return Weights{
		Frequency:         60,
		TitleRelevance:    30,
		ShapeMulti:        10,
		ShapeSingle:       5,
		SaturationDivisor: 100,
	}
}

// LevelFor buckets a 0-100 score.
func LevelFor(score int) string {
	switch {
	case score >= 60:
		return LevelHigh
	case score >= 40:
		return LevelMedium
	default:
		return LevelLow
	}
}

// ScoreTags scores every entry of a frequency table against the
// normalized input title. Output is ordered by descending score; ties
// keep the table's frequency-rank order.
func ScoreTags(table []TagCount, normalizedTitle string, w Weights) []ScoredTag {
	total := len(table)
	titleWords := wordSet(normalizedTitle)

	scored := make([]ScoredTag, 0, total)
	for _, entry := range table {
		score := scoreTag(entry, total, normalizedTitle, titleWords, w)
		scored = append(scored, ScoredTag{
			Tag:   entry.Tag,
			Score: score,
			Level: LevelFor(score),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func scoreTag(entry TagCount, total int, title string, titleWords map[string]struct{}, w Weights) int {
	divisor := math.Max(float64(total)/w.SaturationDivisor, 1)
	freqSignal := math.Min(float64(entry.Count)/divisor*w.Frequency, w.Frequency)

	titleSignal := w.TitleRelevance * titleRelevance(strings.ToLower(entry.Tag), title, titleWords)

	shape := 0
	switch words := len(strings.Fields(entry.Tag)); {
	case words >= 2 && words <= 4:
		shape = w.ShapeMulti
	case words == 1:
		shape = w.ShapeSingle
	}

	score := int(math.Round(freqSignal + titleSignal + float64(shape)))
	return clamp(score, 0, 100)
}

// titleRelevance is 1.0 on a substring match in either direction,
// otherwise the fraction of the tag's words present in the title.
func titleRelevance(tag, title string, titleWords map[string]struct{}) float64 {
	if strings.Contains(title, tag) || strings.Contains(tag, title) {
		return 1.0
	}
	words := strings.Fields(tag)
	if len(words) == 0 {
		return 0
	}
	matched := 0
	for _, word := range words {
		if _, ok := titleWords[word]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(words))
}

// FallbackScores scores intent keywords directly when no candidate data
// is available. Scores are derived from the keyword's rolling hash so a
// degraded result is still reproducible: always in [40,59], always
// medium. Callers must surface the degraded-confidence condition.
func FallbackScores(keywords []string) []ScoredTag {
	scored := make([]ScoredTag, 0, len(keywords))
	for _, kw := range keywords {
		score := 40 + hashSeed(kw)%20
		scored = append(scored, ScoredTag{
			Tag:   kw,
			Score: score,
			Level: LevelFor(score),
		})
	}
	return scored
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
