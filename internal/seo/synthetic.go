package seo

import (
	"fmt"
	"math"
	"time"
)

// Trend labels for synthetic keyword metrics.
const (
	TrendRising  = "rising"
	TrendStable  = "stable"
	TrendFalling = "falling"
)

// KeywordMetrics are the synthetic search figures for a sanitized
// keyword. Every field except CachedAt is a pure function of the keyword
// string, so repeated generation yields identical values.
type KeywordMetrics struct {
	Keyword          string    `json:"keyword"`
	SearchVolume     int       `json:"searchVolume"`
	Competition      int       `json:"competition"`
	Score            int       `json:"score"`
	Trend            string    `json:"trend"`
	RelatedKeywords  []string  `json:"relatedKeywords"`
	LongTailKeywords []string  `json:"longTailKeywords"`
	QuestionKeywords []string  `json:"questionKeywords"`
	CachedAt         time.Time `json:"cachedAt"`
}

var (
	relatedTemplates = []string{
		"%s tutorial", "%s tips", "%s for beginners", "best %s", "how to %s",
	}
	longTailTemplates = []string{
		"%s step by step", "easy %s at home", "%s full course",
		"%s mistakes to avoid", "%s in 10 minutes",
	}
	questionTemplates = []string{
		"what is %s", "how does %s work", "is %s worth it",
		"why is %s popular", "can you learn %s",
	}
)

// hashSeed computes the 32-bit rolling hash (h = h*31 + char, wrapping)
// of s and returns its absolute value. Shared by the synthetic generator
// and the fallback tag scorer so every degraded result is reproducible.
func hashSeed(s string) int {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	seed := int64(h)
	if seed < 0 {
		seed = -seed
	}
	return int(seed)
}

// GenerateMetrics derives synthetic search metrics from a sanitized
// keyword. CachedAt is left zero; the caller stamps it when the value is
// stored.
func GenerateMetrics(keyword string) KeywordMetrics {
	seed := hashSeed(keyword)

	volume := 100 + seed%500000
	competition := clamp((volume%10000)/100+seed%30, 10, 95)
	score := int(math.Round(math.Min(50, float64(volume)/10000*50) + float64(100-competition)*0.5))

	var trend string
	switch seed % 3 {
	case 0:
		trend = TrendRising
	case 1:
		trend = TrendStable
	default:
		trend = TrendFalling
	}

	return KeywordMetrics{
		Keyword:          keyword,
		SearchVolume:     volume,
		Competition:      competition,
		Score:            score,
		Trend:            trend,
		RelatedKeywords:  expand(keyword, relatedTemplates),
		LongTailKeywords: expand(keyword, longTailTemplates),
		QuestionKeywords: expand(keyword, questionTemplates),
	}
}

// expand fills each template with the keyword, truncated to 5 entries.
func expand(keyword string, templates []string) []string {
	const maxEntries = 5
	out := make([]string, 0, maxEntries)
	for _, tpl := range templates {
		if len(out) == maxEntries {
			break
		}
		out = append(out, fmt.Sprintf(tpl, keyword))
	}
	return out
}
