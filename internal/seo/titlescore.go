package seo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Title status labels. Boundaries are exact: 80 is excellent, 79 and 60
// are good, 59 and 40 are average, 39 is poor.
const (
	StatusExcellent = "EXCELLENT"
	StatusGood      = "GOOD"
	StatusAverage   = "AVERAGE"
	StatusPoor      = "POOR"
)

// Competition labels derived from the data source's total result count.
const (
	CompetitionLow    = "LOW"
	CompetitionMedium = "MEDIUM"
	CompetitionHigh   = "HIGH"
)

// Sub-score maxima. They sum to 100; the final aggregation caps the total
// anyway so each rule stays independent.
const (
	maxLengthScore      = 20
	maxKeywordScore     = 25
	maxPowerWordsScore  = 15
	maxFreshnessScore   = 10
	maxClarityScore     = 15
	maxCompetitionScore = 15
)

// Competition thresholds on the total result count.
const (
	lowCompetitionResults    = 100_000
	mediumCompetitionResults = 1_000_000
)

// queryCoverage is the fraction of a search query's words that must
// appear in the title for the query to count as covered.
const queryCoverage = 0.6

// Breakdown holds the independent sub-scores of a title evaluation.
type Breakdown struct {
	LengthScore      int `json:"lengthScore"`
	KeywordScore     int `json:"keywordScore"`
	PowerWordsScore  int `json:"powerWordsScore"`
	FreshnessScore   int `json:"freshnessScore"`
	ClarityScore     int `json:"clarityScore"`
	CompetitionScore int `json:"competitionScore"`
}

// TitleEvaluation is the composite result of scoring one title.
type TitleEvaluation struct {
	Score           int
	Status          string
	Breakdown       Breakdown
	Recommendations []string
}

// TitleScorer computes composite 0-100 quality scores for video titles.
type TitleScorer struct {
	powerWords []string
	now        func() time.Time
}

// NewTitleScorer creates a scorer using the given power-word list.
func NewTitleScorer(powerWords []string) *TitleScorer {
	return &TitleScorer{powerWords: powerWords, now: time.Now}
}

// Evaluate scores a title. searchQueries are the expanded candidate
// queries derived from the title's primary keywords; competitionTotal is
// the data source's total result count for the primary keyword, valid
// only when hasCompetition is true. Each sub-score is computed
// independently; a missing external signal zeroes only its own
// contribution.
func (s *TitleScorer) Evaluate(title string, searchQueries []string, competitionTotal int64, hasCompetition bool) TitleEvaluation {
	normalized := NormalizeTitle(title)

	b := Breakdown{
		LengthScore:      lengthScore(title),
		KeywordScore:     keywordScore(normalized, searchQueries),
		PowerWordsScore:  s.powerWordsScore(normalized),
		FreshnessScore:   s.freshnessScore(normalized),
		ClarityScore:     clarityScore(title),
		CompetitionScore: competitionScore(competitionTotal, hasCompetition),
	}

	total := b.LengthScore + b.KeywordScore + b.PowerWordsScore +
		b.FreshnessScore + b.ClarityScore + b.CompetitionScore
	if total > 100 {
		total = 100
	}

	return TitleEvaluation{
		Score:           total,
		Status:          statusFor(total),
		Breakdown:       b,
		Recommendations: recommendations(b),
	}
}

func statusFor(score int) string {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusGood
	case score >= 40:
		return StatusAverage
	default:
		return StatusPoor
	}
}

// CompetitionLabel buckets a total result count.
func CompetitionLabel(total int64) string {
	switch {
	case total < lowCompetitionResults:
		return CompetitionLow
	case total < mediumCompetitionResults:
		return CompetitionMedium
	default:
		return CompetitionHigh
	}
}

// lengthScore rewards the 40-70 character band and tapers off outside it.
func lengthScore(title string) int {
	n := utf8.RuneCountInString(title)
	switch {
	case n >= 40 && n <= 70:
		return maxLengthScore
	case (n >= 30 && n < 40) || (n > 70 && n <= 80):
		return 12
	case (n >= 20 && n < 30) || (n > 80 && n <= 100):
		return 6
	default:
		return 2
	}
}

// keywordScore is the covered fraction of the expanded search queries,
// scaled to 25 points. A query is covered when at least 60% of its words
// appear in the title. With no queries (upstream unavailable) the
// contribution is 0, not a neutral midpoint.
func keywordScore(normalizedTitle string, queries []string) int {
	if len(queries) == 0 {
		return 0
	}
	titleWords := wordSet(normalizedTitle)
	covered := 0
	for _, q := range queries {
		words := strings.Fields(SanitizeKeyword(q))
		if len(words) == 0 {
			continue
		}
		matched := 0
		for _, w := range words {
			if _, ok := titleWords[w]; ok {
				matched++
			}
		}
		if float64(matched)/float64(len(words)) >= queryCoverage {
			covered++
		}
	}
	return int(math.Round(float64(covered) / float64(len(queries)) * maxKeywordScore))
}

func (s *TitleScorer) powerWordsScore(normalizedTitle string) int {
	count := 0
	for _, w := range s.powerWords {
		if strings.Contains(normalizedTitle, w) {
			count++
		}
	}
	switch {
	case count >= 2:
		return maxPowerWordsScore
	case count == 1:
		return 8
	default:
		return 0
	}
}

// freshnessScore looks for recency signals: the current or upcoming year,
// or an explicit recency word.
func (s *TitleScorer) freshnessScore(normalizedTitle string) int {
	year := s.now().Year()
	signals := []string{
		strconv.Itoa(year), strconv.Itoa(year + 1),
		"new", "latest", "today", "updated",
	}
	words := wordSet(normalizedTitle)
	for _, sig := range signals {
		if _, ok := words[sig]; ok {
			return maxFreshnessScore
		}
	}
	return 0
}

// clarityScore starts at the maximum and deducts for shouting, stacked
// punctuation, and run-on titles.
func clarityScore(title string) int {
	score := maxClarityScore

	punct := strings.Count(title, "!") + strings.Count(title, "?")
	if punct > 3 {
		score -= 5
	}
	if countCapsWords(title) >= 2 {
		score -= 5
	}
	if len(strings.Fields(title)) > 12 {
		score -= 3
	}

	if score < 0 {
		score = 0
	}
	return score
}

// countCapsWords counts fully-uppercase words of three or more letters.
func countCapsWords(title string) int {
	count := 0
	for _, word := range strings.Fields(title) {
		letters := 0
		upper := true
		for _, r := range word {
			if !unicode.IsLetter(r) {
				continue
			}
			letters++
			if !unicode.IsUpper(r) {
				upper = false
				break
			}
		}
		if upper && letters >= 3 {
			count++
		}
	}
	return count
}

func competitionScore(total int64, has bool) int {
	if !has {
		return 0
	}
	switch CompetitionLabel(total) {
	case CompetitionLow:
		return maxCompetitionScore
	case CompetitionMedium:
		return 10
	default:
		return 5
	}
}

// recommendations emits advice for every sub-score below 60% of its
// maximum.
func recommendations(b Breakdown) []string {
	type rule struct {
		score, max int
		advice     string
	}
	rules := []rule{
		{b.LengthScore, maxLengthScore, "Keep the title between 40 and 70 characters"},
		{b.KeywordScore, maxKeywordScore, "Work the search phrases viewers actually type into the title"},
		{b.PowerWordsScore, maxPowerWordsScore, "Add a power word like \"ultimate\" or \"insane\" to lift click-through"},
		{b.FreshnessScore, maxFreshnessScore, fmt.Sprintf("Add a recency signal such as %q or the current year", "new")},
		{b.ClarityScore, maxClarityScore, "Cut excess punctuation and all-caps words"},
		{b.CompetitionScore, maxCompetitionScore, "The primary keyword is crowded; target a narrower niche"},
	}

	var out []string
	for _, r := range rules {
		if float64(r.score) < 0.6*float64(r.max) {
			out = append(out, r.advice)
		}
	}
	return out
}
