package models

import "tuberank/internal/seo"

// Video type values accepted by the tag suggestion boundary. An empty
// value is treated as long-form.
const (
	VideoTypeLong   = "long"
	VideoTypeShorts = "shorts"
)

// Tag suggestion modes. ModeMissing returns n-gram tags derived from the
// title itself instead of scored candidates.
const (
	ModeSuggest = "suggest"
	ModeMissing = "missing"
)

// Source values reported in tag suggestion responses.
const (
	SourceScored   = "scored"
	SourceFallback = "fallback"
	SourceNgram    = "ngram"
)

// TitleScoreRequest is the body of POST /api/titles/score.
type TitleScoreRequest struct {
	Title string `json:"title"`
}

// TitleScoreResponse is the composite title evaluation.
type TitleScoreResponse struct {
	TitleScore      int           `json:"titleScore"`
	Status          string        `json:"status"`
	Breakdown       seo.Breakdown `json:"breakdown"`
	Recommendations []string      `json:"recommendations"`
	SearchQueries   []string      `json:"searchQueries"`
	SearchDemand    int           `json:"searchDemand"`
	Competition     string        `json:"competition"`
	Trend           string        `json:"trend"`
	SuggestedTitles []string      `json:"suggestedTitles"`
	Keywords        []string      `json:"keywords"`
}

// TagSuggestRequest is the body of POST /api/tags/suggest.
type TagSuggestRequest struct {
	Title        string   `json:"title"`
	VideoType    string   `json:"videoType"`
	Mode         string   `json:"mode"`
	ExistingTags []string `json:"existingTags"`
}

// TagSuggestResponse carries the ranked tag suggestions.
type TagSuggestResponse struct {
	Tags            []seo.ScoredTag `json:"tags"`
	NormalizedTitle string          `json:"normalizedTitle"`
	IntentKeywords  []string        `json:"intentKeywords"`
	TotalCandidates int             `json:"totalCandidates"`
	Source          string          `json:"source"`
}

// KeywordResearchRequest is the body of POST /api/keywords/research.
type KeywordResearchRequest struct {
	Keyword string `json:"keyword"`
}

// KeywordResearchResponse wraps the synthetic metrics for one keyword.
type KeywordResearchResponse struct {
	Success   bool               `json:"success"`
	Result    seo.KeywordMetrics `json:"result"`
	FromCache bool               `json:"fromCache"`
}

// User is the authenticated caller, reconstructed from the session.
type User struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
