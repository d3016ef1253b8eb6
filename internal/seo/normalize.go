// Package seo implements the tag and title scoring engine: text
// normalization, intent keyword extraction, candidate tag aggregation,
// relevance and title-quality scoring, and the deterministic synthetic
// keyword metrics used when no live data source is available.
package seo

import (
	"regexp"
	"strings"
)

var (
	nonWordChars    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)
)

// misspellings maps common typo'd brand and action names to their
// canonical spelling. Applied after punctuation stripping, so keys must
// already be in normalized form. Replacement values must not themselves
// contain any key, or NormalizeTitle stops being idempotent.
var misspellings = []struct{ from, to string }{
	{"g-wagon", "g wagon"},
	{"gwagon", "g wagon"},
	{"compilaton", "compilation"},
	{"turorial", "tutorial"},
	{"tutoral", "tutorial"},
	{"begginer", "beginner"},
	{"beginer", "beginner"},
	{"editng", "editing"},
	{"challange", "challenge"},
	{"recieve", "receive"},
}

// NormalizeTitle reduces a raw title to its canonical lowercase form:
// hashtag markers and punctuation removed (hyphens kept), whitespace
// collapsed, known misspellings corrected. Empty input yields an empty
// string; downstream stages treat that as an empty keyword set.
func NormalizeTitle(raw string) string {
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, "#", "")
	s = nonWordChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	for _, m := range misspellings {
		s = strings.ReplaceAll(s, m.from, m.to)
	}
	return s
}

// SanitizeKeyword reduces a keyword to the canonical form used as a cache
// and lookup key: lowercase, alphanumeric plus single spaces only.
func SanitizeKeyword(raw string) string {
	s := strings.ToLower(raw)
	s = nonAlphanumeric.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// tokenize strips non-word characters from s and splits on whitespace.
func tokenize(s string) []string {
	return strings.Fields(nonWordChars.ReplaceAllString(s, ""))
}

// wordSet returns the set of whitespace-separated words in s.
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}
