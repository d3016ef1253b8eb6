package seo

import "strings"

// minTokenLen is the minimum length for a generic title token to count as
// an intent keyword.
const minTokenLen = 3

// Extractor derives intent keywords from a normalized title.
type Extractor struct {
	lex Lexicon
}

// NewExtractor creates an extractor over the given lexicon.
func NewExtractor(lex Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract returns the intent keywords found in a normalized title.
//
// Curated phrases are matched first (substring match, so multi-word
// phrases work), in list order: entities, actions, context. Then title
// tokens of length >= 3 outside the stopword list are appended, unless an
// earlier entry already contains the token. Order is discovery order.
func (e *Extractor) Extract(normalized string) []string {
	if normalized == "" {
		return nil
	}

	var keywords []string
	for _, list := range [][]string{e.lex.Entities, e.lex.Actions, e.lex.Context} {
		for _, phrase := range list {
			if strings.Contains(normalized, phrase) {
				keywords = append(keywords, phrase)
			}
		}
	}

	for _, token := range strings.Fields(normalized) {
		if len(token) < minTokenLen || isStopword(token) {
			continue
		}
		if containsToken(keywords, token) {
			continue
		}
		keywords = append(keywords, token)
	}

	return keywords
}

// containsToken reports whether any existing keyword contains the token.
// This is the near-duplicate check: "wagon" is not added when "g wagon"
// is already present.
func containsToken(keywords []string, token string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, token) {
			return true
		}
	}
	return false
}
