package seo

import "strings"

const (
	// ngramScore is the fixed score for n-gram tags: they are derived
	// straight from the title, so relevance is not in question.
	ngramScore = 99
	maxNgrams  = 15
)

// MissingTags builds unigram, bigram, and trigram tags from a normalized
// title, skipping any tag already present in existing (case-insensitive).
// Each entry is scored 99/high; output is capped to 15 entries, unigrams
// first, then bigrams, then trigrams.
func MissingTags(normalizedTitle string, existing []string) []ScoredTag {
	words := strings.Fields(normalizedTitle)
	if len(words) == 0 {
		return nil
	}

	have := make(map[string]struct{}, len(existing))
	for _, tag := range existing {
		have[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}

	var tags []ScoredTag
	for n := 1; n <= 3 && n <= len(words); n++ {
		for i := 0; i+n <= len(words) && len(tags) < maxNgrams; i++ {
			gram := strings.Join(words[i:i+n], " ")
			if _, dup := have[gram]; dup {
				continue
			}
			have[gram] = struct{}{}
			tags = append(tags, ScoredTag{
				Tag:   gram,
				Score: ngramScore,
				Level: LevelFor(ngramScore),
			})
		}
	}
	return tags
}
