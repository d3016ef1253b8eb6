package seo

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	minTagLen       = 2
	maxTagLen       = 50
	maxTableEntries = 30
)

// Candidate is a comparable item fetched from the external video search:
// a title plus its tags. Read-only to the aggregation and scoring stages.
type Candidate struct {
	Title string
	Tags  []string
}

// TagCount is one entry of the frequency table. Tag keeps the casing of
// the first occurrence; counting is case-insensitive.
type TagCount struct {
	Tag   string
	Count int
}

// Aggregate builds the tag frequency table for a set of candidates.
//
// Explicit tags (trimmed, 2-50 characters) and significant title tokens
// (length >= 3, non-stopword) share one frequency space, so a word that
// appears both as a tag and across titles accumulates combined weight.
// Items with no usable title or tags contribute nothing. The result is
// ordered by descending count (ties keep discovery order) and capped to
// the top 30 entries.
func Aggregate(items []Candidate) []TagCount {
	counts := make(map[string]int)
	display := make(map[string]string)
	var order []string

	bump := func(key, original string) {
		if _, seen := counts[key]; !seen {
			order = append(order, key)
			display[key] = original
		}
		counts[key]++
	}

	for _, item := range items {
		for _, tag := range item.Tags {
			t := strings.TrimSpace(tag)
			n := utf8.RuneCountInString(t)
			if n < minTagLen || n > maxTagLen {
				continue
			}
			bump(strings.ToLower(t), t)
		}
		for _, token := range tokenize(strings.ToLower(item.Title)) {
			if len(token) < minTokenLen || isStopword(token) {
				continue
			}
			bump(token, token)
		}
	}

	table := make([]TagCount, 0, len(order))
	for _, key := range order {
		table = append(table, TagCount{Tag: display[key], Count: counts[key]})
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})

	if len(table) > maxTableEntries {
		table = table[:maxTableEntries]
	}
	return table
}
