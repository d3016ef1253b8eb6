package seo

import (
	"fmt"
	"strings"
	"testing"
)

func TestAggregate(t *testing.T) {
	t.Run("tags and title tokens share one frequency space", func(t *testing.T) {
		items := []Candidate{
			{Title: "epic crash test", Tags: []string{"crash"}},
			{Title: "another crash video", Tags: nil},
		}
		table := Aggregate(items)

		found := false
		for _, e := range table {
			if strings.EqualFold(e.Tag, "crash") {
				found = true
				if e.Count != 3 {
					t.Errorf("crash count = %d, want 3 (1 tag + 2 title tokens)", e.Count)
				}
			}
		}
		if !found {
			t.Fatalf("Aggregate() = %v, missing crash entry", table)
		}
	})

	t.Run("tag length bounds", func(t *testing.T) {
		long := strings.Repeat("x", 51)
		items := []Candidate{
			{Tags: []string{"a", long, "ok"}},
		}
		table := Aggregate(items)
		if len(table) != 1 || table[0].Tag != "ok" {
			t.Errorf("Aggregate() = %v, want only %q", table, "ok")
		}
	})

	t.Run("case-insensitive counting keeps first casing", func(t *testing.T) {
		items := []Candidate{
			{Tags: []string{"DIY", "diy", "Diy"}},
		}
		table := Aggregate(items)
		if len(table) != 1 {
			t.Fatalf("Aggregate() = %v, want single entry", table)
		}
		if table[0].Tag != "DIY" || table[0].Count != 3 {
			t.Errorf("got %+v, want {DIY 3}", table[0])
		}
	})

	t.Run("items missing tags or titles are skipped silently", func(t *testing.T) {
		items := []Candidate{
			{},
			{Title: "", Tags: nil},
			{Tags: []string{"solo"}},
		}
		table := Aggregate(items)
		if len(table) != 1 || table[0].Tag != "solo" {
			t.Errorf("Aggregate() = %v, want only solo", table)
		}
	})

	t.Run("capped to top 30 by descending count", func(t *testing.T) {
		var items []Candidate
		for i := 0; i < 40; i++ {
			tag := fmt.Sprintf("tag%02d", i)
			// tag00 appears once, tag39 appears 40 times.
			for j := 0; j <= i; j++ {
				items = append(items, Candidate{Tags: []string{tag}})
			}
		}
		table := Aggregate(items)
		if len(table) != 30 {
			t.Fatalf("len = %d, want 30", len(table))
		}
		if table[0].Tag != "tag39" || table[0].Count != 40 {
			t.Errorf("top entry = %+v, want {tag39 40}", table[0])
		}
		for i := 1; i < len(table); i++ {
			if table[i].Count > table[i-1].Count {
				t.Fatalf("table not sorted by count at %d: %v", i, table)
			}
		}
	})

	t.Run("title stopwords and short tokens excluded", func(t *testing.T) {
		items := []Candidate{
			{Title: "the and a of crash"},
		}
		table := Aggregate(items)
		if len(table) != 1 || table[0].Tag != "crash" {
			t.Errorf("Aggregate() = %v, want only crash", table)
		}
	})
}
