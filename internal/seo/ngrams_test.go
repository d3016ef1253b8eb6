package seo

import (
	"fmt"
	"strings"
	"testing"
)

func TestMissingTags(t *testing.T) {
	t.Run("unigrams then bigrams then trigram", func(t *testing.T) {
		got := MissingTags("cat video fun", nil)
		want := []string{"cat", "video", "fun", "cat video", "video fun", "cat video fun"}
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d: %v", len(got), len(want), got)
		}
		for i, tag := range got {
			if tag.Tag != want[i] {
				t.Errorf("tags[%d] = %q, want %q", i, tag.Tag, want[i])
			}
			if tag.Score != 99 || tag.Level != LevelHigh {
				t.Errorf("tags[%d] = %+v, want score 99 high", i, tag)
			}
		}
	})

	t.Run("existing tags skipped", func(t *testing.T) {
		got := MissingTags("cat video fun", []string{"CAT", "cat video "})
		for _, tag := range got {
			if tag.Tag == "cat" || tag.Tag == "cat video" {
				t.Errorf("existing tag %q not skipped: %v", tag.Tag, got)
			}
		}
	})

	t.Run("capped at 15 entries", func(t *testing.T) {
		words := make([]string, 20)
		for i := range words {
			words[i] = fmt.Sprintf("word%02d", i)
		}
		got := MissingTags(strings.Join(words, " "), nil)
		if len(got) != 15 {
			t.Errorf("len = %d, want 15", len(got))
		}
	})

	t.Run("empty title", func(t *testing.T) {
		if got := MissingTags("", nil); got != nil {
			t.Errorf("MissingTags(\"\") = %v, want nil", got)
		}
	})
}
