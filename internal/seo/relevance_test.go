package seo

import (
	"reflect"
	"testing"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{60, LevelHigh},
		{59, LevelMedium},
		{40, LevelMedium},
		{39, LevelLow},
		{100, LevelHigh},
		{0, LevelLow},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score); got != tt.want {
			t.Errorf("LevelFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreTags(t *testing.T) {
	w := DefaultWeights()

	t.Run("scores stay within 0-100", func(t *testing.T) {
		table := []TagCount{
			{Tag: "g wagon crash", Count: 25},
			{Tag: "crash", Count: 12},
			{Tag: "unrelated words entirely here now", Count: 1},
		}
		for _, st := range ScoreTags(table, "g wagon crash compilation", w) {
			if st.Score < 0 || st.Score > 100 {
				t.Errorf("score %d for %q out of range", st.Score, st.Tag)
			}
			if st.Level != LevelFor(st.Score) {
				t.Errorf("level %q does not match score %d", st.Level, st.Score)
			}
		}
	})

	t.Run("substring match gets full title relevance", func(t *testing.T) {
		table := []TagCount{
			{Tag: "g wagon", Count: 1},
			{Tag: "cooking pasta", Count: 1},
		}
		scored := ScoreTags(table, "g wagon crash compilation", w)
		if scored[0].Tag != "g wagon" {
			t.Fatalf("expected substring-matched tag first, got %v", scored)
		}
		// Same frequency and shape bonus, so the 30-point title signal
		// must separate them.
		if scored[0].Score-scored[1].Score != 30 {
			t.Errorf("score gap = %d, want 30", scored[0].Score-scored[1].Score)
		}
	})

	t.Run("shape bonus by word count", func(t *testing.T) {
		table := []TagCount{
			{Tag: "zzz", Count: 1},
			{Tag: "zzz yyy", Count: 1},
			{Tag: "aa bb cc dd ee", Count: 1},
		}
		scored := ScoreTags(table, "something else", w)
		byTag := map[string]int{}
		for _, st := range scored {
			byTag[st.Tag] = st.Score
		}
		if byTag["zzz yyy"]-byTag["zzz"] != 5 {
			t.Errorf("multi-word bonus delta = %d, want 5", byTag["zzz yyy"]-byTag["zzz"])
		}
		if byTag["aa bb cc dd ee"] >= byTag["zzz"] {
			t.Errorf("5-word tag should get no shape bonus: %v", byTag)
		}
	})

	t.Run("ordering is descending with stable ties", func(t *testing.T) {
		table := []TagCount{
			{Tag: "first", Count: 3},
			{Tag: "second", Count: 3},
			{Tag: "third", Count: 3},
		}
		scored := ScoreTags(table, "no overlap here", w)
		if scored[0].Tag != "first" || scored[1].Tag != "second" || scored[2].Tag != "third" {
			t.Errorf("tie order not preserved: %v", scored)
		}
	})

	t.Run("empty table", func(t *testing.T) {
		if got := ScoreTags(nil, "anything", w); len(got) != 0 {
			t.Errorf("ScoreTags(nil) = %v, want empty", got)
		}
	})
}

func TestFallbackScores(t *testing.T) {
	keywords := []string{"g wagon", "crash", "compilation", "2024"}

	first := FallbackScores(keywords)
	second := FallbackScores(keywords)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("FallbackScores not deterministic:\n%v\n%v", first, second)
	}

	if len(first) != len(keywords) {
		t.Fatalf("len = %d, want %d", len(first), len(keywords))
	}
	for _, st := range first {
		if st.Score < 40 || st.Score > 60 {
			t.Errorf("fallback score %d for %q outside [40,60]", st.Score, st.Tag)
		}
		if st.Level != LevelMedium {
			t.Errorf("fallback level for %q = %q, want medium", st.Tag, st.Level)
		}
	}
}
