package seo

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and strips punctuation", "G Wagon CRASH compilation 2024", "g wagon crash compilation 2024"},
		{"removes hashtags", "#shorts cat video", "shorts cat video"},
		{"keeps hyphens", "step-by-step guide", "step-by-step guide"},
		{"collapses whitespace", "  too   many\tspaces ", "too many spaces"},
		{"fixes misspellings", "GWagon compilaton", "g wagon compilation"},
		{"empty input", "", ""},
		{"punctuation only", "!!! ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTitle(tt.in); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	inputs := []string{
		"G Wagon CRASH compilation 2024",
		"#1 BEST video!!! ever?",
		"gwagon turorial for begginers",
		"",
		"plain lowercase words",
	}
	for _, in := range inputs {
		once := NormalizeTitle(in)
		twice := NormalizeTitle(once)
		if once != twice {
			t.Errorf("NormalizeTitle not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizeKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Photo Editing!!", "photo editing"},
		{"  HELLO world  ", "hello world"},
		{"c++ tips", "c tips"},
		{"???", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeKeyword(tt.in); got != tt.want {
			t.Errorf("SanitizeKeyword(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
