// Package validation checks incoming request fields before they reach
// the scoring engine.
package validation

import (
	"strings"

	"tuberank/internal/models"
)

// MaxTitleLength is the longest title the API accepts. YouTube truncates
// at 100 characters; some headroom is left for scoring over-long drafts.
const MaxTitleLength = 200

// ValidateTitle checks a title field. Returns ok plus a human-readable
// message on failure.
func ValidateTitle(title string) (bool, string) {
	if strings.TrimSpace(title) == "" {
		return false, "title is required"
	}
	if len(title) > MaxTitleLength {
		return false, "title must be at most 200 characters"
	}
	return true, ""
}

// ValidateVideoType accepts an empty value (defaults to long) or one of
// the known video types.
func ValidateVideoType(videoType string) bool {
	switch videoType {
	case "", models.VideoTypeLong, models.VideoTypeShorts:
		return true
	}
	return false
}

// ValidateMode accepts an empty value (defaults to suggest) or one of the
// known suggestion modes.
func ValidateMode(mode string) bool {
	switch mode {
	case "", models.ModeSuggest, models.ModeMissing:
		return true
	}
	return false
}
