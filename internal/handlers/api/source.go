package api

import (
	"context"

	"tuberank/internal/seo"
)

// CandidateSource fetches comparable videos for a query. Implemented by
// the YouTube client; faked in tests. Returning an error (including
// missing credentials) signals the caller to take its fallback path
// rather than fail.
type CandidateSource interface {
	FetchCandidates(ctx context.Context, query string, maxResults, maxPages int) ([]seo.Candidate, int64, error)
}
