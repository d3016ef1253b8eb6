// Package youtube is the candidate source adapter: a thin client for the
// YouTube Data API v3 search and videos endpoints. The service is treated
// as an opaque paginated search+detail source; callers own the fallback
// strategy when it is unavailable.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tuberank/internal/seo"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// maxResultsPerPage is the data source's hard page-size limit.
const maxResultsPerPage = 50

// ErrNoAPIKey signals that the adapter has no credentials configured.
// Callers degrade to the fallback scoring path instead of failing.
var ErrNoAPIKey = errors.New("youtube: API key not configured")

// Client calls the YouTube Data API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client. An empty apiKey is allowed; calls then
// return ErrNoAPIKey so the caller can pick its fallback.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Search runs one page of search.list for videos matching the query.
func (c *Client) Search(ctx context.Context, query string, maxResults int, pageToken string) (*SearchPage, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if maxResults > maxResultsPerPage {
		maxResults = maxResultsPerPage
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("key", c.apiKey)
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var sr searchResponse
	if err := c.get(ctx, "/search", params, &sr); err != nil {
		return nil, err
	}

	page := &SearchPage{
		NextPageToken: sr.NextPageToken,
		TotalResults:  sr.PageInfo.TotalResults,
	}
	for _, item := range sr.Items {
		if item.ID.VideoID != "" {
			page.VideoIDs = append(page.VideoIDs, item.ID.VideoID)
		}
	}
	return page, nil
}

// Videos runs one videos.list detail batch for the given IDs.
func (c *Client) Videos(ctx context.Context, ids []string) ([]Video, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", strings.Join(ids, ","))
	params.Set("key", c.apiKey)

	var vr videosResponse
	if err := c.get(ctx, "/videos", params, &vr); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(vr.Items))
	for _, item := range vr.Items {
		videos = append(videos, Video{
			ID:          item.ID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Tags:        item.Snippet.Tags,
			ViewCount:   item.Statistics.ViewCount,
		})
	}
	return videos, nil
}

// FetchCandidates combines search and detail-batch calls into comparable
// items for the aggregator. Up to maxPages pages are fetched; pages are
// merged in request order. A single attempt per call, no retries: any
// failure after the first page returns what was already merged.
func (c *Client) FetchCandidates(ctx context.Context, query string, maxResults, maxPages int) ([]seo.Candidate, int64, error) {
	if maxPages < 1 {
		maxPages = 1
	}

	var (
		candidates   []seo.Candidate
		totalResults int64
		pageToken    string
	)
	for page := 0; page < maxPages; page++ {
		sp, err := c.Search(ctx, query, maxResults, pageToken)
		if err != nil {
			if page == 0 {
				return nil, 0, err
			}
			break
		}
		if page == 0 {
			totalResults = sp.TotalResults
		}

		videos, err := c.Videos(ctx, sp.VideoIDs)
		if err != nil {
			if page == 0 {
				return nil, 0, err
			}
			break
		}
		for _, v := range videos {
			candidates = append(candidates, seo.Candidate{Title: v.Title, Tags: v.Tags})
		}

		pageToken = sp.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return candidates, totalResults, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("youtube: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("youtube: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("youtube: %s returned %s: %s", path, resp.Status, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("youtube: decode %s response: %w", path, err)
	}
	return nil
}
