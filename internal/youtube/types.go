package youtube

// searchResponse is the subset of the search.list response the adapter
// reads: matched video IDs, the continuation token, and the total result
// count used as the competition signal.
type searchResponse struct {
	NextPageToken string `json:"nextPageToken"`
	PageInfo      struct {
		TotalResults int64 `json:"totalResults"`
	} `json:"pageInfo"`
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// videosResponse is the subset of the videos.list response the adapter
// reads.
type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Tags        []string `json:"tags"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// Video is one comparable video returned by the detail-batch call.
type Video struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	ViewCount   string
}

// SearchPage is one page of search results.
type SearchPage struct {
	VideoIDs      []string
	NextPageToken string
	TotalResults  int64
}
