package podcastindex

import "context"

// NewFeed is the reduced feed shape returned by recent/newfeeds.
type NewFeed struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	TimeAdded   int64  `json:"timeAdded"`
	ContentHash string `json:"contentHash"`
	Language    string `json:"language"`
}

// RecentFeedsResponse is the envelope for recent/feeds.
type RecentFeedsResponse struct {
	apiStatus
	Feeds []Feed `json:"feeds"`
	Count int    `json:"count"`
	Since int64  `json:"since"`
}

// NewFeedsResponse is the envelope for recent/newfeeds.
type NewFeedsResponse struct {
	apiStatus
	Feeds []NewFeed `json:"feeds"`
	Count int       `json:"count"`
}

// RecentEpisodes fetches the most recent episodes across the whole
// index (recent/episodes). excludeString filters out episodes whose
// title or feed title contains it; empty means no filter.
func (c *Client) RecentEpisodes(ctx context.Context, max int, excludeString string) (*EpisodesResponse, error) {
	params := Options{
		"max":           clampLimit(max),
		"excludeString": stringOrNil(excludeString),
	}

	var resp EpisodesResponse
	if err := c.get(ctx, "recent/episodes", params, &resp); err != nil {
		return nil, err
	}

	c.observe("recent/episodes", map[string]any{"count": len(resp.Items)})
	return &resp, nil
}

// RecentFeeds fetches the most recently updated feeds (recent/feeds).
func (c *Client) RecentFeeds(ctx context.Context, max int, lang string) (*RecentFeedsResponse, error) {
	params := Options{
		"max":  clampLimit(max),
		"lang": stringOrNil(lang),
	}

	var resp RecentFeedsResponse
	if err := c.get(ctx, "recent/feeds", params, &resp); err != nil {
		return nil, err
	}

	c.observe("recent/feeds", map[string]any{"count": len(resp.Feeds)})
	return &resp, nil
}

// RecentNewFeeds fetches feeds newly added to the index
// (recent/newfeeds).
func (c *Client) RecentNewFeeds(ctx context.Context, max int) (*NewFeedsResponse, error) {
	params := Options{"max": clampLimit(max)}

	var resp NewFeedsResponse
	if err := c.get(ctx, "recent/newfeeds", params, &resp); err != nil {
		return nil, err
	}

	c.observe("recent/newfeeds", map[string]any{"count": len(resp.Feeds)})
	return &resp, nil
}
