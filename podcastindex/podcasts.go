package podcastindex

import (
	"context"
	"fmt"
)

// PodcastByFeedID fetches a single feed by its Podcast Index feed ID
// (podcasts/byfeedid).
func (c *Client) PodcastByFeedID(ctx context.Context, feedID int64) (*FeedResponse, error) {
	if feedID <= 0 {
		return nil, fmt.Errorf("invalid feed ID: %d", feedID)
	}

	var resp FeedResponse
	if err := c.get(ctx, "podcasts/byfeedid", Options{"id": feedID}, &resp); err != nil {
		return nil, err
	}

	c.observe("podcasts/byfeedid", map[string]any{"feed_id": feedID})
	return &resp, nil
}

// PodcastByFeedURL fetches a single feed by its feed URL
// (podcasts/byfeedurl).
func (c *Client) PodcastByFeedURL(ctx context.Context, feedURL string) (*FeedResponse, error) {
	if feedURL == "" {
		return nil, fmt.Errorf("feed URL cannot be empty")
	}

	var resp FeedResponse
	if err := c.get(ctx, "podcasts/byfeedurl", Options{"url": feedURL}, &resp); err != nil {
		return nil, err
	}

	c.observe("podcasts/byfeedurl", map[string]any{"url_length": len(feedURL)})
	return &resp, nil
}

// PodcastByGUID fetches a single feed by its podcast GUID
// (podcasts/byguid).
func (c *Client) PodcastByGUID(ctx context.Context, guid string) (*FeedResponse, error) {
	if guid == "" {
		return nil, fmt.Errorf("podcast GUID cannot be empty")
	}

	var resp FeedResponse
	if err := c.get(ctx, "podcasts/byguid", Options{"guid": guid}, &resp); err != nil {
		return nil, err
	}

	c.observe("podcasts/byguid", map[string]any{"guid_length": len(guid)})
	return &resp, nil
}

// PodcastByITunesID fetches a single feed by its iTunes ID
// (podcasts/byitunesid).
func (c *Client) PodcastByITunesID(ctx context.Context, itunesID int64) (*FeedResponse, error) {
	if itunesID <= 0 {
		return nil, fmt.Errorf("invalid iTunes ID: %d", itunesID)
	}

	var resp FeedResponse
	if err := c.get(ctx, "podcasts/byitunesid", Options{"id": itunesID}, &resp); err != nil {
		return nil, err
	}

	c.observe("podcasts/byitunesid", map[string]any{"itunes_id": itunesID})
	return &resp, nil
}

// TrendingOptions filter the trending feed list.
type TrendingOptions struct {
	Max           int
	Since         int64
	Language      string
	Categories    []string
	NotCategories []string
}

// TrendingPodcasts fetches the feeds trending over the requested window
// (podcasts/trending).
func (c *Client) TrendingPodcasts(ctx context.Context, opts TrendingOptions) (*SearchResponse, error) {
	lang := opts.Language
	if lang == "" {
		lang = "en"
	}

	params := Options{
		"max":  clampLimit(opts.Max),
		"lang": lang,
	}
	if opts.Since > 0 {
		params["since"] = opts.Since
	}
	if len(opts.Categories) > 0 {
		params["cat"] = opts.Categories
	}
	if len(opts.NotCategories) > 0 {
		params["notcat"] = opts.NotCategories
	}

	var resp SearchResponse
	if err := c.get(ctx, "podcasts/trending", params, &resp); err != nil {
		return nil, err
	}

	c.observe("podcasts/trending", map[string]any{
		"lang":  lang,
		"count": len(resp.Feeds),
	})
	return &resp, nil
}
