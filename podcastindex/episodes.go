package podcastindex

import (
	"context"
	"fmt"
)

// EpisodesByFeedID fetches episodes for a feed by Podcast Index feed ID
// (episodes/byfeedid). Multiple feed IDs may be given; the API accepts
// a comma-joined id list.
func (c *Client) EpisodesByFeedID(ctx context.Context, feedID int64, max int) (*EpisodesResponse, error) {
	if feedID <= 0 {
		return nil, fmt.Errorf("invalid feed ID: %d", feedID)
	}

	params := Options{"id": feedID}
	if max > 0 {
		params["max"] = clampLimit(max)
	}

	var resp EpisodesResponse
	if err := c.get(ctx, "episodes/byfeedid", params, &resp); err != nil {
		return nil, err
	}

	c.observe("episodes/byfeedid", map[string]any{
		"feed_id": feedID,
		"count":   len(resp.Items),
	})
	return &resp, nil
}

// EpisodesByFeedURL fetches episodes for a feed by its feed URL
// (episodes/byfeedurl).
func (c *Client) EpisodesByFeedURL(ctx context.Context, feedURL string, max int) (*EpisodesResponse, error) {
	if feedURL == "" {
		return nil, fmt.Errorf("feed URL cannot be empty")
	}

	params := Options{"url": feedURL}
	if max > 0 {
		params["max"] = clampLimit(max)
	}

	var resp EpisodesResponse
	if err := c.get(ctx, "episodes/byfeedurl", params, &resp); err != nil {
		return nil, err
	}

	c.observe("episodes/byfeedurl", map[string]any{
		"url_length": len(feedURL),
		"count":      len(resp.Items),
	})
	return &resp, nil
}

// EpisodesByITunesID fetches episodes for a feed by iTunes ID
// (episodes/byitunesid).
func (c *Client) EpisodesByITunesID(ctx context.Context, itunesID int64, max int) (*EpisodesResponse, error) {
	if itunesID <= 0 {
		return nil, fmt.Errorf("invalid iTunes ID: %d", itunesID)
	}

	params := Options{"id": itunesID}
	if max > 0 {
		params["max"] = clampLimit(max)
	}

	var resp EpisodesResponse
	if err := c.get(ctx, "episodes/byitunesid", params, &resp); err != nil {
		return nil, err
	}

	c.observe("episodes/byitunesid", map[string]any{
		"itunes_id": itunesID,
		"count":     len(resp.Items),
	})
	return &resp, nil
}

// EpisodeByID fetches a single episode by its Podcast Index episode ID
// (episodes/byid).
func (c *Client) EpisodeByID(ctx context.Context, episodeID int64) (*EpisodeResponse, error) {
	if episodeID <= 0 {
		return nil, fmt.Errorf("invalid episode ID: %d", episodeID)
	}

	var resp EpisodeResponse
	if err := c.get(ctx, "episodes/byid", Options{"id": episodeID}, &resp); err != nil {
		return nil, err
	}

	c.observe("episodes/byid", map[string]any{"episode_id": episodeID})
	return &resp, nil
}

// EpisodeByGUID fetches a single episode by GUID (episodes/byguid). The
// feed URL or feed ID narrows the lookup when the GUID alone is
// ambiguous; pass zero values to omit them.
func (c *Client) EpisodeByGUID(ctx context.Context, guid string, feedURL string, feedID int64) (*EpisodeResponse, error) {
	if guid == "" {
		return nil, fmt.Errorf("episode GUID cannot be empty")
	}

	params := Options{"guid": guid}
	if feedURL != "" {
		params["feedurl"] = feedURL
	}
	if feedID > 0 {
		params["feedid"] = feedID
	}

	var resp EpisodeResponse
	if err := c.get(ctx, "episodes/byguid", params, &resp); err != nil {
		return nil, err
	}

	c.observe("episodes/byguid", map[string]any{"guid_length": len(guid)})
	return &resp, nil
}

// RandomEpisodes fetches random episodes (episodes/random). The random
// endpoint returns its list under "episodes" instead of "items" like
// every other episode endpoint; the response is remapped to the common
// shape here so callers see one envelope.
func (c *Client) RandomEpisodes(ctx context.Context, max int, lang string, notCategories []string) (*EpisodesResponse, error) {
	if lang == "" {
		lang = "en"
	}

	params := Options{
		"max":  clampLimit(max),
		"lang": lang,
	}
	if len(notCategories) > 0 {
		params["notcat"] = notCategories
	}

	var randomResp struct {
		apiStatus
		Episodes []Episode `json:"episodes"`
		Count    int       `json:"count"`
	}
	if err := c.get(ctx, "episodes/random", params, &randomResp); err != nil {
		return nil, err
	}

	resp := &EpisodesResponse{
		apiStatus: randomResp.apiStatus,
		Items:     randomResp.Episodes,
		Count:     randomResp.Count,
	}

	c.observe("episodes/random", map[string]any{
		"lang":  lang,
		"count": len(resp.Items),
	})
	return resp, nil
}
