package podcastindex

import "context"

// CurrentStats fetches the index-wide counters (stats/current).
func (c *Client) CurrentStats(ctx context.Context) (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.get(ctx, "stats/current", nil, &resp); err != nil {
		return nil, err
	}

	c.observe("stats/current", map[string]any{
		"feed_count_total": resp.Stats.FeedCountTotal,
	})
	return &resp, nil
}
