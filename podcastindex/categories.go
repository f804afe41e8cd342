package podcastindex

import "context"

// Categories retrieves the full category taxonomy (categories/list).
func (c *Client) Categories(ctx context.Context) (*CategoriesResponse, error) {
	var resp CategoriesResponse
	if err := c.get(ctx, "categories/list", nil, &resp); err != nil {
		return nil, err
	}

	c.observe("categories/list", map[string]any{"count": len(resp.Feeds)})
	return &resp, nil
}
