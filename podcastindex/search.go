package podcastindex

import (
	"context"
	"fmt"
)

const (
	defaultLimit = 25
	maxLimit     = 100
)

// clampLimit applies the API's documented default and ceiling for the
// max parameter.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// SearchOptions are the optional filters accepted by the search
// endpoints.
type SearchOptions struct {
	Max      int
	FullText bool
	Clean    bool
	APOnly   bool
	Val      string
}

func (o SearchOptions) options(query string) Options {
	return Options{
		"q":        query,
		"max":      clampLimit(o.Max),
		"fulltext": o.FullText,
		"clean":    o.Clean,
		"aponly":   o.APOnly,
		"val":      stringOrNil(o.Val),
	}
}

// stringOrNil lets empty optional strings fall out of the encoded query.
func stringOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Search searches podcast feeds by term across title, author and owner
// fields (search/byterm).
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	var resp SearchResponse
	if err := c.get(ctx, "search/byterm", opts.options(query), &resp); err != nil {
		return nil, err
	}

	c.observe("search/byterm", map[string]any{
		"query_length": len(query),
		"count":        len(resp.Feeds),
	})
	return &resp, nil
}

// SearchByTitle searches feeds on the title field only (search/bytitle).
func (c *Client) SearchByTitle(ctx context.Context, title string, opts SearchOptions) (*SearchResponse, error) {
	if title == "" {
		return nil, fmt.Errorf("search title cannot be empty")
	}

	var resp SearchResponse
	if err := c.get(ctx, "search/bytitle", opts.options(title), &resp); err != nil {
		return nil, err
	}

	c.observe("search/bytitle", map[string]any{
		"query_length": len(title),
		"count":        len(resp.Feeds),
	})
	return &resp, nil
}

// SearchByPerson searches episodes by person credit (search/byperson).
func (c *Client) SearchByPerson(ctx context.Context, person string, max int) (*EpisodesResponse, error) {
	if person == "" {
		return nil, fmt.Errorf("search person cannot be empty")
	}

	params := Options{
		"q":   person,
		"max": clampLimit(max),
	}

	var resp EpisodesResponse
	if err := c.get(ctx, "search/byperson", params, &resp); err != nil {
		return nil, err
	}

	c.observe("search/byperson", map[string]any{
		"query_length": len(person),
		"count":        len(resp.Items),
	})
	return &resp, nil
}
