package podcastindex

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPodcastByFeedID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/podcasts/byfeedid", r.URL.Path)
		assert.Equal(t, "920666", r.URL.Query().Get("id"))

		_, _ = w.Write([]byte(`{
			"status": "true",
			"feed": {"id": 920666, "title": "Podcasting 2.0", "language": "en", "categories": {"102": "Technology"}},
			"description": "Found matching feed."
		}`))
	})

	resp, err := client.PodcastByFeedID(context.Background(), 920666)
	require.NoError(t, err)
	assert.Equal(t, int64(920666), resp.Feed.ID)
	assert.Equal(t, "Technology", resp.Feed.Categories["102"])
}

func TestPodcastByFeedIDRejectsInvalid(t *testing.T) {
	client := NewClient(Config{APIKey: "k", APISecret: "s"})

	_, err := client.PodcastByFeedID(context.Background(), 0)
	require.Error(t, err)
	_, err = client.PodcastByFeedID(context.Background(), -3)
	require.Error(t, err)
}

func TestEpisodesByFeedID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/episodes/byfeedid", r.URL.Path)
		assert.Equal(t, "920666", r.URL.Query().Get("id"))
		assert.Equal(t, "10", r.URL.Query().Get("max"))

		_, _ = w.Write([]byte(`{
			"status": "true",
			"items": [{"id": 1, "title": "Episode 1", "feedId": 920666}],
			"count": 1,
			"description": "Found matching items."
		}`))
	})

	resp, err := client.EpisodesByFeedID(context.Background(), 920666, 10)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(920666), resp.Items[0].FeedID)
}

func TestRandomEpisodesRemapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/episodes/random", r.URL.Path)
		assert.Equal(t, "en", r.URL.Query().Get("lang"))

		// The random endpoint nests its list under "episodes".
		_, _ = w.Write([]byte(`{
			"status": "true",
			"episodes": [{"id": 7, "title": "Random One"}, {"id": 8, "title": "Random Two"}],
			"count": 2,
			"description": "ok"
		}`))
	})

	resp, err := client.RandomEpisodes(context.Background(), 2, "", nil)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Random One", resp.Items[0].Title)
	assert.Equal(t, 2, resp.Count)
}

func TestTrendingPodcastsCategoryList(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/podcasts/trending", r.URL.Path)
		assert.Equal(t, "News,Technology", r.URL.Query().Get("cat[]"))

		_, _ = w.Write([]byte(`{"status": "true", "feeds": [], "count": 0, "description": "ok"}`))
	})

	_, err := client.TrendingPodcasts(context.Background(), TrendingOptions{
		Categories: []string{"News", "Technology"},
	})
	require.NoError(t, err)
}

func TestEpisodeByGUIDOptionalNarrowing(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc-123", r.URL.Query().Get("guid"))
		assert.Equal(t, "920666", r.URL.Query().Get("feedid"))
		assert.Empty(t, r.URL.Query().Get("feedurl"))

		_, _ = w.Write([]byte(`{
			"status": "true",
			"episode": {"id": 42, "guid": "abc-123"},
			"description": "ok"
		}`))
	})

	resp, err := client.EpisodeByGUID(context.Background(), "abc-123", "", 920666)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Episode.ID)
}

func TestCategories(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories/list", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)

		_, _ = w.Write([]byte(`{
			"status": "true",
			"feeds": [{"id": 1, "name": "Arts"}, {"id": 2, "name": "Books"}],
			"count": 2,
			"description": "ok"
		}`))
	})

	resp, err := client.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Feeds, 2)
	assert.Equal(t, "Arts", resp.Feeds[0].Name)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultLimit, clampLimit(0))
	assert.Equal(t, defaultLimit, clampLimit(-1))
	assert.Equal(t, 40, clampLimit(40))
	assert.Equal(t, maxLimit, clampLimit(500))
}
