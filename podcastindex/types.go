package podcastindex

// apiStatus is the status/description pair every envelope carries. The
// API reports success as the literal string "true".
type apiStatus struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// GetStatus returns the envelope status flag.
func (s apiStatus) GetStatus() string { return s.Status }

// GetDescription returns the envelope's human-readable description.
func (s apiStatus) GetDescription() string { return s.Description }

// Feed represents a podcast feed from the Podcast Index API.
type Feed struct {
	ID               int64             `json:"id"`
	PodcastGUID      string            `json:"podcastGuid"`
	Title            string            `json:"title"`
	URL              string            `json:"url"`
	OriginalURL      string            `json:"originalUrl"`
	Link             string            `json:"link"`
	Description      string            `json:"description"`
	Author           string            `json:"author"`
	OwnerName        string            `json:"ownerName"`
	Image            string            `json:"image"`
	Artwork          string            `json:"artwork"`
	LastUpdateTime   int64             `json:"lastUpdateTime"`
	LastCrawlTime    int64             `json:"lastCrawlTime"`
	LastParseTime    int64             `json:"lastParseTime"`
	LastGoodHTTPCode int               `json:"lastGoodHttpStatusCode"`
	Language         string            `json:"language"`
	Categories       map[string]string `json:"categories"`
	Locked           int               `json:"locked"`
	ImageURLHash     int64             `json:"imageUrlHash"`
	EpisodeCount     int               `json:"episodeCount"`
	ITunesID         int64             `json:"itunesId"`
	Dead             int               `json:"dead"`
	CrawlErrors      int               `json:"crawlErrors"`
	ParseErrors      int               `json:"parseErrors"`
}

// Episode represents a single episode item.
type Episode struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Link            string `json:"link"`
	Description     string `json:"description"`
	GUID            string `json:"guid"`
	DatePublished   int64  `json:"datePublished"`
	DateCrawled     int64  `json:"dateCrawled"`
	EnclosureURL    string `json:"enclosureUrl"`
	EnclosureType   string `json:"enclosureType"`
	EnclosureLength int64  `json:"enclosureLength"`
	Duration        int64  `json:"duration"`
	Explicit        int    `json:"explicit"`
	EpisodeNumber   int    `json:"episode"`
	EpisodeType     string `json:"episodeType"`
	Season          int    `json:"season"`
	Image           string `json:"image"`
	FeedID          int64  `json:"feedId"`
	FeedTitle       string `json:"feedTitle"`
	FeedImage       string `json:"feedImage"`
	FeedITunesID    int64  `json:"feedItunesId"`
	FeedLanguage    string `json:"feedLanguage"`
	ChaptersURL     string `json:"chaptersUrl"`
	TranscriptURL   string `json:"transcriptUrl"`
}

// Category is one entry of the category taxonomy.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Stats holds the index-wide counters from stats/current.
type Stats struct {
	FeedCountTotal          int64 `json:"feedCountTotal"`
	EpisodeCountTotal       int64 `json:"episodeCountTotal"`
	FeedsWithNewEpisodes3d  int64 `json:"feedsWithNewEpisodes3days"`
	FeedsWithNewEpisodes10d int64 `json:"feedsWithNewEpisodes10days"`
	FeedsWithNewEpisodes30d int64 `json:"feedsWithNewEpisodes30days"`
	FeedsWithNewEpisodes90d int64 `json:"feedsWithNewEpisodes90days"`
}

// SearchResponse is the envelope for the search and trending endpoints.
type SearchResponse struct {
	apiStatus
	Feeds []Feed `json:"feeds"`
	Count int    `json:"count"`
	Query string `json:"query"`
}

// FeedResponse is the envelope for single-feed lookups.
type FeedResponse struct {
	apiStatus
	Feed Feed `json:"feed"`
}

// EpisodesResponse is the envelope for episode-list endpoints.
type EpisodesResponse struct {
	apiStatus
	Items []Episode `json:"items"`
	Count int       `json:"count"`
}

// EpisodeResponse is the envelope for single-episode lookups.
type EpisodeResponse struct {
	apiStatus
	ID      int64   `json:"id"`
	Episode Episode `json:"episode"`
}

// CategoriesResponse lists the category taxonomy. The API reuses the
// "feeds" field name for the category list.
type CategoriesResponse struct {
	apiStatus
	Feeds []Category `json:"feeds"`
	Count int        `json:"count"`
}

// StatsResponse is the envelope for stats/current.
type StatsResponse struct {
	apiStatus
	Stats Stats `json:"stats"`
}
