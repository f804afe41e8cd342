package podcastindex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Version identifies this client in observation events and the default
// User-Agent.
const Version = "1.0.0"

const defaultBaseURL = "https://api.podcastindex.org/api/1.0"

// Client handles communication with the Podcast Index API. All fields
// are read-only after construction, so a single client may issue any
// number of concurrent calls; every call signs, encodes, and dispatches
// independently.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	userAgent  string
	observer   Observer
}

// Config holds configuration for the Podcast Index client.
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Observer, when set, receives an event after each successful call.
	// Optional.
	Observer Observer
}

// NewClient creates a new Podcast Index API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "podcastindex-go/" + Version
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		userAgent:  cfg.UserAgent,
		observer:   cfg.Observer,
	}

	c.observe("client.init", map[string]any{
		"client_version": Version,
		"user_agent":     c.userAgent,
	})

	return c
}

// getRaw issues a signed GET against an endpoint path and returns the
// raw response body. Failures surface as exactly one of EncodingError,
// SigningError, TransportError, or the wrapped transport error; no
// retries, no internal deadline beyond the configured client timeout.
func (c *Client) getRaw(ctx context.Context, endpoint string, opts Options) ([]byte, error) {
	qs, err := encodeOptions(opts)
	if err != nil {
		return nil, err
	}

	fullURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if qs != "" {
		fullURL += "?" + qs
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	auth, err := sign(c.apiKey, c.apiSecret, time.Now())
	if err != nil {
		return nil, err
	}
	auth.apply(req)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: truncateBody(body)}
	}

	return body, nil
}

// Raw issues a signed GET against an arbitrary endpoint path and
// returns the undecoded response body. It exists for out-of-band
// tooling (the schema validator, response recording); typed callers
// should use the endpoint methods.
func (c *Client) Raw(ctx context.Context, endpoint string, opts Options) ([]byte, error) {
	return c.getRaw(ctx, endpoint, opts)
}

// get runs the shared pipeline for a typed endpoint: fetch, decode into
// result, then check the envelope's own status field when result
// exposes one. Decode failure is a ParseError; a "false" envelope
// status is an APIError carrying the API's description.
func (c *Client) get(ctx context.Context, endpoint string, opts Options, result any) error {
	body, err := c.getRaw(ctx, endpoint, opts)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &ParseError{Err: err}
	}

	if statusObj, ok := result.(interface{ GetStatus() string }); ok {
		if statusObj.GetStatus() != "true" {
			desc := ""
			if descObj, ok := result.(interface{ GetDescription() string }); ok {
				desc = descObj.GetDescription()
			}
			return &APIError{Description: desc}
		}
	}

	return nil
}
