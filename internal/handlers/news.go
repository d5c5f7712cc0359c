package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultNewsURL is the top-stories endpoint queried when no other URL is
// configured.
const DefaultNewsURL = "https://api.nytimes.com/svc/topstories/v2/technology.json"

// NewsFetcher fetches the latest top story from a news API. Its Fetch
// method satisfies the handler contract: the payload is the API key.
type NewsFetcher struct {
	client  *http.Client
	baseURL string
}

// NewsOption configures a NewsFetcher.
type NewsOption func(*NewsFetcher)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) NewsOption {
	return func(f *NewsFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithBaseURL sets the top-stories endpoint.
func WithBaseURL(u string) NewsOption {
	return func(f *NewsFetcher) {
		if u != "" {
			f.baseURL = u
		}
	}
}

// NewNewsFetcher creates a fetcher for the configured endpoint.
func NewNewsFetcher(opts ...NewsOption) *NewsFetcher {
	f := &NewsFetcher{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: DefaultNewsURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch requests the top stories using apiKey and returns the first
// one formatted as "TITLE - BYLINE". Request, status, and decode
// failures are handler errors.
func (f *NewsFetcher) Fetch(apiKey string) (string, error) {
	u := fmt.Sprintf("%s?api-key=%s", f.baseURL, url.QueryEscape(apiKey))

	resp, err := f.client.Get(u)
	if err != nil {
		return "", fmt.Errorf("fetching news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching news: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading news response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("parsing news response: invalid JSON")
	}

	first := gjson.GetBytes(body, "results.0")
	if !first.Exists() {
		return "", fmt.Errorf("no news items available")
	}

	title := first.Get("title").String()
	byline := first.Get("byline").String()
	return fmt.Sprintf("%s - %s", title, byline), nil
}
