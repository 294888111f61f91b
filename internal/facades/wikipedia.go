package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sbilibin2017/museum-guide/internal/logger"
)

// WikipediaFacade fetches plain-text article extracts from the Wikipedia API.
// Every call is bounded by the configured timeout; callers degrade to a
// placeholder response on error instead of blocking the request.
type WikipediaFacade struct {
	baseURL string
	client  *http.Client
}

// NewWikipediaFacade creates a facade against the given API base URL
// (https://en.wikipedia.org/w/api.php in production).
func NewWikipediaFacade(baseURL string, timeout time.Duration) *WikipediaFacade {
	return &WikipediaFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// wikiResponse covers the slice of the API response we read.
type wikiResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// GetExtract fetches the article extract for the given title. A page without
// an extract returns an empty string and no error.
func (f *WikipediaFacade) GetExtract(ctx context.Context, title string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("titles", title)
	q.Set("prop", "extracts")
	q.Set("explaintext", "true")
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch museum info from Wikipedia", "title", title, "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("unexpected Wikipedia API status", "title", title, "status", resp.StatusCode)
		return "", fmt.Errorf("wikipedia api returned status %d", resp.StatusCode)
	}

	var parsed wikiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("parse wikipedia response: %w", err)
	}

	for _, page := range parsed.Query.Pages {
		return page.Extract, nil
	}
	return "", nil
}
