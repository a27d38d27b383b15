// Package fetch retrieves the raw changelog page as a markdown blob.
// The page is scraped through the Firecrawl API; everything downstream of
// this package operates on plain text and never touches the network.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jerryzhao173985/cursorlog/internal/retry"
)

// DefaultBaseURL is the Firecrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// DefaultTimeout bounds a single scrape request.
const DefaultTimeout = 60 * time.Second

// Fetcher is the single suspension point of an update operation: one request
// against a fixed target returns a text blob or fails.
type Fetcher interface {
	Scrape(ctx context.Context, url string) (string, error)
}

// Client scrapes pages through Firecrawl.
type Client struct {
	// APIKey is the Firecrawl API key, sent as a bearer token.
	APIKey string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// HTTPClient defaults to a client with DefaultTimeout.
	HTTPClient *http.Client
	// Retry bounds retries of transient failures (rate limits, 5xx).
	Retry retry.Config
}

// NewClient creates a Firecrawl client with default endpoint and timeout.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		Retry:      retry.DefaultConfig(),
	}
}

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		Markdown string `json:"markdown"`
	} `json:"data"`
}

// Scrape fetches the page at url and returns its markdown rendering.
// An unreachable API, a non-2xx status, an API-level failure, and empty
// markdown are all fetch errors. Rate limits and server-side errors are
// retried per the client's retry config.
func (c *Client) Scrape(ctx context.Context, url string) (string, error) {
	var markdown string
	err := retry.Do(ctx, c.Retry, func(ctx context.Context) error {
		var err error
		markdown, err = c.scrapeOnce(ctx, url)
		return err
	})
	return markdown, err
}

func (c *Client) scrapeOnce(ctx context.Context, url string) (string, error) {
	body, err := json.Marshal(scrapeRequest{URL: url, Formats: []string{"markdown"}})
	if err != nil {
		return "", fmt.Errorf("encoding scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return "", retry.Transient(err)
		}
		return "", err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var sr scrapeResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return "", fmt.Errorf("decoding scrape response: %w", err)
	}
	if !sr.Success {
		if sr.Error != "" {
			return "", fmt.Errorf("scrape failed: %s", sr.Error)
		}
		return "", fmt.Errorf("scrape failed")
	}
	if sr.Data.Markdown == "" {
		return "", fmt.Errorf("scrape returned no markdown content")
	}

	return sr.Data.Markdown, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: DefaultTimeout}
}
