package rent591

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"rent591-scraper/utils"
)

// Client fetches pages from the target site with a browser-like User-Agent.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *utils.Logger
}

// NewClient creates a Client with the given User-Agent and request timeout.
func NewClient(userAgent string, timeout time.Duration, logger *utils.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Fetch issues a single GET and returns the page body. Transport errors and
// non-2xx statuses both come back as errors; callers treat any error as
// "no content" rather than inspecting it.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("rent591: build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("rent591: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("rent591: fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("rent591: read body of %s: %w", url, err)
	}

	c.logger.Debug("[rent591] Fetched %s (%d bytes)", url, len(body))
	return string(body), nil
}
