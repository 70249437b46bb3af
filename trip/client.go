package trip

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Client fetches trip-planning results over HTTP. It performs a single GET
// per call with no retries; retry policy belongs to the caller's transport
// layer, not here.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a planner API client. A zero timeout means no timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// Fetch retrieves and decodes the trip result at url. Returns nil for an
// empty url, which lets callers treat the planner feed as optional.
func (c *Client) Fetch(ctx context.Context, url string) (*Result, error) {
	if url == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	return Decode(resp.Body)
}
