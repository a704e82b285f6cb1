package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/armanpopli/roastbot/internal/config"
)

const userAgent = "roastbot/1.0"

// APIError is the failure signal for a gateway call: the endpoint that
// failed plus either a non-2xx status or the underlying transport error.
type APIError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GET %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("GET %s: unexpected status %d", e.Endpoint, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Client issues rate-limited GET calls against the Sleeper API. Every call
// sleeps for the configured delay first; there are no retries and no backoff,
// a single failure propagates to the caller immediately.
type Client struct {
	httpClient *http.Client
	baseURL    string
	delay      time.Duration
}

func NewClient(cfg config.SleeperAPI) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		delay:      cfg.RateLimitDelay,
	}
}

func (c *Client) Get(ctx context.Context, endpoint string, result any) error {
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return &APIError{Endpoint: endpoint, Err: ctx.Err()}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &APIError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &APIError{Endpoint: endpoint, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return nil
}
