package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/armanpopli/roastbot/internal/config"
	"github.com/armanpopli/roastbot/internal/models"
)

// Client queries the DuckDuckGo Instant Answer API for contextual narrative
// enrichment. Results are best-effort: an empty result set is a neutral
// value, not an error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxResults int
}

func NewClient(cfg config.Search) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxResults: cfg.MaxResults,
	}
}

type relatedTopic struct {
	Text     string         `json:"Text"`
	FirstURL string         `json:"FirstURL"`
	Topics   []relatedTopic `json:"Topics"`
}

type instantAnswer struct {
	Heading       string         `json:"Heading"`
	AbstractText  string         `json:"AbstractText"`
	AbstractURL   string         `json:"AbstractURL"`
	RelatedTopics []relatedTopic `json:"RelatedTopics"`
}

func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	return c.search(ctx, query, c.maxResults)
}

func (c *Client) search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	endpoint := c.baseURL + "/?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("searching %q: unexpected status %d", query, resp.StatusCode)
	}

	var answer instantAnswer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	results := make([]models.SearchResult, 0, limit)
	if answer.AbstractText != "" {
		results = append(results, models.SearchResult{
			Title:   answer.Heading,
			Snippet: answer.AbstractText,
			URL:     answer.AbstractURL,
			Source:  sourceOf(answer.AbstractURL),
		})
	}
	results = appendTopics(results, answer.RelatedTopics, limit)
	return results, nil
}

// appendTopics flattens the (possibly nested) related-topic tree until the
// limit is reached.
func appendTopics(results []models.SearchResult, topics []relatedTopic, limit int) []models.SearchResult {
	for _, topic := range topics {
		if len(results) >= limit {
			break
		}
		if len(topic.Topics) > 0 {
			results = appendTopics(results, topic.Topics, limit)
			continue
		}
		if topic.Text == "" || topic.FirstURL == "" {
			continue
		}
		results = append(results, models.SearchResult{
			Title:   topicTitle(topic.Text),
			Snippet: topic.Text,
			URL:     topic.FirstURL,
			Source:  sourceOf(topic.FirstURL),
		})
	}
	return results
}

// Instant Answer topic text reads "Name - description"; the leading segment
// serves as the title.
func topicTitle(text string) string {
	if title, _, ok := strings.Cut(text, " - "); ok {
		return title
	}
	return text
}

func sourceOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
