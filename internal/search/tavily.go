package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TavilyEndpoint is the root of the Tavily search API.
const TavilyEndpoint = "https://api.tavily.com"

type tavilyResponse struct {
	Query   string `json:"query"`
	Results []struct {
		Title   string  `json:"title"`
		URL     string  `json:"url"`
		Content string  `json:"content"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

// TavilySearcher queries the Tavily JSON search API.
type TavilySearcher struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewTavilySearcher creates a searcher against the public Tavily endpoint.
func NewTavilySearcher(apiKey string) *TavilySearcher {
	return &TavilySearcher{
		apiKey:   apiKey,
		endpoint: TavilyEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// WithEndpoint points the searcher at a different API root.
func (t *TavilySearcher) WithEndpoint(endpoint string) *TavilySearcher {
	t.endpoint = strings.TrimRight(endpoint, "/")
	return t
}

func (t *TavilySearcher) Name() string {
	return "tavily"
}

func (t *TavilySearcher) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	body, err := json.Marshal(map[string]any{
		"query":               query,
		"topic":               "general",
		"search_depth":        "basic",
		"max_results":         clampLimit(limit),
		"include_answer":      false,
		"include_raw_content": false,
		"include_images":      false,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("tavily returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var sr tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to deserialize web search response: %w", err)
	}

	results := make([]Result, 0, len(sr.Results))
	for _, r := range sr.Results {
		results = append(results, Result{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Content,
		})
	}
	return results, nil
}
