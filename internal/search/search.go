// Package search provides web search backends used to ground search summaries.
package search

import (
	"context"
	"fmt"
	"os"
)

// DefaultLimit is the number of results requested when the caller passes zero.
const DefaultLimit = 5

// Result is a single web search hit.
type Result struct {
	Title   string
	URL     string
	Snippet string
}

// Searcher runs a web search and returns at most limit results.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Result, error)
	Name() string
}

// NewSearcher creates the searcher for providerType ("duckduckgo" or "tavily").
// Tavily reads its key from TAVILY_API_KEY.
func NewSearcher(providerType string) (Searcher, error) {
	switch providerType {
	case "", "duckduckgo":
		return NewDuckDuckGoSearcher(), nil
	case "tavily":
		apiKey := os.Getenv("TAVILY_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("TAVILY_API_KEY environment variable is not set")
		}
		return NewTavilySearcher(apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported search provider: %s", providerType)
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
