// Package backend implements the plan-generation and search endpoints the
// form controller talks to.
package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/tripplan/internal/api"
	"github.com/ziadkadry99/tripplan/internal/llm"
	"github.com/ziadkadry99/tripplan/internal/search"
)

// ErrMissingFields is returned when a plan request lacks days or destination.
var ErrMissingFields = errors.New("Please provide the number of travel days and a destination")

// Config tunes the model calls made by the backend.
type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int
	// Timeout bounds each model call.
	Timeout    time.Duration
	MaxResults int
	// Debug adds the full error chain to failed plan responses.
	Debug bool
}

// DefaultConfig mirrors the values the hosted planner has always used.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.7,
		MaxTokens:   2000,
		Timeout:     60 * time.Second,
		MaxResults:  search.DefaultLimit,
	}
}

// Service answers plan and search requests.
type Service struct {
	planner  llm.Provider
	searcher search.Searcher
	cfg      Config
	logger   zerolog.Logger
}

// New creates a Service. searcher may be nil, in which case search requests fail.
func New(planner llm.Provider, searcher search.Searcher, cfg Config, logger zerolog.Logger) *Service {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxResults == 0 {
		cfg.MaxResults = search.DefaultLimit
	}
	return &Service{
		planner:  planner,
		searcher: searcher,
		cfg:      cfg,
		logger:   logger,
	}
}

// GeneratePlan asks the model for an itinerary.
func (s *Service) GeneratePlan(ctx context.Context, req api.PlanRequest) (string, error) {
	days := strings.TrimSpace(req.Days)
	destination := strings.TrimSpace(req.Destination)
	if days == "" || destination == "" {
		return "", ErrMissingFields
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	resp, err := s.planner.Complete(ctx, llm.CompletionRequest{
		Model: s.cfg.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: PlannerSystemPrompt},
			{Role: llm.RoleUser, Content: BuildPlanPrompt(days, destination, req.Budget, req.Preferences)},
		},
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", s.planner.Name(), err)
	}
	return resp.Content, nil
}

// Search runs a web search and summarizes the hits. A failed summary falls
// back to the raw snippets with SummaryError set.
func (s *Service) Search(ctx context.Context, query string) (*api.SearchResponse, error) {
	if s.searcher == nil {
		return nil, errors.New("web search is not configured")
	}

	results, err := s.searcher.Search(ctx, query, s.cfg.MaxResults)
	if err != nil {
		return nil, err
	}

	resp := &api.SearchResponse{Success: true}
	for _, r := range results {
		resp.References = append(resp.References, api.Reference{Title: r.Title, Link: r.URL})
	}
	if len(results) == 0 {
		resp.Summary = "No results found for \"" + query + "\"."
		return resp, nil
	}

	summary, err := s.summarize(ctx, query, results)
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("summary failed, falling back to snippets")
		resp.SummaryError = true
		resp.Summary = snippetSummary(results)
		return resp, nil
	}
	resp.Summary = summary
	return resp, nil
}

func (s *Service) summarize(ctx context.Context, query string, results []search.Result) (string, error) {
	if s.planner == nil {
		return "", errors.New("no model configured")
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	resp, err := s.planner.Complete(ctx, llm.CompletionRequest{
		Model: s.cfg.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: SummarizerSystemPrompt},
			{Role: llm.RoleUser, Content: BuildSummaryPrompt(query, results)},
		},
		Temperature: 0.3,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	summary := strings.TrimSpace(resp.Content)
	if summary == "" {
		return "", errors.New("empty summary")
	}
	return summary, nil
}
