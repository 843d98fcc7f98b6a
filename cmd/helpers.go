package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/tripplan/internal/client"
	"github.com/ziadkadry99/tripplan/internal/config"
	"github.com/ziadkadry99/tripplan/internal/llm"
	"github.com/ziadkadry99/tripplan/internal/logging"
	"github.com/ziadkadry99/tripplan/internal/render"
	"github.com/ziadkadry99/tripplan/internal/search"
	"github.com/ziadkadry99/tripplan/internal/ui"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `tripplan init` to create a config file", err)
	}
	if backendURL != "" {
		cfg.BackendURL = backendURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger returns the stderr logger; debug lines need --verbose or debug: true.
func newLogger(cfg *config.Config) zerolog.Logger {
	return logging.New(os.Stderr, verbose || cfg.Debug)
}

// createLLMProvider creates the rate-limited LLM provider described by cfg.
func createLLMProvider(cfg *config.Config) (llm.Provider, error) {
	baseURL := cfg.LLM.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL(cfg.LLM.Provider)
	}
	model := cfg.LLM.Model
	if model == "" {
		model = config.DefaultModel(cfg.LLM.Provider)
	}
	p, err := llm.NewProvider(string(cfg.LLM.Provider), model, baseURL)
	if err != nil {
		return nil, err
	}
	return llm.NewRateLimitedProvider(p, cfg.LLM.RPM), nil
}

// createSearcher creates the web searcher described by cfg.
func createSearcher(cfg *config.Config) (search.Searcher, error) {
	return search.NewSearcher(string(cfg.Search.Provider))
}

// newController binds a controller for els to the configured backend.
func newController(cfg *config.Config, els ui.Elements, logger zerolog.Logger, opts ...ui.Option) (*ui.Controller, error) {
	renderer, err := render.NewRenderer(cfg.Renderer)
	if err != nil {
		return nil, err
	}
	opts = append([]ui.Option{
		ui.WithRenderer(renderer),
		ui.WithLogger(logger),
		ui.WithPlanTimeout(cfg.PlanTimeout),
	}, opts...)
	return ui.New(els, client.New(cfg.BackendURL), opts...), nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
