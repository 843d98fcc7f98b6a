package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/tripplan/internal/backend"
	"github.com/ziadkadry99/tripplan/internal/client"
	"github.com/ziadkadry99/tripplan/internal/render"
	"github.com/ziadkadry99/tripplan/internal/server"
	"github.com/ziadkadry99/tripplan/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planner form and the plan/search API",
	Long: `Starts an HTTP server with the travel-planner form at / and, unless
server.backend is false, the /api/generate-plan and /api/search endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		renderer, err := render.NewRenderer(cfg.Renderer)
		if err != nil {
			return err
		}

		var features []server.RouteRegistrar
		formBackend := cfg.BackendURL
		if cfg.Server.Backend {
			provider, err := createLLMProvider(cfg)
			if err != nil {
				return fmt.Errorf("creating LLM provider: %w", err)
			}
			searcher, err := createSearcher(cfg)
			if err != nil {
				logger.Warn().Err(err).Msg("web search disabled")
			}
			features = append(features, backend.New(provider, searcher, backend.Config{
				Model:       cfg.LLM.Model,
				Temperature: cfg.LLM.Temperature,
				MaxTokens:   cfg.LLM.MaxTokens,
				Timeout:     cfg.LLM.Timeout,
				MaxResults:  cfg.Search.MaxResults,
				Debug:       cfg.Debug,
			}, logger))
			formBackend = fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
		}

		features = append(features, web.New(client.New(formBackend), web.Config{
			PlanTimeout: cfg.PlanTimeout,
			Renderer:    renderer,
			Debug:       cfg.Debug,
		}, logger))

		srv := server.New(server.Config{
			Port:        cfg.Server.Port,
			AllowAll:    cfg.Server.AllowAllOrigins,
			PlanTimeout: cfg.PlanTimeout,
		}, logger, features...)

		ctx, cancel := signalContext()
		defer cancel()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		logger.Info().Msg("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
