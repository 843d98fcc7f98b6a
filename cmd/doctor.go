package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/tripplan/internal/client"
	"github.com/ziadkadry99/tripplan/internal/config"
	"github.com/ziadkadry99/tripplan/internal/llm"
)

// probePrompt asks for a fixed reply so a working key is easy to spot.
const probePrompt = "Reply with 'API test succeeded'"

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the LLM API key and the backend connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		failed := 0
		report := func(name string, err error, detail string) {
			if err != nil {
				failed++
				fmt.Printf("[FAIL] %s: %v\n", name, err)
				return
			}
			fmt.Printf("[OK]   %s%s\n", name, detail)
		}

		reply, err := probeLLM(ctx, cfg)
		report(fmt.Sprintf("LLM (%s, %s)", cfg.LLM.Provider, config.APIKeyEnvVar(cfg.LLM.Provider)), err, ": "+reply)

		pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
		err = client.New(cfg.BackendURL).Ping(pingCtx)
		pingCancel()
		report("backend "+cfg.BackendURL, err, "")

		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

// probeLLM sends a one-line completion through the configured provider.
func probeLLM(ctx context.Context, cfg *config.Config) (string, error) {
	provider, err := createLLMProvider(cfg)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := provider.Complete(ctx, llm.CompletionRequest{
		Model:     cfg.LLM.Model,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: probePrompt}},
		MaxTokens: 50,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
