package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/tripplan/internal/terminal"
	"github.com/ziadkadry99/tripplan/internal/ui"
)

var (
	planDays        string
	planDestination string
	planBudget      string
	planPreferences string
	planHTML        bool
	planCopy        bool
	planNoInput     bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a travel plan",
	Long: `Sends the plan form to the backend and prints the rendered plan.
Fields not given as flags are asked for interactively unless --no-input is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		values := terminal.Values{
			Days:        planDays,
			Destination: planDestination,
			Budget:      planBudget,
			Preferences: planPreferences,
		}
		if !planNoInput {
			values, err = terminal.PromptPlanFields(values)
			if err != nil {
				return err
			}
		}

		page := terminal.NewPage(os.Stdout, os.Stderr, values, terminal.WithHTMLOutput(planHTML))
		ctrl, err := newController(cfg, page.Elements(), logger,
			ui.WithAlerter(page),
			ui.WithClipboard(terminal.SystemClipboard{}),
		)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		ctrl.Submit(ctx)
		if page.Error.Visible() {
			return errors.New("no plan generated")
		}

		if planCopy {
			ctrl.CopyClick(ctx)
			if page.Copy.Label() == ui.CopiedLabel {
				fmt.Fprintln(os.Stderr, "✓ Plan copied to clipboard")
			}
		}
		return nil
	},
}

func init() {
	planCmd.Flags().StringVar(&planDays, "days", "", "number of travel days")
	planCmd.Flags().StringVar(&planDestination, "destination", "", "destination")
	planCmd.Flags().StringVar(&planBudget, "budget", "", "budget (optional)")
	planCmd.Flags().StringVar(&planPreferences, "preferences", "", "interests (optional)")
	planCmd.Flags().BoolVar(&planHTML, "html", false, "print the rendered HTML instead of terminal text")
	planCmd.Flags().BoolVar(&planCopy, "copy", false, "copy the plan text to the clipboard")
	planCmd.Flags().BoolVar(&planNoInput, "no-input", false, "never prompt for missing fields")
	rootCmd.AddCommand(planCmd)
}
