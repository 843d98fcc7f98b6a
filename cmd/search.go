package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/tripplan/internal/terminal"
	"github.com/ziadkadry99/tripplan/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the web and summarize the results",
	Long: `Runs a single search when a query is given. Without one, reads queries
interactively until "quit" or Ctrl-D.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		page := terminal.NewPage(os.Stdout, os.Stderr, terminal.Values{})
		ctrl, err := newController(cfg, page.Elements(), logger, ui.WithAlerter(page))
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		if len(args) > 0 {
			page.SearchInput.SetValue(strings.Join(args, " "))
			ctrl.SearchClick(ctx)
			return nil
		}

		for ctx.Err() == nil {
			query, err := terminal.PromptQuery()
			if errors.Is(err, terminal.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			page.SearchInput.SetValue(query)
			ctrl.SearchKeyPress(ctx, "Enter")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
