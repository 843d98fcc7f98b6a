package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/tripplan/internal/config"
)

var (
	cfgFile    string
	verbose    bool
	backendURL string
)

var rootCmd = &cobra.Command{
	Use:   "tripplan",
	Short: "AI travel planner with web search",
	Long: `tripplan generates day-by-day travel plans and searches the web for
travel questions. It can run in the terminal, serve the planner form in a
browser, or expose both as MCP tools for AI agents.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadDotEnv()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "backend base URL (overrides backend_url)")
}
