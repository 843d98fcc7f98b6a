package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/tripplan/internal/client"
	mcpserver "github.com/ziadkadry99/tripplan/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio exposing generate_travel_plan and web_search, backed by the configured backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "tripplan MCP server started on stdio (backend=%s)\n", cfg.BackendURL)

		srv := mcpserver.NewServer(client.New(cfg.BackendURL), cfg.PlanTimeout)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
