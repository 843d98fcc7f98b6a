package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/tripplan/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tripplan configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the planner backend, model and web search, and writes a .tripplan.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
