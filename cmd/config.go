package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bobibot/bobibot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration (API key redacted)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		return writeYAML(cmd.OutOrStdout(), cfg.Redacted())
	},
}
