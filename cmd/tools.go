package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bobibot/bobibot/internal/config"
	"github.com/bobibot/bobibot/internal/dependency"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools registered with the agent",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		container, err := dependency.New(cfg, zap.NewNop())
		if err != nil {
			return fmt.Errorf("wire services: %w", err)
		}

		return writeTools(cmd.OutOrStdout(), container.Tools().Tools())
	},
}
