// Package cmd implements the bobibot CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bobibot/bobibot/internal/logging"
)

const version = "0.1.0"

var logLevel string

// rootCmd is the base command. Without a subcommand it runs the agent.
var rootCmd = &cobra.Command{
	Use:           "bobibot",
	Short:         "BobiBot personal assistant agent",
	Long:          "BobiBot is a personal assistant agent that helps with daily tasks.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAgent,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "Log level: debug|info|warn|error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(configCmd)
}
