package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bobibot/bobibot/internal/config"
	"github.com/bobibot/bobibot/internal/dependency"
	"github.com/bobibot/bobibot/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the agent and wait for Ctrl+C",
	RunE:  runAgent,
}

func runAgent(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting BobiBot Agent...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	container, err := dependency.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printBanner(cfg)

	if err := container.Agent().Run(ctx); err != nil {
		logger.Error("Agent failed", zap.Error(err))
		return err
	}

	logger.Info("BobiBot Agent stopped.")
	return nil
}
