// Package agent implements the bobibot agent and its main loop.
package agent

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bobibot/bobibot/internal/config"
	"github.com/bobibot/bobibot/internal/tools"
)

// Agent owns the configuration and tool registry for one process.
type Agent struct {
	config *config.Config
	tools  *tools.Registry
	logger *zap.Logger
	out    io.Writer
	id     string
}

// Option customises an Agent at construction.
type Option func(*Agent)

// WithOutput redirects the banner and shutdown text (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(a *Agent) { a.out = w }
}

// New creates an Agent. A nil registry is replaced with an empty one.
func New(cfg *config.Config, registry *tools.Registry, logger *zap.Logger, opts ...Option) *Agent {
	if logger == nil {
		logger = zap.NewNop()
	}
	if registry == nil {
		registry = tools.NewRegistry(logger)
	}

	a := &Agent{
		config: cfg,
		tools:  registry,
		out:    os.Stdout,
		id:     uuid.NewString(),
	}
	a.logger = logger.With(zap.String("agent_id", a.id))

	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Agent) Config() *config.Config { return a.config }
func (a *Agent) Tools() *tools.Registry { return a.tools }
func (a *Agent) ID() string             { return a.id }

// Run is the agent main loop. It announces readiness and blocks until ctx is
// cancelled, which is the only way out and is not treated as an error.
func (a *Agent) Run(ctx context.Context) error {
	a.logger.Info("Agent initialized",
		zap.String("name", a.config.Name),
		zap.String("model", a.config.Model),
		zap.Strings("tools", a.tools.List()),
	)

	// TODO: read user input, send it to the LLM, dispatch tool calls and reply.
	if _, err := fmt.Fprintf(a.out, "%s Agent is ready! (Press Ctrl+C to exit)\n", a.config.Name); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}

	<-ctx.Done()

	if _, err := fmt.Fprintln(a.out, "\nShutting down..."); err != nil {
		return fmt.Errorf("write shutdown message: %w", err)
	}
	a.logger.Debug("Agent loop exited", zap.NamedError("cause", context.Cause(ctx)))

	return nil
}
