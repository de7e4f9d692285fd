// Package dependency wires core bobibot services using go.uber.org/dig.
package dependency

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/bobibot/bobibot/internal/agent"
	"github.com/bobibot/bobibot/internal/config"
	"github.com/bobibot/bobibot/internal/tools"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	config *config.Config
	tools  *tools.Registry
	agent  *agent.Agent
}

func (c *Container) Config() *config.Config { return c.config }
func (c *Container) Tools() *tools.Registry { return c.tools }
func (c *Container) Agent() *agent.Agent    { return c.agent }

// AgentRegistry wraps the tool registry handed to the main agent.
type AgentRegistry struct{ *tools.Registry }

// New builds and wires all core services from cfg.
func New(cfg *config.Config, logger *zap.Logger, opts ...agent.Option) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func() *zap.Logger { return logger }); err != nil {
		return nil, err
	}
	if err := d.Provide(newAgentRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(func(c *config.Config, reg AgentRegistry, l *zap.Logger) *agent.Agent {
		return agent.New(c, reg.Registry, l, opts...)
	}); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(c *config.Config, reg AgentRegistry, a *agent.Agent) {
		result = &Container{
			config: c,
			tools:  reg.Registry,
			agent:  a,
		}
	})
	return result, err
}

func newAgentRegistry(logger *zap.Logger) AgentRegistry {
	registry := tools.NewRegistryBuilder(logger).
		WithTool(tools.NewEchoTool()).
		WithTool(tools.NewTimeTool()).
		Build()

	return AgentRegistry{registry}
}
