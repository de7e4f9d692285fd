package tools

import (
	"go.uber.org/zap"

	"github.com/bobibot/bobibot/internal/schema"
)

// RegistryBuilder accumulates tools during the construction phase.
// Call Build() to produce a Registry with the tools registered in order.
type RegistryBuilder struct {
	tools  []schema.Tool
	logger *zap.Logger
}

// NewRegistryBuilder returns a fresh RegistryBuilder.
func NewRegistryBuilder(logger *zap.Logger) *RegistryBuilder {
	return &RegistryBuilder{logger: logger}
}

// WithTool adds a tool and returns the builder, enabling chaining.
func (b *RegistryBuilder) WithTool(tool schema.Tool) *RegistryBuilder {
	b.tools = append(b.tools, tool)

	return b
}

// Build registers the accumulated tools on a new Registry.
func (b *RegistryBuilder) Build() *Registry {
	r := NewRegistry(b.logger)
	for _, t := range b.tools {
		r.Register(t)
	}
	return r
}
