package tools

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bobibot/bobibot/internal/schema"
)

// ToolName is the canonical name of a built-in tool.
type ToolName string

const (
	ToolEcho ToolName = "echo"
	ToolTime ToolName = "time"
)

// ErrToolNotFound is returned by Execute when no tool has the requested name.
var ErrToolNotFound = errors.New("tool not found")

// Registry holds tools in registration order. Names are not required to be
// unique; lookups return the first match.
type Registry struct {
	tools  []schema.Tool
	logger *zap.Logger
}

// NewRegistry returns an empty Registry. A nil logger disables logging.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger}
}

// Register appends tool to the registry.
func (r *Registry) Register(tool schema.Tool) {
	if _, dup := r.Get(tool.Name()); dup {
		r.logger.Warn("Duplicate tool name, earlier registration shadows it", zap.String("tool", tool.Name()))
	}
	r.logger.Info("Registered tool", zap.String("tool", tool.Name()))
	r.tools = append(r.tools, tool)
}

// Get returns the first tool registered under name.
func (r *Registry) Get(name string) (schema.Tool, bool) {
	for _, t := range r.tools {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// List returns the registered tool names in registration order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.tools))
	for _, t := range r.tools {
		names = append(names, t.Name())
	}
	return names
}

// Tools returns a copy of the registered tools in registration order.
func (r *Registry) Tools() []schema.Tool {
	out := make([]schema.Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

func (r *Registry) Len() int { return len(r.tools) }

// Execute runs the named tool with input.
func (r *Registry) Execute(ctx context.Context, name, input string) (string, error) {
	tool, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	out, err := tool.Execute(ctx, input)
	if err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return out, nil
}
