// Package schema contains the core contracts shared across bobibot packages.
// Concrete implementations live in their respective packages.
package schema

import "context"

// Tool is the interface every agent-callable tool must satisfy.
type Tool interface {
	Name() string
	Description() string
	// Execute runs the tool against a plain-text input and returns its text output.
	Execute(ctx context.Context, input string) (string, error)
}
