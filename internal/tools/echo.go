package tools

import "context"

// EchoTool returns its input unchanged. Useful for exercising the registry.
type EchoTool struct{}

func NewEchoTool() *EchoTool { return &EchoTool{} }

func (*EchoTool) Name() string        { return string(ToolEcho) }
func (*EchoTool) Description() string { return "Echoes back the input text" }

func (*EchoTool) Execute(_ context.Context, input string) (string, error) {
	return input, nil
}
