package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bobibot/bobibot/internal/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestToolsCommand(t *testing.T) {
	out := execute(t, "tools")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "echo"))
	assert.Contains(t, lines[1], "Echoes back the input text")
	assert.True(t, strings.HasPrefix(lines[2], "time"))
}

func TestConfigCommand_RedactsKey(t *testing.T) {
	t.Setenv(config.EnvAPIEndpoint, "http://x")
	t.Setenv(config.EnvAPIKey, "sk-very-secret")

	out := execute(t, "config")
	assert.NotContains(t, out, "very-secret")

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "BobiBot", got.Name)
	assert.Equal(t, "http://x", got.APIEndpoint)
	assert.Equal(t, "sk-v****", got.APIKey)
	assert.Equal(t, uint(2048), got.MaxTokens)
}

func TestOrUnset(t *testing.T) {
	assert.Equal(t, "(not set)", orUnset(""))
	assert.Equal(t, "http://x", orUnset("http://x"))
}
