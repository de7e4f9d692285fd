package dependency

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bobibot/bobibot/internal/agent"
	"github.com/bobibot/bobibot/internal/config"
)

func TestNew_WiresAgent(t *testing.T) {
	cfg := config.DefaultConfig()
	var out bytes.Buffer

	c, err := New(&cfg, zap.NewNop(), agent.WithOutput(&out))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Same(t, &cfg, c.Config())
	assert.Equal(t, []string{"echo", "time"}, c.Tools().List())
	assert.Same(t, c.Tools(), c.Agent().Tools())
	assert.Same(t, c.Config(), c.Agent().Config())
}
