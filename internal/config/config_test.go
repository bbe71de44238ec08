package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesperlang/vesper/internal/config"
)

func TestLoadAppliesDefaults(t *testing.T) {
	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "[::]:3000", c.ListenAddr)
	assert.Equal(t, "as", c.AssemblerPath)
	assert.Equal(t, 10, c.AssembleTimeoutSeconds)
}

func TestLoadHonorsEnvOverride(t *testing.T) {
	t.Setenv("VESPER_LISTEN_ADDR", "127.0.0.1:4000")
	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4000", c.ListenAddr)
}
