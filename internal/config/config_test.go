package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-ads-mcp/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "https://graph.facebook.com/v22.0", cfg.Graph.VersionedURL())
	assert.False(t, cfg.Graph.VerifyToken)
	assert.Equal(t, configs.TransportStdio, cfg.MCP.NormalizedTransport())
	assert.False(t, cfg.Psql.Enabled)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GRAPH_BASE_URL", "http://localhost:9999/")
	t.Setenv("GRAPH_VERSION", "v21.0")
	t.Setenv("MCP_TRANSPORT", "HTTP")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/v21.0", cfg.Graph.VersionedURL())
	assert.Equal(t, configs.TransportHTTP, cfg.MCP.NormalizedTransport())
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Psql.Enabled)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
