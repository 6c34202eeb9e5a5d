package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "LOG_LEVEL", "MANOR_MCP_ADDR", "MANOR_MCP_PATH", "MANOR_MCP_TOKEN", "MANOR_WRAP_WIDTH"} {
		t.Setenv(key, "")
	}
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:8765", cfg.MCPAddr)
	assert.Equal(t, "/mcp", cfg.MCPPath)
	assert.Empty(t, cfg.MCPToken)
	assert.Equal(t, defaultWrapWidth, cfg.WrapWidth)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MANOR_MCP_ADDR", ":9000")
	t.Setenv("MANOR_MCP_TOKEN", "s3cret")
	t.Setenv("MANOR_WRAP_WIDTH", "0")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, ":9000", cfg.MCPAddr)
	assert.Equal(t, "s3cret", cfg.MCPToken)
	assert.Equal(t, 0, cfg.WrapWidth)
}

func TestLoadConfig_BadWrapWidth(t *testing.T) {
	for _, v := range []string{"wide", "-3"} {
		t.Setenv("MANOR_WRAP_WIDTH", v)
		_, err := loadConfig()
		assert.Error(t, err, v)
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("chatty"))
}

func TestSetupLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logger := setupLogger(&Config{Environment: "production", LogLevel: slog.LevelInfo}, &buf)
	logger.Debug("hidden")
	logger.Info("moved", "to", "Library")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"to":"Library"`)

	buf.Reset()
	logger = setupLogger(&Config{LogLevel: slog.LevelDebug}, &buf)
	logger.Debug("command", "verb", "look")
	assert.Contains(t, buf.String(), "verb=look")
}

func TestStringSlice(t *testing.T) {
	var s stringSlice
	require.NoError(t, s.Set("http://localhost"))
	require.NoError(t, s.Set("  "))
	require.NoError(t, s.Set("http://127.0.0.1"))
	assert.Equal(t, "http://localhost,http://127.0.0.1", s.String())
}
