package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	WrapWidth   int

	MCPAddr  string
	MCPPath  string
	MCPToken string
}

// loadConfig reads the environment, after folding in a .env file when one
// exists.
func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		MCPAddr:     getEnv("MANOR_MCP_ADDR", "127.0.0.1:8765"),
		MCPPath:     getEnv("MANOR_MCP_PATH", "/mcp"),
		MCPToken:    getEnv("MANOR_MCP_TOKEN", ""),
	}

	width, err := strconv.Atoi(getEnv("MANOR_WRAP_WIDTH", strconv.Itoa(defaultWrapWidth)))
	if err != nil || width < 0 {
		return nil, fmt.Errorf("invalid MANOR_WRAP_WIDTH value %q", os.Getenv("MANOR_WRAP_WIDTH"))
	}
	cfg.WrapWidth = width

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
