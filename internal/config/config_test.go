package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Equal(t, 6*time.Hour, cfg.Token.AccessTTL)
	assert.Equal(t, 14*24*time.Hour, cfg.Token.RefreshTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SUPREMACY_PORT", "9090")
	t.Setenv("SUPREMACY_STORAGE_TYPE", "redis")
	t.Setenv("SUPREMACY_REDIS_URL", "redis://example:6379/1")
	t.Setenv("SUPREMACY_ACCESS_TOKEN_TTL", "1h")
	t.Setenv("SUPREMACY_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Storage.Type)
	assert.Equal(t, "redis://example:6379/1", cfg.Storage.RedisURL)
	assert.Equal(t, time.Hour, cfg.Token.AccessTTL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LoggingConfig{Level: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LoggingConfig{Level: "info"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LoggingConfig{Level: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LoggingConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LoggingConfig{Level: "bogus"}.SlogLevel())
}
