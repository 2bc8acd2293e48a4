package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the server
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Token   TokenConfig
	Logging LoggingConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Host            string        `env:"SUPREMACY_HOST" envDefault:""`
	Port            int           `env:"SUPREMACY_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SUPREMACY_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SUPREMACY_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SUPREMACY_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// StorageConfig selects and configures the storage backend
type StorageConfig struct {
	// Type is "memory" or "redis"
	Type         string `env:"SUPREMACY_STORAGE_TYPE" envDefault:"memory"`
	RedisURL     string `env:"SUPREMACY_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisPool    int    `env:"SUPREMACY_REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdle int    `env:"SUPREMACY_REDIS_MIN_IDLE_CONNS" envDefault:"2"`
}

// TokenConfig holds token issuance configuration
type TokenConfig struct {
	AccessTTL  time.Duration `env:"SUPREMACY_ACCESS_TOKEN_TTL" envDefault:"6h"`
	RefreshTTL time.Duration `env:"SUPREMACY_REFRESH_TOKEN_TTL" envDefault:"336h"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `env:"SUPREMACY_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from environment variables, with a .env
// file in the working directory taking effect if present
func Load() (*Config, error) {
	// Missing .env is fine; environment variables can be set directly
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured level name to a slog level
func (c LoggingConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
