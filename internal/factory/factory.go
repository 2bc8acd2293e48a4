package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/astralfront/supremacy/internal/actor"
	"github.com/astralfront/supremacy/internal/dependencies/clock"
	"github.com/astralfront/supremacy/internal/dependencies/random"
	"github.com/astralfront/supremacy/internal/services/credential"
	"github.com/astralfront/supremacy/internal/services/galaxy"
	"github.com/astralfront/supremacy/internal/services/identity"
	"github.com/astralfront/supremacy/internal/services/matchmaker"
	"github.com/astralfront/supremacy/internal/storage"
	"github.com/astralfront/supremacy/internal/storage/memory"
	redisstorage "github.com/astralfront/supremacy/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.Store

	// Actor runtime
	Runtime *actor.Runtime

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	IdentityService   *identity.Service
	CredentialService *credential.Service
	GalaxyService     *galaxy.Service
	MatchmakerService *matchmaker.Service
}

// Config holds configuration for the application factory
type Config struct {
	// CredentialConfig holds token and hashing settings (optional)
	// If zero value, defaults to credential.DefaultConfig()
	CredentialConfig credential.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default credential config if not provided
	credCfg := cfg.CredentialConfig
	if credCfg.AccessTTL == 0 {
		credCfg = credential.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, credCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, clk clock.Clock, rnd random.Random, credCfg credential.Config, logger *slog.Logger) *App {
	runtime := actor.NewRuntime()

	// Create services
	identityService := identity.New(runtime, store, clk, rnd, logger)
	credentialService := credential.New(runtime, store, identityService, clk, rnd, credCfg, logger)
	galaxyService := galaxy.New(runtime, store, clk, rnd, logger)
	matchmakerService := matchmaker.New(galaxyService, identityService, rnd, logger)

	return &App{
		Store:             store,
		Runtime:           runtime,
		Clock:             clk,
		Random:            rnd,
		IdentityService:   identityService,
		CredentialService: credentialService,
		GalaxyService:     galaxyService,
		MatchmakerService: matchmakerService,
	}
}
