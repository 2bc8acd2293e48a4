package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/astralfront/supremacy/internal/actor"
	"github.com/astralfront/supremacy/internal/storage"
)

// Storage is a Redis-backed implementation of the store interface.
// Each actor's namespace maps to one Redis hash, so clearing an actor
// is a single DEL and fields stay colocated on one key.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) Put(ctx context.Context, key actor.Key, field string, value []byte) error {
	return s.client.HSet(ctx, actorKey(key), field, value).Err()
}

func (s *Storage) Get(ctx context.Context, key actor.Key, field string) ([]byte, error) {
	data, err := s.client.HGet(ctx, actorKey(key), field).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Storage) Fields(ctx context.Context, key actor.Key) (map[string][]byte, error) {
	values, err := s.client.HGetAll(ctx, actorKey(key)).Result()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]byte, len(values))
	for field, value := range values {
		result[field] = []byte(value)
	}
	return result, nil
}

func (s *Storage) Delete(ctx context.Context, key actor.Key, field string) error {
	return s.client.HDel(ctx, actorKey(key), field).Err()
}

func (s *Storage) Clear(ctx context.Context, key actor.Key) error {
	return s.client.Del(ctx, actorKey(key)).Err()
}
