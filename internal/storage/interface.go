package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/astralfront/supremacy/internal/actor"
)

// ErrNotFound is returned when an actor has no value stored under a field
var ErrNotFound = errors.New("field not found")

// Store is the durable key/value backing for actors. Each actor key owns
// an isolated namespace of named fields; the store never interprets
// field contents.
type Store interface {
	// Put stores a value under an actor's field
	Put(ctx context.Context, key actor.Key, field string, value []byte) error

	// Get retrieves an actor's field, or ErrNotFound
	Get(ctx context.Context, key actor.Key, field string) ([]byte, error)

	// Fields retrieves all of an actor's fields
	Fields(ctx context.Context, key actor.Key) (map[string][]byte, error)

	// Delete removes a single field; removing a missing field is not an error
	Delete(ctx context.Context, key actor.Key, field string) error

	// Clear removes the actor's entire namespace
	Clear(ctx context.Context, key actor.Key) error
}

// PutJSON marshals v and stores it under an actor's field
func PutJSON(ctx context.Context, s Store, key actor.Key, field string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, field, data)
}

// GetJSON retrieves an actor's field and unmarshals it into v
func GetJSON(ctx context.Context, s Store, key actor.Key, field string, v any) error {
	data, err := s.Get(ctx, key, field)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
