package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("key not found")

// Store defines the narrow persistence port the domain repositories build on.
// This is a port that can be implemented by different providers (Redis, a real
// backend, an in-memory map for tests) without touching domain logic.
type Store interface {
	// Get retrieves a value from the store by key.
	// Returns ErrNotFound (wrapped) when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under the specified key with the given TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the store by key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the store is reachable.
	Ping(ctx context.Context) error

	// Close closes the store connection.
	Close() error
}
