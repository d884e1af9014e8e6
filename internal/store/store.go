package store

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is a persistent string-keyed blob store. Values are opaque to the
// store; repositories own the serialization. Implementations: Redis,
// Postgres, and an in-memory map for tests and demo runs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
