// Package store provides the key-value persistence contract the drift
// core writes through, with an embedded sqlite backend for durability
// and an in-memory backend for tests.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("store: key not found")

// Store is a minimal byte-oriented key-value store. Values round-trip
// exactly as written. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
