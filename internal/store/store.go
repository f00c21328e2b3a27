package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store is a durable key-value store holding opaque serialized records.
// Callers encode and decode their own values.
type Store interface {
	// Get returns ErrNotFound when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// RemoveMany deletes all keys in one call. Absent keys are ignored.
	RemoveMany(ctx context.Context, keys ...string) error
}

// HealthChecker is implemented by backends that hold a connection which can
// go away.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
