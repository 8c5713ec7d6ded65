// Package kv defines the opaque string key-value store the tracker
// persists into, in the spirit of the browser localStorage it replaces.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested key doesn't exist.
var ErrNotFound = errors.New("key not found")

// Store is an opaque get/set string store. Implementations are expected to
// be synchronous and local; the tracker treats Set as always durable.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
