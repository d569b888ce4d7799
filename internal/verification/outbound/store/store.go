// Package store provides the key-value persistence used by verification.
package store

import (
	"context"
	"io"
	"time"
)

// Store is the key-value contract verification state lives behind.
//
// Missing keys surface as goerror.ErrNotFound. Implementations that cannot
// reach their backend return goerror.ErrUnavailable on reads.
type Store interface {
	io.Closer

	// Set writes a value, replacing any previous one. A non-positive ttl
	// means the key does not expire.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// SetNX writes a value only when the key does not exist yet. It reports
	// whether the write happened.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	// Get reads a value.
	Get(ctx context.Context, key string) (string, error)

	// Incr atomically increments an integer value, creating it at 1.
	Incr(ctx context.Context, key string) (int64, error)

	// Expire sets the remaining lifetime of an existing key.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// TTL reports the remaining lifetime of a key. Non-positive results mean
	// the key is missing or has no expiry.
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Del removes keys. Deleting a missing key is not an error.
	Del(ctx context.Context, keys ...string) error
}
