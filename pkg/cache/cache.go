// Package cache defines the cache contract used by read-mostly features.
// Implementations marshal values to JSON; a miss leaves dest untouched.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get reports whether the key was present. On a hit the cached value is
	// unmarshaled into dest.
	Get(ctx context.Context, key string, dest any) (bool, error)

	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob-style pattern. Used for
	// tag-based revalidation.
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}
