package cache

import (
	"context"
	"time"
)

// Cache is the read-side cache contract. Implementations must treat a miss
// as (false, nil), not an error, so callers can fall through to the store.
type Cache interface {
	// Get looks up key and unmarshals the cached value into dest.
	// Returns found=false on a miss; dest is untouched in that case.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
