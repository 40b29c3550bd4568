package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Allows swapping implementations (Redis, in-memory) in tests.
type Cache interface {
	// Get reads data from cache and unmarshals it into dest.
	// Returns found=false on cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores data in cache with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from cache
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection
	Ping(ctx context.Context) error

	// Increment/Expire/TTL support rate-limit counters
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
}
