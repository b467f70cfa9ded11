package providers

import (
	"context"
	"time"
)

// CacheProvider stores rendered responses that are identical for every caller
// (form options, schema). Premium estimates never go through it.
type CacheProvider interface {
	// Get returns the cached value and whether the key was present
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error
}
