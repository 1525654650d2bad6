// Package cache stores computed windowgram results keyed by content hash.
//
// Split plans and classifications are pure functions of the windowgram text
// and compile options, so they can be cached indefinitely and shared between
// processes. Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per key below a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (server deployments)
//   - [NullCache]: caching disabled
//
// Keys are built by a [Keyer] so that callers never construct raw key strings.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiration.
type Cache interface {
	// Get returns the value for key. A missing or expired key reports
	// hit == false with a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop all of their entries.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Default time-to-live values per entry kind.
const (
	TTLPlan     = 30 * 24 * time.Hour
	TTLClassify = 30 * 24 * time.Hour
)
