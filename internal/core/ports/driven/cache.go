package driven

import (
	"context"
	"time"
)

// Cache is a shared key-value cache for small, expiring payloads.
// Writes are best-effort from the pipeline's point of view: a cache failure
// never fails an ingest.
type Cache interface {
	// Set stores a JSON-serializable value with a TTL
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Get loads a value into dest; domain.ErrNotFound when the key is absent
	Get(ctx context.Context, key string, dest any) error

	// Ping verifies the cache is reachable
	Ping(ctx context.Context) error

	// Close releases the underlying connection
	Close() error
}
