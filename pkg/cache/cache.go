package cache

import "context"

// Cache is a read-through cache keyed by request parameters. Entries expire
// by TTL only; writes never invalidate.
type Cache interface {
	// Get unmarshals the cached value into dest and reports whether the key
	// was present and fresh.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}
