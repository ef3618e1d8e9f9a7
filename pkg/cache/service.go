package cache

import "time"

// CacheService is the port the catalog engine keeps category product sets
// behind. Values are stored as-is; callers type-assert on the way out.
type CacheService interface {
	Get(key string) (any, bool)

	// Set stores a value with its own TTL. A zero duration uses the
	// implementation default.
	Set(key string, value any, duration time.Duration)

	Delete(key string)
}
