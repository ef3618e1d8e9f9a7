package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"carezone-storefront/pkg/cache"
)

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache returns a go-cache backed CacheService. defaultExpiration
// applies when Set is called with a zero duration; cleanupInterval is how
// often expired entries are swept.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) cache.CacheService {
	return &memoryCache{store: gocache.New(defaultExpiration, cleanupInterval)}
}

func (c *memoryCache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

func (c *memoryCache) Set(key string, value any, duration time.Duration) {
	c.store.Set(key, value, duration)
}

func (c *memoryCache) Delete(key string) {
	c.store.Delete(key)
}
