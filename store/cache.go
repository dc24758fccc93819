package store

import (
	"sync/atomic"
	"time"

	"github.com/viccon/sturdyc"
)

// CacheStats is a snapshot of the cumulative second-level cache counters.
// Counters are process-wide and never reset.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

const (
	defaultCacheCapacity = 10000
	defaultCacheShards   = 64
	defaultCacheTTL      = 5 * time.Minute
	evictionPercentage   = 10
)

// entityCache is the shared second-level cache behind all repositories.
// Entries are keyed per table and per id, see repository.go.
type entityCache struct {
	client *sturdyc.Client[any]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newEntityCache(capacity int, ttl time.Duration) *entityCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &entityCache{
		client: sturdyc.New[any](capacity, defaultCacheShards, ttl, evictionPercentage),
	}
}

// getOrFetch serves key from the cache, falling back to fetch on a miss.
// Fetch errors are not cached.
func (c *entityCache) getOrFetch(key string, fetch func() (any, error)) (any, error) {
	if v, ok := c.client.Get(key); ok {
		c.hits.Add(1)
		return v, nil
	}
	c.misses.Add(1)
	v, err := fetch()
	if err != nil {
		return nil, err
	}
	c.client.Set(key, v)
	return v, nil
}

func (c *entityCache) invalidate(key string) {
	c.client.Delete(key)
}

func (c *entityCache) stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
