package memory

import (
	"sync"
	"time"

	"github.com/althea-net/deep-space/pkg/cache"
)

var _ cache.KeyValueCache[any] = (*keyValueCache[any])(nil)

// keyValueCache provides a concurrency-safe in-memory key/value cache
// implementation with optional TTL expiry and bounded size.
type keyValueCache[T any] struct {
	config keyValueCacheConfig

	// valuesMu protects values from concurrent access.
	valuesMu sync.RWMutex
	values   map[string]cacheValue[T]
}

// cacheValue wraps cached values with the time they were stored for later
// comparison against the configured TTL.
type cacheValue[T any] struct {
	value    T
	cachedAt time.Time
}

// NewKeyValueCache creates a new keyValueCache with the configuration
// generated by the given option functions.
func NewKeyValueCache[T any](opts ...KeyValueCacheOptionFn) (*keyValueCache[T], error) {
	config := DefaultKeyValueCacheConfig

	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &keyValueCache[T]{
		config: config,
		values: make(map[string]cacheValue[T]),
	}, nil
}

// Get retrieves the value stored for the given key. Entries older than the
// configured TTL are reported as misses but not pruned here; the next Set
// overwrites them and the maxKeys bound eventually evicts them.
func (c *keyValueCache[T]) Get(key string) (T, bool) {
	var zero T

	c.valuesMu.RLock()
	defer c.valuesMu.RUnlock()

	cached, exists := c.values[key]
	if !exists {
		return zero, false
	}
	if c.config.ttl > 0 && time.Since(cached.cachedAt) > c.config.ttl {
		return zero, false
	}
	return cached.value, true
}

// Set stores the value for the given key, evicting the oldest entry if the
// configured maximum number of keys is exceeded.
func (c *keyValueCache[T]) Set(key string, value T) {
	c.valuesMu.Lock()
	defer c.valuesMu.Unlock()

	c.values[key] = cacheValue[T]{
		value:    value,
		cachedAt: time.Now(),
	}
	c.evict()
}

// Delete removes the value stored for the given key.
func (c *keyValueCache[T]) Delete(key string) {
	c.valuesMu.Lock()
	defer c.valuesMu.Unlock()

	delete(c.values, key)
}

// Clear removes all values from the cache.
func (c *keyValueCache[T]) Clear() {
	c.valuesMu.Lock()
	defer c.valuesMu.Unlock()

	c.values = make(map[string]cacheValue[T])
}

// evict removes one entry according to the configured eviction policy once
// the cache has grown beyond maxKeys. The caller must hold valuesMu.
func (c *keyValueCache[T]) evict() {
	if c.config.maxKeys <= 0 || int64(len(c.values)) <= c.config.maxKeys {
		return
	}

	// Validate only admits FirstInFirstOut for now.
	var (
		oldestKey  string
		oldestTime time.Time
		first      = true
	)
	for key, value := range c.values {
		if first || value.cachedAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = value.cachedAt
			first = false
		}
	}
	delete(c.values, oldestKey)
}
