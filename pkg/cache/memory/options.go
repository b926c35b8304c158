package memory

import (
	"time"

	"github.com/althea-net/deep-space/pkg/cache"
)

// EvictionPolicy determines which entry is removed when the number of keys
// exceeds the configured maximum.
type EvictionPolicy int64

const (
	FirstInFirstOut = EvictionPolicy(iota)
	LeastRecentlyUsed
	LeastFrequentlyUsed
)

// keyValueCacheConfig is the configuration for key/value caches. It is
// intended to be configured via KeyValueCacheOptionFn functions.
type keyValueCacheConfig struct {
	// maxKeys is the maximum number of key/value pairs the cache can hold
	// before it starts evicting; 0 means unbounded.
	maxKeys        int64
	evictionPolicy EvictionPolicy
	// ttl is how long entries remain valid. Entries older than the ttl MAY
	// not be evicted but MUST NOT be returned as cache hits; 0 disables
	// expiry.
	ttl time.Duration
}

// DefaultKeyValueCacheConfig is an unbounded cache without expiry.
var DefaultKeyValueCacheConfig = keyValueCacheConfig{
	maxKeys:        0,
	evictionPolicy: FirstInFirstOut,
	ttl:            0,
}

// KeyValueCacheOptionFn defines a function which configures a keyValueCacheConfig.
type KeyValueCacheOptionFn func(*keyValueCacheConfig) error

// Validate ensures the configuration is self-consistent.
func (cfg *keyValueCacheConfig) Validate() error {
	if cfg.maxKeys < 0 {
		return cache.ErrKeyValueCacheConfigValidation.Wrapf("maxKeys must not be negative (got %d)", cfg.maxKeys)
	}
	switch cfg.evictionPolicy {
	case FirstInFirstOut:
	default:
		return cache.ErrKeyValueCacheConfigValidation.Wrapf("eviction policy %d not implemented", cfg.evictionPolicy)
	}
	if cfg.ttl < 0 {
		return cache.ErrKeyValueCacheConfigValidation.Wrapf("ttl must not be negative (got %s)", cfg.ttl)
	}
	return nil
}

// WithMaxKeys sets the maximum number of distinct key/value pairs the cache
// will hold before evicting according to the configured eviction policy.
func WithMaxKeys(maxKeys int64) KeyValueCacheOptionFn {
	return func(cfg *keyValueCacheConfig) error {
		cfg.maxKeys = maxKeys
		return nil
	}
}

// WithEvictionPolicy sets the eviction policy.
func WithEvictionPolicy(policy EvictionPolicy) KeyValueCacheOptionFn {
	return func(cfg *keyValueCacheConfig) error {
		cfg.evictionPolicy = policy
		return nil
	}
}

// WithTTL sets the time-to-live for cache entries.
func WithTTL(ttl time.Duration) KeyValueCacheOptionFn {
	return func(cfg *keyValueCacheConfig) error {
		cfg.ttl = ttl
		return nil
	}
}
