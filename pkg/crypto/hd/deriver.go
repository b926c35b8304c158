package hd

import (
	"github.com/althea-net/deep-space/pkg/cache"
)

// Deriver derives keys below a fixed root, optionally caching every
// intermediate key by its canonical path so that deriving many keys under a
// shared prefix (e.g. consecutive account indices) repeats no work.
//
// The cache is scoped to the Deriver instance; keys derived from different
// roots must never share a cache.
type Deriver struct {
	root      *ExtendedKey
	pathCache cache.KeyValueCache[*ExtendedKey]
}

// DeriverOption configures a Deriver during construction.
type DeriverOption func(*Deriver)

// WithPathCache caches derived keys, including intermediate path components,
// in the given cache.
func WithPathCache(pathCache cache.KeyValueCache[*ExtendedKey]) DeriverOption {
	return func(d *Deriver) {
		d.pathCache = pathCache
	}
}

// NewDeriver returns a Deriver rooted at the given extended key.
func NewDeriver(root *ExtendedKey, opts ...DeriverOption) *Deriver {
	deriver := &Deriver{root: root}
	for _, opt := range opts {
		opt(deriver)
	}
	return deriver
}

// Derive resolves the given path below the Deriver's root. With a path cache
// configured, each prefix of the path is looked up before deriving and every
// newly derived key is stored, so equivalent spellings of a path ("m/0h" and
// "m/0'") share cache entries via their canonical form.
func (d *Deriver) Derive(path string) (*ExtendedKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	if d.pathCache == nil {
		key := d.root
		for _, index := range indices {
			if key, err = key.Child(index); err != nil {
				return nil, err
			}
		}
		return key, nil
	}

	key := d.root
	for i := range indices {
		prefix := FormatPath(indices[:i+1])
		if cached, found := d.pathCache.Get(prefix); found {
			key = cached
			continue
		}
		if key, err = key.Child(indices[i]); err != nil {
			return nil, err
		}
		d.pathCache.Set(prefix, key)
	}
	return key, nil
}
