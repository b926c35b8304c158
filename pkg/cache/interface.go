package cache

// KeyValueCache is a key/value store style interface for a cache of a single
// type, where each key indexes the most recently stored value for that key.
// Implementations must be safe for concurrent use.
type KeyValueCache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
	Clear()
}
