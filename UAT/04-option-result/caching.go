// Package caching demonstrates doubles for lookup-style and fallible
// methods: two-value returns are packed into Option and Result mocks, and
// the free Return helpers stub them without spelling the wrapper types.
package caching

//go:generate go run ../../doublegen/main.go Cache

// Cache is a read-through cache over some slower loader.
type Cache interface {
	Fetch(key string) (string, bool)
	Load(key string) (string, error)
}

// Resolve returns the cached value for key, falling back to a load on miss.
func Resolve(cache Cache, key string) (string, error) {
	if value, ok := cache.Fetch(key); ok {
		return value, nil
	}

	return cache.Load(key)
}
