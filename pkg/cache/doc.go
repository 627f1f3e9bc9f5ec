// Package cache provides a generic, thread-safe LRU cache.
//
// Once the cache holds its capacity, adding a new key evicts the entry
// that was read or written least recently. Contains does not count as a
// use, so callers can inspect the cache without reordering it.
//
//	c := cache.NewLRU[string, []byte](64, cache.OnEvict(func(name string, _ []byte) {
//		log.Debug("page evicted", "page", name)
//	}))
//	c.Put("contacto", src)
//	src, ok := c.Get("contacto")
//
// The page store uses it to keep raw page sources between requests.
package cache
