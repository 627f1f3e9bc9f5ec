// Package ratelimiter provides token bucket rate limiting with pluggable
// stores and HTTP middleware.
//
// A Bucket allows bursts up to Capacity and refills RefillRate tokens every
// RefillInterval. State lives in a Store: MemoryStore for a single process,
// RedisStore when several processes share limits.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//
// # HTTP Middleware
//
// Middleware keys requests with a KeyFunc, sets X-RateLimit-* headers and
// answers denied requests with 429 and Retry-After. WithDeniedHandler
// replaces the plain text 429 body:
//
//	r.With(ratelimiter.Middleware(limiter, clientip.GetIP,
//		ratelimiter.WithDeniedHandler(renderTooManyRequests),
//	)).Post("/contacto", submit)
//
// A failing store answers 503 unless WithStoreErrorHandler says otherwise.
package ratelimiter
