package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
)

// KeyFunc picks the bucket for a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// DeniedHandler answers a request over its limit. The X-RateLimit-* and
// Retry-After headers are set before it runs.
type DeniedHandler func(w http.ResponseWriter, r *http.Request, res *Result)

// StoreErrorHandler answers a request whose bucket could not be read.
type StoreErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*guard)

type guard struct {
	limiter  RateLimiter
	key      KeyFunc
	prefix   string
	denied   DeniedHandler
	storeErr StoreErrorHandler
}

// WithDeniedHandler replaces the plain-text 429.
func WithDeniedHandler(h DeniedHandler) MiddlewareOption {
	return func(g *guard) {
		if h != nil {
			g.denied = h
		}
	}
}

// WithStoreErrorHandler replaces the plain-text 503 sent when the store
// fails.
func WithStoreErrorHandler(h StoreErrorHandler) MiddlewareOption {
	return func(g *guard) {
		if h != nil {
			g.storeErr = h
		}
	}
}

// WithKeyPrefix keeps routes that share a store in separate buckets.
func WithKeyPrefix(prefix string) MiddlewareOption {
	return func(g *guard) { g.prefix = prefix }
}

// Middleware takes one token per request from the bucket chosen by key.
func Middleware(limiter RateLimiter, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	g := &guard{
		limiter: limiter,
		key:     key,
		denied: func(w http.ResponseWriter, _ *http.Request, _ *Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		storeErr: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		},
	}
	for _, opt := range opts {
		opt(g)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g.admit(w, r) {
				next.ServeHTTP(w, r)
			}
		})
	}
}

// admit reports whether the request may go on. When it returns false the
// response has been written.
func (g *guard) admit(w http.ResponseWriter, r *http.Request) bool {
	k := g.key(r)
	if k == "" {
		return true
	}

	res, err := g.limiter.Allow(r.Context(), g.prefix+k)
	if err != nil {
		g.storeErr(w, r, err)
		return false
	}

	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(res.Remaining, 0)))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
	if res.Allowed() {
		return true
	}

	// Whole seconds, rounded up, at least one.
	h.Set("Retry-After", strconv.Itoa(max(int(math.Ceil(res.RetryAfter().Seconds())), 1)))
	g.denied(w, r, res)
	return false
}
