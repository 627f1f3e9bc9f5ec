package ratelimiter

import (
	"context"
	"sync"
	"time"
)

const (
	sweepEvery     = 5 * time.Minute
	defaultIdleTTL = time.Hour
)

type tokenState struct {
	tokens   int
	refilled time.Time
	touched  time.Time
}

// refill adds RefillRate tokens for each whole interval since the last
// refill. The interval count is capped so huge gaps cannot overflow.
func (s *tokenState) refill(now time.Time, cfg Config) {
	elapsed := int64(now.Sub(s.refilled) / cfg.RefillInterval)
	if elapsed <= 0 {
		return
	}
	elapsed = min(elapsed, int64(cfg.Capacity/cfg.RefillRate+1))
	s.tokens = min(s.tokens+int(elapsed)*cfg.RefillRate, cfg.Capacity)
	s.refilled = now
}

// MemoryStore keeps buckets in process memory. A background sweeper drops
// buckets idle for longer than the idle TTL; Close stops it.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]*tokenState
	now    func() time.Time
	ttl    time.Duration
	sweep  bool
	done   chan struct{}
	closed sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithoutSweeper disables the background sweeper. Sweep can still be
// called directly.
func WithoutSweeper() MemoryStoreOption {
	return func(ms *MemoryStore) { ms.sweep = false }
}

// WithIdleTTL sets how long an untouched bucket survives a sweep.
func WithIdleTTL(d time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if d > 0 {
			ms.ttl = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		states: make(map[string]*tokenState),
		now:    time.Now,
		ttl:    defaultIdleTTL,
		sweep:  true,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}
	if ms.sweep {
		go ms.sweeper()
	}
	return ms
}

// ConsumeTokens takes tokens from key's bucket, creating it full. A
// negative remainder means the request is denied and nothing was taken.
func (ms *MemoryStore) ConsumeTokens(_ context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	s, ok := ms.states[key]
	if !ok {
		s = &tokenState{tokens: cfg.Capacity, refilled: now}
		ms.states[key] = s
	}
	s.refill(now, cfg)
	s.touched = now

	left := s.tokens - tokens
	if left >= 0 {
		s.tokens = left
	}
	return left, s.refilled.Add(cfg.RefillInterval), nil
}

func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	delete(ms.states, key)
	ms.mu.Unlock()
	return nil
}

// Len is the number of buckets held.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.states)
}

// Sweep drops idle buckets and reports how many went.
func (ms *MemoryStore) Sweep() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	cutoff := ms.now().Add(-ms.ttl)
	n := 0
	for key, s := range ms.states {
		if s.touched.Before(cutoff) {
			delete(ms.states, key)
			n++
		}
	}
	return n
}

func (ms *MemoryStore) sweeper() {
	t := time.NewTicker(sweepEvery)
	defer t.Stop()
	for {
		select {
		case <-ms.done:
			return
		case <-t.C:
			ms.Sweep()
		}
	}
}

// Close stops the sweeper. Calling it more than once is fine.
func (ms *MemoryStore) Close() {
	ms.closed.Do(func() { close(ms.done) })
}
