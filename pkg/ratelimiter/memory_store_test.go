package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivircondiabetes/sitio/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var contactLimit = ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Minute}

func TestMemoryStore_ConsumeTokens(t *testing.T) {
	t.Parallel()

	t.Run("burst then deny", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithoutSweeper(), ratelimiter.WithClock(clock.Now))
		ctx := context.Background()

		for want := 2; want >= 0; want-- {
			remaining, resetAt, err := store.ConsumeTokens(ctx, "1.2.3.4", 1, contactLimit)
			require.NoError(t, err)
			assert.Equal(t, want, remaining)
			assert.Equal(t, clock.Now().Add(time.Minute), resetAt)
		}

		remaining, _, err := store.ConsumeTokens(ctx, "1.2.3.4", 1, contactLimit)
		require.NoError(t, err)
		assert.Negative(t, remaining)
	})

	t.Run("refills per interval up to capacity", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithoutSweeper(), ratelimiter.WithClock(clock.Now))
		ctx := context.Background()

		remaining, _, err := store.ConsumeTokens(ctx, "k", 3, contactLimit)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)

		clock.Advance(2 * time.Minute)
		remaining, _, err = store.ConsumeTokens(ctx, "k", 0, contactLimit)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)

		clock.Advance(time.Hour)
		remaining, _, err = store.ConsumeTokens(ctx, "k", 0, contactLimit)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)
	})

	t.Run("keys are independent and resettable", func(t *testing.T) {
		t.Parallel()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithoutSweeper())
		ctx := context.Background()

		_, _, err := store.ConsumeTokens(ctx, "a", 3, contactLimit)
		require.NoError(t, err)
		remaining, _, err := store.ConsumeTokens(ctx, "b", 1, contactLimit)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)

		require.NoError(t, store.Reset(ctx, "a"))
		remaining, _, err = store.ConsumeTokens(ctx, "a", 1, contactLimit)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
	})
}

func TestMemoryStore_Sweep(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithoutSweeper(),
		ratelimiter.WithIdleTTL(10*time.Minute),
		ratelimiter.WithClock(clock.Now),
	)
	ctx := context.Background()

	_, _, err := store.ConsumeTokens(ctx, "old", 1, contactLimit)
	require.NoError(t, err)
	clock.Advance(11 * time.Minute)
	_, _, err = store.ConsumeTokens(ctx, "fresh", 1, contactLimit)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())
	assert.Zero(t, store.Sweep())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithoutSweeper())
	defer store.Close()
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := limiter.Allow(context.Background(), "shared")
			if err != nil || !res.Allowed() {
				return
			}
			mu.Lock()
			allowed++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
	store.Close()
}
