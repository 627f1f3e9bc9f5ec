package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivircondiabetes/sitio/pkg/ratelimiter"
)

func TestNewBucket(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithoutSweeper())

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{RefillRate: 1, RefillInterval: time.Second}},
		{"zero refill", ratelimiter.Config{Capacity: 1, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(store, tt.cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}
}

func TestBucket(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithoutSweeper(), ratelimiter.WithClock(clock.Now))
	limiter, err := ratelimiter.NewBucket(store, contactLimit)
	require.NoError(t, err)
	ctx := context.Background()

	res, err := limiter.AllowN(ctx, "ip", 3)
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 3, res.Limit)
	assert.Zero(t, res.RetryAfter())

	res, err = limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	status, err := limiter.Status(ctx, "ip")
	require.NoError(t, err)
	assert.Zero(t, status.Remaining, "denied requests take nothing")

	_, err = limiter.AllowN(ctx, "ip", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	require.NoError(t, limiter.Reset(ctx, "ip"))
	res, err = limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining)
}
