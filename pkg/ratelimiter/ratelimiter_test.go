package ratelimiter_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardkit/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock { return &clock{now: time.Unix(1_700_000_000, 0)} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, clk *clock, cfg ratelimiter.Config) *ratelimiter.Bucket {
	t.Helper()

	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithClock(clk.Now),
	)
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b
}

func TestNewBucketValidation(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)

	for name, cfg := range map[string]ratelimiter.Config{
		"zero capacity": {Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		"zero rate":     {Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		"zero interval": {Capacity: 1, RefillRate: 1},
	} {
		_, err := ratelimiter.NewBucket(store, cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig, name)
	}
}

func TestBucket(t *testing.T) {
	t.Parallel()

	cfg := ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Minute}
	ctx := context.Background()

	t.Run("burst then deny", func(t *testing.T) {
		t.Parallel()

		b := newBucket(t, newClock(), cfg)
		for want := 2; want >= 0; want-- {
			res, err := b.Allow(ctx, "k")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, want, res.Remaining)
			assert.Equal(t, 3, res.Limit)
		}

		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Equal(t, -1, res.Remaining)
	})

	t.Run("denied requests consume nothing", func(t *testing.T) {
		t.Parallel()

		clk := newClock()
		b := newBucket(t, clk, cfg)
		_, err := b.AllowN(ctx, "k", 3)
		require.NoError(t, err)

		for range 5 {
			res, err := b.Allow(ctx, "k")
			require.NoError(t, err)
			require.False(t, res.Allowed())
		}

		clk.Advance(time.Minute)
		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("refill caps at capacity", func(t *testing.T) {
		t.Parallel()

		clk := newClock()
		b := newBucket(t, clk, cfg)
		_, err := b.AllowN(ctx, "k", 3)
		require.NoError(t, err)

		clk.Advance(time.Hour)
		res, err := b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Remaining)
	})

	t.Run("partial refill keeps interval boundary", func(t *testing.T) {
		t.Parallel()

		clk := newClock()
		start := clk.Now()
		b := newBucket(t, clk, cfg)
		_, err := b.AllowN(ctx, "k", 3)
		require.NoError(t, err)

		clk.Advance(90 * time.Second)
		res, err := b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Remaining)
		assert.Equal(t, start.Add(2*time.Minute), res.ResetAt)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		b := newBucket(t, newClock(), cfg)
		_, err := b.AllowN(ctx, "a", 3)
		require.NoError(t, err)

		res, err := b.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()

		b := newBucket(t, newClock(), cfg)
		_, err := b.AllowN(ctx, "k", 3)
		require.NoError(t, err)
		require.NoError(t, b.Reset(ctx, "k"))

		res, err := b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Remaining)
	})

	t.Run("invalid token count", func(t *testing.T) {
		t.Parallel()

		b := newBucket(t, newClock(), cfg)
		_, err := b.AllowN(ctx, "k", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})
}

func TestBucketConcurrent(t *testing.T) {
	t.Parallel()

	b := newBucket(t, newClock(), ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour})

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := b.Allow(context.Background(), "shared")
			if err == nil && res.Allowed() {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), allowed.Load())
}

func TestMemoryStoreEviction(t *testing.T) {
	t.Parallel()

	clk := newClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(5*time.Millisecond),
		ratelimiter.WithIdleTTL(time.Minute),
		ratelimiter.WithClock(clk.Now),
	)
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)
	_, err = b.Allow(context.Background(), "idle")
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	clk.Advance(2 * time.Minute)
	require.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	store.Close()
	store.Close()
}

func TestResult(t *testing.T) {
	t.Parallel()

	allowed := &ratelimiter.Result{Remaining: 0, ResetAt: time.Now().Add(time.Minute)}
	assert.True(t, allowed.Allowed())
	assert.Zero(t, allowed.RetryAfter())

	denied := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(time.Minute)}
	assert.False(t, denied.Allowed())
	assert.InDelta(t, time.Minute, denied.RetryAfter(), float64(time.Second))

	past := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(-time.Minute)}
	assert.Zero(t, past.RetryAfter())
}
