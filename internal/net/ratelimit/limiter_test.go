package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(2.0, 2) // 2 RPS, burst of 2

	assert.True(t, limiter.Allow("10.0.0.1"), "first request should be allowed")
	assert.True(t, limiter.Allow("10.0.0.1"), "second request should be allowed")
	assert.False(t, limiter.Allow("10.0.0.1"), "third request should be blocked")
}

func TestLimiter_IndependentClients(t *testing.T) {
	limiter := NewLimiter(1.0, 1)

	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"))
	assert.False(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("b"))
	assert.Equal(t, 2, limiter.Len())
}

func TestLimiter_WaitTimeout(t *testing.T) {
	limiter := NewLimiter(0.1, 1) // one token every 10 seconds

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, limiter.Wait(ctx, "slow"))
	assert.Error(t, limiter.Wait(ctx, "slow"), "second wait should exceed the deadline")
}

func TestLimiter_Prune(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	limiter.Allow("old")
	now = now.Add(10 * time.Minute)
	limiter.Allow("fresh")

	removed := limiter.Prune(5 * time.Minute)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, limiter.Len())
	_, ok := limiter.Stats()["fresh"]
	assert.True(t, ok)
}

func TestLimiter_Stats(t *testing.T) {
	limiter := NewLimiter(5, 1)
	limiter.Allow("c")

	stats := limiter.Stats()
	require.Contains(t, stats, "c")
	s := stats["c"]
	assert.Equal(t, 5.0, s.RPS)
	assert.Equal(t, 1, s.Burst)
	assert.True(t, s.IsThrottled())
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(1, 10)

	var allowed int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow("shared") {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt64(&allowed), int64(11))
	assert.GreaterOrEqual(t, atomic.LoadInt64(&allowed), int64(10))
}
