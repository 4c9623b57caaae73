package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter rate limits requests per client key using a token bucket each
type Limiter struct {
	mu      sync.RWMutex
	clients map[string]*client
	rps     float64
	burst   int
	now     func() time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter creates a limiter granting each key rps tokens per second up to burst
func NewLimiter(rps float64, burst int) *Limiter {
	return &Limiter{
		clients: make(map[string]*client),
		rps:     rps,
		burst:   burst,
		now:     time.Now,
	}
}

// getClient returns or creates the bucket for key and stamps its last use
func (l *Limiter) getClient(key string) *rate.Limiter {
	now := l.now()

	l.mu.RLock()
	c, exists := l.clients[key]
	l.mu.RUnlock()

	if exists {
		l.mu.Lock()
		c.lastSeen = now
		l.mu.Unlock()
		return c.limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if c, exists := l.clients[key]; exists {
		c.lastSeen = now
		return c.limiter
	}

	c = &client{
		limiter:  rate.NewLimiter(rate.Limit(l.rps), l.burst),
		lastSeen: now,
	}
	l.clients[key] = c
	return c.limiter
}

// Allow reports whether a request from key may proceed now
func (l *Limiter) Allow(key string) bool {
	return l.getClient(key).Allow()
}

// Wait blocks until key has a token or ctx is done
func (l *Limiter) Wait(ctx context.Context, key string) error {
	return l.getClient(key).Wait(ctx)
}

// Prune drops clients idle for longer than maxIdle and returns how many went
func (l *Limiter) Prune(maxIdle time.Duration) int {
	cutoff := l.now().Add(-maxIdle)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Run prunes idle clients every interval until ctx is cancelled
func (l *Limiter) Run(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Prune(maxIdle)
		}
	}
}

// Len returns the number of tracked clients
func (l *Limiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clients)
}

// Stats returns token state for every tracked client
func (l *Limiter) Stats() map[string]ClientStats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := make(map[string]ClientStats, len(l.clients))
	for key, c := range l.clients {
		stats[key] = ClientStats{
			Key:             key,
			RPS:             float64(c.limiter.Limit()),
			Burst:           c.limiter.Burst(),
			TokensAvailable: c.limiter.Tokens(),
			LastSeen:        c.lastSeen,
		}
	}
	return stats
}

// ClientStats represents the bucket state of one client
type ClientStats struct {
	Key             string    `json:"key"`
	RPS             float64   `json:"rps"`
	Burst           int       `json:"burst"`
	TokensAvailable float64   `json:"tokens_available"`
	LastSeen        time.Time `json:"last_seen"`
}

// IsThrottled returns true if the client has no whole token left
func (s *ClientStats) IsThrottled() bool {
	return s.TokensAvailable < 1
}
