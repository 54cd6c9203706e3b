package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps sliding windows in process memory. It backs the
// answer throttle when the bot runs without Redis.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	now     func() time.Time
}

var _ Limiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter returns an empty in-memory limiter.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Check records one hit for key and reports whether it fits the limit.
func (m *MemoryLimiter) Check(_ context.Context, key string, limit int, window time.Duration) (*Result, error) {
	now := m.now()
	cutoff := now.Add(-window)

	m.mu.Lock()
	defer m.mu.Unlock()

	hits := m.windows[key]
	for len(hits) > 0 && hits[0].Before(cutoff) {
		hits = hits[1:]
	}

	if len(hits) >= limit {
		m.windows[key] = hits
		reset := now.Add(window)
		if len(hits) > 0 {
			reset = hits[0].Add(window)
		}
		return &Result{ResetAt: reset}, ErrLimitExceeded
	}

	hits = append(hits, now)
	m.windows[key] = hits

	return &Result{
		Allowed:   true,
		Remaining: limit - len(hits),
		ResetAt:   hits[0].Add(window),
	}, nil
}
