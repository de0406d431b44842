package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per client inside the process.
// A bucket idle for a whole window has refilled completely, so it is dropped
// and recreated on the client's next request.
type MemoryLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*clientBucket
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryLimiter(perWindow int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		buckets:   make(map[string]*clientBucket),
		limit:     rate.Every(window / time.Duration(perWindow)),
		burst:     perWindow,
		idleTTL:   window,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) >= m.idleTTL {
		m.sweep(now)
	}

	b, ok := m.buckets[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1), nil
}

func (m *MemoryLimiter) sweep(now time.Time) {
	for key, b := range m.buckets {
		if now.Sub(b.lastSeen) >= m.idleTTL {
			delete(m.buckets, key)
		}
	}
	m.lastSweep = now
}
