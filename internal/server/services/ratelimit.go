package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type keyLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// KeyedLimiter keeps one token bucket per key, e.g. per email address.
type KeyedLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*keyLimiter
	now      func() time.Time
}

// NewKeyedLimiter allows perMinute events per key with the given burst.
// A non-positive perMinute disables limiting.
func NewKeyedLimiter(perMinute, burst int) *KeyedLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / 60.0)
	}
	if burst <= 0 {
		burst = 1
	}
	return &KeyedLimiter{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*keyLimiter),
		now:      time.Now,
	}
}

// Allow reports whether one more event for key fits the budget.
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	kl, ok := l.limiters[key]
	if !ok {
		kl = &keyLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = kl
	}
	kl.lastAccess = now
	return kl.limiter.AllowN(now, 1)
}

// Cleanup forgets keys idle for longer than maxIdle.
func (l *KeyedLimiter) Cleanup(maxIdle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-maxIdle)
	for key, kl := range l.limiters {
		if kl.lastAccess.Before(cutoff) {
			delete(l.limiters, key)
		}
	}
}

// Run calls Cleanup every interval until ctx is done.
func (l *KeyedLimiter) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Cleanup(interval)
		}
	}
}

func (l *KeyedLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
