package ratelimit

import (
	"context"
	"sync"
	"time"
)

// IntervalLimiter admits at most one request per key per interval: a
// minimum-interval gate, not a token bucket, so there is no burst allowance.
type IntervalLimiter struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
	interval time.Duration
}

// NewIntervalLimiter creates a limiter with the given minimum interval
// between admitted requests per key.
func NewIntervalLimiter(interval time.Duration) *IntervalLimiter {
	l := &IntervalLimiter{
		lastSeen: make(map[string]time.Time),
		interval: interval,
	}
	// Periodically evict idle entries to keep memory bounded.
	go l.cleanup()
	return l
}

// Allow admits the request when the key has no recorded admission or the
// last one is at least one interval old. Rejections leave the recorded
// timestamp untouched.
func (l *IntervalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if last, ok := l.lastSeen[key]; ok && now.Sub(last) < l.interval {
		return false, nil
	}
	l.lastSeen[key] = now
	return true, nil
}

func (l *IntervalLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		// Entries older than one interval admit anyway, so dropping them
		// does not change any decision.
		l.sweep(time.Now().Add(-l.interval))
	}
}

func (l *IntervalLimiter) sweep(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, last := range l.lastSeen {
		if last.Before(cutoff) {
			delete(l.lastSeen, key)
		}
	}
}
