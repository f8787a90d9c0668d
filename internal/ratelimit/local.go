package ratelimit

import (
	"context"
	"sync"
	"time"
)

const window = time.Minute

// LocalLimiter keeps a sliding one-minute window per key in process memory.
// It is the fallback when no Redis is configured: correct for a single
// instance, best-effort behind a load balancer.
type LocalLimiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	now     func() time.Time
}

func NewLocalLimiter() *LocalLimiter {
	return &LocalLimiter{
		windows: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// WithNow replaces the clock. Tests only.
func (l *LocalLimiter) WithNow(now func() time.Time) *LocalLimiter {
	l.now = now
	return l
}

func (l *LocalLimiter) Allow(_ context.Context, key string, perMinute int) (*Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-window)

	kept := l.windows[key][:0]
	for _, t := range l.windows[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= perMinute {
		l.windows[key] = kept
		return &Result{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: kept[0].Add(window).Sub(now),
			ResetAfter: kept[0].Add(window).Sub(now),
		}, nil
	}

	kept = append(kept, now)
	l.windows[key] = kept
	return &Result{
		Allowed:    true,
		Remaining:  perMinute - len(kept),
		RetryAfter: -1,
		ResetAfter: kept[0].Add(window).Sub(now),
	}, nil
}
