package api

import (
	"sync"
	"time"
)

const (
	rateLimitMax    = 20
	rateLimitWindow = time.Hour
)

// rateLimiter is a fixed-window counter per client key. Counters reset
// when their window expires, so a burst right at the boundary can see
// up to twice the limit; acceptable for an abuse guard.
type rateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*windowEntry
	now     func() time.Time
}

type windowEntry struct {
	count int
	start time.Time
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		max:     max,
		window:  window,
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
}

func (l *rateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.entries[key]
	if !ok || now.Sub(entry.start) >= l.window {
		// Sweep other lapsed windows too, so idle clients do not
		// accumulate in the map forever.
		for k, e := range l.entries {
			if now.Sub(e.start) >= l.window {
				delete(l.entries, k)
			}
		}
		l.entries[key] = &windowEntry{count: 1, start: now}
		return true
	}
	if entry.count >= l.max {
		return false
	}
	entry.count++
	return true
}
