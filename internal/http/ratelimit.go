package httpx

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientRateLimiter tracks a token bucket per client key.
type ClientRateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	clients  map[string]*clientLimiter
	lastScan time.Time
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// staleAfter is how long an idle client entry survives before cleanup.
const staleAfter = 10 * time.Minute

// NewClientRateLimiter creates a limiter allowing perMinute requests with
// the given burst per client.
func NewClientRateLimiter(perMinute, burst int) *ClientRateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &ClientRateLimiter{
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
		clients:  make(map[string]*clientLimiter),
		lastScan: time.Now(),
	}
}

// Allow reports whether the client identified by key may proceed.
func (l *ClientRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.cleanupLocked(now)

	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastAccess = now

	return c.limiter.Allow()
}

// cleanupLocked drops entries idle past staleAfter. Runs at most once per
// staleAfter window so the scan cost stays off the hot path.
func (l *ClientRateLimiter) cleanupLocked(now time.Time) {
	if now.Sub(l.lastScan) < staleAfter {
		return
	}
	l.lastScan = now
	for key, c := range l.clients {
		if now.Sub(c.lastAccess) > staleAfter {
			delete(l.clients, key)
		}
	}
}
