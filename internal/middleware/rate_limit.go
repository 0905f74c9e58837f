package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Idle client buckets are dropped after limiterEntryTTL; sweeps run at most once per limiterCleanupInterval.
const (
	limiterEntryTTL        = 10 * time.Minute
	limiterCleanupInterval = time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter hands out one token bucket per client key.
type ClientLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	rps       rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		limiters:  make(map[string]*limiterEntry),
		rps:       rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow consumes one token for key.
func (l *ClientLimiter) Allow(key string) bool {
	l.mu.Lock()
	now := l.now()
	if now.Sub(l.lastSweep) >= limiterCleanupInterval {
		l.sweep(now)
	}

	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// Clients returns how many client buckets are tracked.
func (l *ClientLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// sweep removes buckets unused for limiterEntryTTL. Callers hold l.mu.
func (l *ClientLimiter) sweep(now time.Time) {
	cutoff := now.Add(-limiterEntryTTL)
	for key, entry := range l.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

// RateLimit throttles per authenticated user, falling back to the client IP.
func RateLimit(limiter *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := GetUserEmail(c)
		if key == "" {
			key = c.ClientIP()
		}

		if !limiter.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Demasiadas solicitudes, intenta de nuevo en unos segundos",
			})
			return
		}
		c.Next()
	}
}
