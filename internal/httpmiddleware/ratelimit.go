package httpmiddleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// PerIPLimiter is an in-memory token bucket keyed by client IP; for a
// multi-instance deployment swap to Redis.
type PerIPLimiter struct {
	perMinute int
	mu        sync.Mutex
	buckets   map[string]*bucket
}

type bucket struct {
	tokens   float64
	lastFill time.Time
}

// NewPerIPLimiter creates a limiter allowing perMinute requests per client,
// with bursts up to the same size.
func NewPerIPLimiter(perMinute int) *PerIPLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &PerIPLimiter{
		perMinute: perMinute,
		buckets:   make(map[string]*bucket),
	}
}

// Middleware returns a gin handler enforcing the limit.
func (l *PerIPLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.allow(ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit"})
			return
		}
		c.Next()
	}
}

func (l *PerIPLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	b, ok := l.buckets[key]
	if !ok {
		l.buckets[key] = &bucket{tokens: float64(l.perMinute) - 1, lastFill: now}
		return true
	}
	b.tokens += now.Sub(b.lastFill).Minutes() * float64(l.perMinute)
	if limit := float64(l.perMinute); b.tokens > limit {
		b.tokens = limit
	}
	b.lastFill = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
