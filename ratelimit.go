package main

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// clientLimiter keeps one token bucket per client IP. The table is an LRU so
// a flood of distinct addresses evicts the oldest buckets instead of growing.
type clientLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// newClientLimiter allows perMinute requests per client, refilled evenly,
// with a burst of the full minute's allowance.
func newClientLimiter(perMinute, maxClients int) (*clientLimiter, error) {
	cache, err := lru.New[string, *rate.Limiter](maxClients)
	if err != nil {
		return nil, err
	}
	return &clientLimiter{
		limiters: cache,
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    perMinute,
	}, nil
}

func (l *clientLimiter) allow(client string) bool {
	l.mu.Lock()
	lim, ok := l.limiters.Get(client)
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(client, lim)
	}
	l.mu.Unlock()
	return lim.Allow()
}

// rateLimitMiddleware rejects clients that exceed RATE_LIMIT_PER_MINUTE.
// Only POST /api/plan is limited.
func (h *Handler) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.limiter != nil && !h.limiter.allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			apiError(c, http.StatusTooManyRequests, "too many plan requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
