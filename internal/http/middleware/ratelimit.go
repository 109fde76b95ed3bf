package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// in-process fallback windows, keyed like the redis counters
type memWindow struct {
	start time.Time
	count int
}

var (
	memMu      sync.Mutex
	memWindows = make(map[string]*memWindow)
)

func memoryAllow(key string, limit int, window time.Duration) (remaining int64, allowed bool) {
	memMu.Lock()
	defer memMu.Unlock()

	now := time.Now()
	w, ok := memWindows[key]
	if !ok || now.Sub(w.start) > window {
		memWindows[key] = &memWindow{start: now, count: 1}
		return int64(limit - 1), true
	}

	w.count++
	if w.count > limit {
		return 0, false
	}
	return int64(limit - w.count), true
}

// allow picks the shared redis window when configured, the process-local one
// otherwise.
func allow(ctx context.Context, key string, limit int, window time.Duration) (int64, bool) {
	if redisClient != nil {
		remaining, allowed, err := redisAllow(ctx, key, limit, window)
		if err == nil {
			return remaining, allowed
		}
		// redis briefly down, fail-open rather than guess with stale state
		return 0, true
	}
	return memoryAllow(key, limit, window)
}

// RateLimit enforces a fixed request window per client IP.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	windowSecs := strconv.FormatInt(int64(window.Seconds()), 10)
	return func(c *gin.Context) {
		key := "ratelimit:ip:" + windowSecs + ":" + c.ClientIP()

		_, allowed := allow(c.Request.Context(), key, maxRequests, window)
		if !allowed {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
