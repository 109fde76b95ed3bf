package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GuessRateLimit limits guess submissions per player, not per IP, so a player
// cannot brute-force the daily word from several addresses. Requires the JWT
// middleware to have run first.
func GuessRateLimit(maxGuesses int, window time.Duration) gin.HandlerFunc {
	windowSecs := strconv.FormatInt(int64(window.Seconds()), 10)
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		userID, ok := userIDVal.(uuid.UUID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user"})
			return
		}

		key := "ratelimit:guess:" + windowSecs + ":" + userID.String()

		remaining, allowed := allow(c.Request.Context(), key, maxGuesses, window)
		c.Header("X-GuessRateLimit-Limit", strconv.Itoa(maxGuesses))
		c.Header("X-GuessRateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			RLBlocked.WithLabelValues("guess:" + c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "guess rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		RLRequests.WithLabelValues("guess:" + c.FullPath()).Inc()
		c.Next()
	}
}
