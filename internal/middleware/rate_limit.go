package middleware

import (
	"net/http"
	"time"

	"AppealOS/internal/logger"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// idle limiters are dropped after this long
const limiterLiveness = 30 * time.Minute

// RateLimit caps paid upstream calls per session. perMinute <= 0 disables it.
// Sessions are attached by Session, so callers without one share the client
// IP bucket.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			if sess := GetSession(c); sess != nil {
				return "session:" + sess.ID
			}
			return "ip:" + c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute), limiterLiveness
		},
		func(c *gin.Context) {
			logger.Warn(c.Request.Context(), "rate limit exceeded", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please wait a moment and try again.",
				"kind":  "rate_limited",
			})
		},
	)
}
