package middleware

import (
	"net/http"
	"runtime/debug"

	"AppealOS/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 carrying the request ID
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "Internal server error",
					"kind":       "internal",
					"request_id": GetRequestID(c),
				})
			}
		}()

		c.Next()
	}
}
