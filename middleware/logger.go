package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tricyvic/alx-travel-app-0x00/services/logger"
)

// RequestLogger ghi một dòng log cho mỗi request, kèm lỗi mà handler đã gắn vào context
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := log.
			WithField("requestId", c.GetString(RequestIDKey)).
			WithField("method", c.Request.Method).
			WithField("path", path).
			WithField("status", c.Writer.Status()).
			WithField("latency", time.Since(start).String())

		switch {
		case len(c.Errors) > 0:
			entry.Error("request failed: %s", c.Errors.String())
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}
