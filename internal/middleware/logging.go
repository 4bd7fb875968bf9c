package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"macrofit-backend/internal/logger"
)

// RequestLogger logs one line per request with method, path, status, latency
// and the request ID set by RequestID.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"request_id", c.GetString("request_id"),
		}
		if c.Writer.Status() >= 500 {
			log.Error("request completed", fields...)
		} else {
			log.Info("request completed", fields...)
		}
	}
}
