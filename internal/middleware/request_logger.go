package middleware

import (
	"time"

	"agent_connect/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger пишет одну строку на запрос. Query не логируется:
// в metadata может быть что угодно от клиента.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"request_id", GetRequestID(c),
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"bytes", c.Writer.Size(),
		}

		switch {
		case status >= 500:
			log.Error("Request completed", fields...)
		case status >= 400:
			log.Warn("Request completed", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}
