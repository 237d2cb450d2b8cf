package middleware

import (
	"net/http"
	"strconv"

	"agent_connect/internal/metrics"
	"agent_connect/internal/service"
	apperrors "agent_connect/pkg/errors"
	"agent_connect/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RateLimitMiddleware struct {
	rateLimitService service.RateLimitService
	metrics          *metrics.Metrics
	log              logger.Logger
}

func NewRateLimitMiddleware(rateLimitService service.RateLimitService, m *metrics.Metrics, log logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		rateLimitService: rateLimitService,
		metrics:          m,
		log:              log,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		limit := m.rateLimitService.Limit()

		allowed, remaining, err := m.rateLimitService.Allow(c.Request.Context(), key)
		if err != nil {
			m.log.Error("Rate limit check failed", "error", err, "request_id", GetRequestID(c))
			c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			m.metrics.RateLimited.Inc()
			m.log.Warn("Rate limit exceeded", "client_ip", key)
			c.String(http.StatusTooManyRequests, apperrors.ErrTooManyRequests.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
