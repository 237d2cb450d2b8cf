package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID берет X-Request-ID из запроса, если это валидный UUID,
// иначе генерирует новый. Значение кладется в контекст и в ответ.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)

		if requestID != "" {
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = ""
			}
		}

		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID возвращает id текущего запроса или пустую строку
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
