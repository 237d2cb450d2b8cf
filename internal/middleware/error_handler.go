package middleware

import (
	apperrors "agent_connect/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorHandler превращает ошибку, добавленную через c.Error, в ответ.
// Тело - простой текст, для 5xx без подробностей.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		c.String(apperrors.HTTPStatusFromError(err), apperrors.PublicMessage(err))
	}
}
