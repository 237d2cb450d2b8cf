package handler

import (
	"net/http"

	"agent_connect/internal/service"
	apperrors "agent_connect/pkg/errors"
	"agent_connect/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	inspector service.TokenInspector
	log       logger.Logger
}

func NewTokenHandler(inspector service.TokenInspector, log logger.Logger) *TokenHandler {
	return &TokenHandler{
		inspector: inspector,
		log:       log,
	}
}

type IntrospectRequest struct {
	Token string `json:"token" binding:"required"`
}

// Introspect проверяет подпись токена и возвращает его содержимое.
// Нужен агенту, чтобы узнать имя бота по токену участника.
func (h *TokenHandler) Introspect(c *gin.Context) {
	var req IntrospectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.inspector.Inspect(c.Request.Context(), req.Token)
	if err != nil {
		h.log.Warn("Token introspection failed", "error", err)
		c.JSON(apperrors.HTTPStatusFromError(err), gin.H{"error": apperrors.PublicMessage(err)})
		return
	}

	c.JSON(http.StatusOK, info)
}
