package handler

import (
	"net/http"

	"agent_connect/internal/selector"

	"github.com/gin-gonic/gin"
)

type SelectorHandler struct{}

func NewSelectorHandler() *SelectorHandler {
	return &SelectorHandler{}
}

// Options - список имен для выпадающего списка на фронтенде
func (h *SelectorHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"options": selector.Options(),
		"default": selector.DefaultOption,
		"state":   selector.InitialState(),
	})
}
