package handler

import (
	"net/http"
	"slices"

	"agent_connect/internal/config"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	serverURL       string
	regions         []string
	regionalRouting bool
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	regions := make([]string, 0, len(cfg.LiveKit.RegionalURLs))
	for region := range cfg.LiveKit.RegionalURLs {
		regions = append(regions, region)
	}
	slices.Sort(regions)

	return &HealthHandler{
		serverURL:       cfg.LiveKit.ServerURL,
		regions:         regions,
		regionalRouting: cfg.Token.RegionalRouting,
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "agent-connect",
	})
}

// ServerInfo возвращает адрес LiveKit по умолчанию и доступные регионы
func (h *HealthHandler) ServerInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"server_url":       h.serverURL,
		"regions":          h.regions,
		"regional_routing": h.regionalRouting,
		"api_base":         "/api/v1",
	})
}
