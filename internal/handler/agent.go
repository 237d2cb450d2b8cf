package handler

import (
	"net/http"
	"strings"

	"agent_connect/internal/agent"

	"github.com/gin-gonic/gin"
)

type AgentHandler struct{}

func NewAgentHandler() *AgentHandler {
	return &AgentHandler{}
}

// Persona возвращает промпт и приветствие агента для имени бота.
// botName можно передать напрямую или через metadata участника.
func (h *AgentHandler) Persona(c *gin.Context) {
	botName := strings.TrimSpace(c.Query("botName"))
	if botName == "" {
		botName = agent.BotNameFromMetadata(c.Query("metadata"))
	}

	c.JSON(http.StatusOK, gin.H{
		"botName":      botName,
		"greeting":     agent.Greeting(botName),
		"systemPrompt": agent.SystemPrompt(botName),
		"templates":    agent.Templates,
	})
}
