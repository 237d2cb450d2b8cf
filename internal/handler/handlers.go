package handler

import (
	"agent_connect/internal/config"
	"agent_connect/internal/service"
	"agent_connect/pkg/logger"
)

type Handlers struct {
	Health     *HealthHandler
	Connection *ConnectionHandler
	Token      *TokenHandler
	Selector   *SelectorHandler
	Agent      *AgentHandler
}

func NewHandlers(services *service.Services, cfg *config.Config, log logger.Logger) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(cfg),
		Connection: NewConnectionHandler(services.Connection, log),
		Token:      NewTokenHandler(services.TokenInspector, log),
		Selector:   NewSelectorHandler(),
		Agent:      NewAgentHandler(),
	}
}
