package handler

import (
	"agent_connect/internal/config"
	"agent_connect/internal/metrics"
	"agent_connect/internal/middleware"
	"agent_connect/pkg/logger"

	"github.com/gin-gonic/gin"
)

func NewRouter(
	handlers *Handlers,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	m *metrics.Metrics,
	cfg *config.Config,
	log logger.Logger,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics(m))
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Check)
	router.GET("/server-info", handlers.Health.ServerInfo)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Путь, который ждет фронтенд
	router.GET("/api/connection-details", rateLimitMiddleware.Limit(), handlers.Connection.GetConnectionDetails)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/connection-details", rateLimitMiddleware.Limit(), handlers.Connection.GetConnectionDetails)
		v1.POST("/token/introspect", rateLimitMiddleware.Limit(), handlers.Token.Introspect)
		v1.GET("/selector", handlers.Selector.Options)
		v1.GET("/agent/persona", handlers.Agent.Persona)
	}

	return router
}
