package handler

import (
	"net/http"

	"agent_connect/internal/domain"
	"agent_connect/internal/service"
	apperrors "agent_connect/pkg/errors"
	"agent_connect/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	connectionService service.ConnectionService
	log               logger.Logger
}

func NewConnectionHandler(connectionService service.ConnectionService, log logger.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		connectionService: connectionService,
		log:               log,
	}
}

// ConnectionDetailsQuery - параметры GET /api/connection-details
type ConnectionDetailsQuery struct {
	RoomName        string `form:"roomName"`
	ParticipantName string `form:"participantName"`
	Metadata        string `form:"metadata"`
	Region          string `form:"region"`
}

// GetConnectionDetails выдает токен для подключения к комнате.
// Ошибки отдаются простым текстом: 400 без обязательных параметров, 500 иначе.
func (h *ConnectionHandler) GetConnectionDetails(c *gin.Context) {
	var query ConnectionDetailsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	details, err := h.connectionService.IssueConnection(c.Request.Context(), domain.ConnectionRequest{
		RoomName:        query.RoomName,
		ParticipantName: query.ParticipantName,
		Metadata:        query.Metadata,
		Region:          query.Region,
	})
	if err != nil {
		if apperrors.HTTPStatusFromError(err) >= http.StatusInternalServerError {
			h.log.Error("Failed to issue connection details", "error", err, "room", query.RoomName)
		}
		// ответ пишет middleware.ErrorHandler
		_ = c.Error(err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, details)
}
