package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/middleware"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(clientService portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: clientService}
}

// registerClientRoutes registers client specific routes.
func registerClientRoutes(group *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := group.Group("/clients")
	{
		clients.GET("", h.listClients)
		clients.POST("", h.createClient)
	}
}

func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create client")
		return
	}

	logger.Info("Client created", slog.Int64("client_id", client.ClientID))
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list clients")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponses(clients))
}
