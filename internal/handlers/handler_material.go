package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/middleware"
)

// materialHandler handles HTTP requests related to material steps.
type materialHandler struct {
	materialService portssvc.MaterialSvcFacade
}

func newMaterialHandler(materialService portssvc.MaterialSvcFacade) *materialHandler {
	return &materialHandler{materialService: materialService}
}

// registerMaterialRoutes registers material step specific routes.
func registerMaterialRoutes(group *gin.RouterGroup, materialService portssvc.MaterialSvcFacade) {
	h := newMaterialHandler(materialService)

	materials := group.Group("/materials")
	{
		materials.GET("", h.listSteps)
		materials.POST("", h.createStep)
		materials.PUT("/:stepID", h.updateStep)
		materials.DELETE("/:stepID", h.deleteStep)
	}
}

func (h *materialHandler) createStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMaterialStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createStep", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	stepID, err := h.materialService.CreateStep(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create material step")
		return
	}

	logger.Info("Material step created", slog.Int64("step_id", stepID))
	c.JSON(http.StatusCreated, gin.H{"id": stepID})
}

func (h *materialHandler) updateStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stepID, ok := pathID(c, "stepID")
	if !ok {
		return
	}

	var req dto.UpdateMaterialStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateStep", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	if err := h.materialService.UpdateStep(c.Request.Context(), stepID, req); err != nil {
		handleServiceError(c, logger, err, "Failed to update material step")
		return
	}

	logger.Info("Material step updated", slog.Int64("step_id", stepID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *materialHandler) deleteStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stepID, ok := pathID(c, "stepID")
	if !ok {
		return
	}

	if err := h.materialService.DeleteStep(c.Request.Context(), stepID); err != nil {
		handleServiceError(c, logger, err, "Failed to delete material step")
		return
	}

	logger.Info("Material step deleted", slog.Int64("step_id", stepID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *materialHandler) listSteps(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clientID, ok := queryInt64(c, "clientId")
	if !ok {
		return
	}
	if clientID == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "clientId is required"})
		return
	}

	steps, err := h.materialService.ListSteps(c.Request.Context(), *clientID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list material steps")
		return
	}

	c.JSON(http.StatusOK, dto.ToMaterialStepResponses(steps))
}
