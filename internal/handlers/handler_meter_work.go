package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/middleware"
)

// meterWorkHandler handles HTTP requests related to meter work.
type meterWorkHandler struct {
	meterWorkService portssvc.MeterWorkSvcFacade
}

func newMeterWorkHandler(meterWorkService portssvc.MeterWorkSvcFacade) *meterWorkHandler {
	return &meterWorkHandler{meterWorkService: meterWorkService}
}

// registerMeterWorkRoutes registers meter work specific routes.
func registerMeterWorkRoutes(group *gin.RouterGroup, meterWorkService portssvc.MeterWorkSvcFacade) {
	h := newMeterWorkHandler(meterWorkService)

	meterWork := group.Group("/meter-work")
	{
		meterWork.GET("", h.listMeterWork)
		meterWork.POST("", h.createMeterWork)
	}
}

func (h *meterWorkHandler) createMeterWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMeterWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createMeterWork", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	record, err := h.meterWorkService.CreateMeterWork(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to record meter work")
		return
	}

	logger.Info("Meter work recorded", slog.Int64("meter_work_id", record.MeterWorkID))
	c.JSON(http.StatusCreated, dto.ToMeterWorkResponse(record))
}

func (h *meterWorkHandler) listMeterWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := queryInt64(c, "employeeId")
	if !ok {
		return
	}
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	records, err := h.meterWorkService.ListMeterWork(c.Request.Context(), employeeID, month, year)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list meter work")
		return
	}

	c.JSON(http.StatusOK, dto.ToMeterWorkResponses(records))
}
