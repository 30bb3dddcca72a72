package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/middleware"
)

// attendanceHandler handles HTTP requests related to attendance.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(attendanceService portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: attendanceService}
}

// registerAttendanceRoutes registers attendance specific routes.
func registerAttendanceRoutes(group *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	attendance := group.Group("/attendance")
	{
		attendance.GET("", h.listAttendance)
		attendance.POST("", h.upsertAttendance)
	}
}

func (h *attendanceHandler) upsertAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for upsertAttendance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	if err := h.attendanceService.UpsertAttendance(c.Request.Context(), req); err != nil {
		handleServiceError(c, logger, err, "Failed to record attendance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *attendanceHandler) listAttendance(c *gin.Context) {
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

	records, err := h.attendanceService.ListAttendance(c.Request.Context(), employeeID, month, year)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list attendance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponses(records))
}
