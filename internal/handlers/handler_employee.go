package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/middleware"
)

// employeeHandler handles HTTP requests related to employees and their
// derived payroll figures.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(employeeService portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: employeeService}
}

// registerEmployeeRoutes registers employee specific routes.
func registerEmployeeRoutes(group *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := group.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.DELETE("/:employeeID", h.deleteEmployee)
		employees.GET("/:employeeID/history", h.getEmployeeHistory)
		employees.GET("/:employeeID/balance", h.getEmployeeBalance)
	}
}

func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.Int64("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), c.Query("type"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		handleServiceError(c, logger, err, "Failed to delete employee")
		return
	}

	logger.Info("Employee deleted", slog.Int64("employee_id", employeeID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *employeeHandler) getEmployeeHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}

	history, err := h.employeeService.GetEmployeeHistory(c.Request.Context(), employeeID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to get employee history")
		return
	}

	resp := dto.EmployeeHistoryResponse{
		Employee:  dto.ToEmployeeResponse(&history.Employee),
		History:   dto.ToAttendanceResponses(history.Attendance),
		MeterWork: dto.ToMeterWorkResponses(history.MeterWork),
	}
	c.JSON(http.StatusOK, resp)
}

func (h *employeeHandler) getEmployeeBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}

	summary, err := h.employeeService.GetEmployeeBalance(c.Request.Context(), employeeID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to get employee balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeBalanceResponse(*summary))
}
