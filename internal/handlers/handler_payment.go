package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/middleware"
)

// paymentHandler handles HTTP requests related to employee payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(paymentService portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

// registerPaymentRoutes registers payment specific routes.
func registerPaymentRoutes(group *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := group.Group("/payments")
	{
		payments.GET("", h.listPayments)
		payments.POST("", h.createPayment)
		payments.GET("/:paymentID", h.getPayment)
		payments.PUT("/:paymentID", h.updatePayment)
		payments.DELETE("/:paymentID", h.deletePayment)
	}
}

func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create payment")
		return
	}

	logger.Info("Payment created", slog.Int64("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	paymentID, ok := pathID(c, "paymentID")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to get payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := queryInt64(c, "employeeId")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), employeeID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

func (h *paymentHandler) updatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	paymentID, ok := pathID(c, "paymentID")
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	if err := h.paymentService.UpdatePayment(c.Request.Context(), paymentID, req); err != nil {
		handleServiceError(c, logger, err, "Failed to update payment")
		return
	}

	logger.Info("Payment updated", slog.Int64("payment_id", paymentID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	paymentID, ok := pathID(c, "paymentID")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		handleServiceError(c, logger, err, "Failed to delete payment")
		return
	}

	logger.Info("Payment deleted", slog.Int64("payment_id", paymentID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
