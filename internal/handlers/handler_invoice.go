package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(invoiceService portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: invoiceService}
}

// registerInvoiceRoutes registers invoice specific routes.
func registerInvoiceRoutes(group *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := group.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.createInvoice)
		invoices.PUT("/:invoiceID", h.updateInvoice)
		invoices.DELETE("/:invoiceID", h.deleteInvoice)
	}
}

func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	invoiceID, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created", slog.Int64("invoice_id", invoiceID))
	c.JSON(http.StatusCreated, gin.H{"id": invoiceID})
}

func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoiceID, ok := pathID(c, "invoiceID")
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	if err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, req); err != nil {
		handleServiceError(c, logger, err, "Failed to update invoice")
		return
	}

	logger.Info("Invoice updated", slog.Int64("invoice_id", invoiceID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoiceID, ok := pathID(c, "invoiceID")
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		handleServiceError(c, logger, err, "Failed to delete invoice")
		return
	}

	logger.Info("Invoice deleted", slog.Int64("invoice_id", invoiceID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clientID, ok := queryInt64(c, "clientId")
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), clientID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list invoices")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}
