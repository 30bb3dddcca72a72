package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/middleware"
)

// quoteHandler handles HTTP requests related to quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(quoteService portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: quoteService}
}

// registerQuoteRoutes registers quote specific routes.
func registerQuoteRoutes(group *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := group.Group("/quotes")
	{
		quotes.GET("", h.listQuotes)
		quotes.POST("", h.createQuote)
		quotes.PATCH("/:quoteID/status", h.updateQuoteStatus)
	}
}

func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create quote")
		return
	}

	logger.Info("Quote created", slog.Int64("quote_id", quote.QuoteID))
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

func (h *quoteHandler) listQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clientID, ok := queryInt64(c, "clientId")
	if !ok {
		return
	}

	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), clientID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list quotes")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponses(quotes))
}

func (h *quoteHandler) updateQuoteStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quoteID, ok := pathID(c, "quoteID")
	if !ok {
		return
	}

	// The path carries the ID; the body only names the new status.
	var body struct {
		Status string `json:"status" binding:"required,oneof=pending accepted refused"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.Warn("Failed to bind JSON for updateQuoteStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}
	req := dto.UpdateQuoteStatusRequest{ID: quoteID, Status: body.Status}

	if err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), req); err != nil {
		handleServiceError(c, logger, err, "Failed to update quote status")
		return
	}

	logger.Info("Quote status updated", slog.Int64("quote_id", quoteID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
