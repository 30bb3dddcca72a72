package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// ArticleRequest is one line item submitted with a quote. The server
// computes the line total; any client-supplied total is ignored.
type ArticleRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateQuoteRequest defines the payload for creating a quote. TaxRate is a
// percentage; when omitted the configured default applies.
type CreateQuoteRequest struct {
	ClientID     int64            `json:"clientId" binding:"required"`
	Title        string           `json:"title" binding:"required"`
	Description  string           `json:"description"`
	Articles     []ArticleRequest `json:"articles" binding:"required,min=1,dive"`
	TaxRate      *decimal.Decimal `json:"taxRate"`
	ValidityDays *int             `json:"validityDays"`
}

// UpdateQuoteStatusRequest defines the payload for changing a quote status.
type UpdateQuoteStatusRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,oneof=pending accepted refused"`
}

// ArticleResponse is one line item of a quote as returned to the caller.
type ArticleResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	ID              int64             `json:"id"`
	ClientID        int64             `json:"clientId"`
	ClientLastName  string            `json:"clientLastName,omitempty"`
	ClientFirstName string            `json:"clientFirstName,omitempty"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Articles        []ArticleResponse `json:"articles"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	TaxAmount       decimal.Decimal   `json:"taxAmount"`
	Total           decimal.Decimal   `json:"total"`
	Status          string            `json:"status"`
	ValidityDays    int               `json:"validityDays"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO.
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	articles := make([]ArticleResponse, len(q.Articles))
	for i, a := range q.Articles {
		articles[i] = ArticleResponse{
			Description: a.Description,
			Quantity:    a.Quantity,
			UnitPrice:   a.UnitPrice,
			Total:       a.Total,
		}
	}
	return QuoteResponse{
		ID:              q.QuoteID,
		ClientID:        q.ClientID,
		ClientLastName:  q.ClientLastName,
		ClientFirstName: q.ClientFirstName,
		Title:           q.Title,
		Description:     q.Description,
		Articles:        articles,
		Subtotal:        q.Subtotal,
		TaxAmount:       q.TaxAmount,
		Total:           q.Total,
		Status:          string(q.Status),
		ValidityDays:    q.ValidityDays,
		CreatedAt:       q.CreatedAt,
	}
}

// ToQuoteResponses converts a slice of domain.Quote to []QuoteResponse.
func ToQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	responses := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		responses[i] = ToQuoteResponse(&q)
	}
	return responses
}
