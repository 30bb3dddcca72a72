package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/utils/billing"
)

// InvoiceLineRequest is one line submitted with an invoice.
type InvoiceLineRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateInvoiceRequest defines the payload for creating an invoice with its
// lines. Lines is a pointer so that an explicitly empty list passes the
// required check while a missing field does not.
type CreateInvoiceRequest struct {
	ClientID    int64                 `json:"clientId" binding:"required"`
	Description string                `json:"description" binding:"required"`
	Date        string                `json:"date" binding:"required"`
	Lines       *[]InvoiceLineRequest `json:"lines" binding:"required,dive"`
}

// UpdateInvoiceRequest defines the payload for replacing an invoice and its
// full line set.
type UpdateInvoiceRequest struct {
	ClientID    int64                 `json:"clientId" binding:"required"`
	Description string                `json:"description" binding:"required"`
	Date        string                `json:"date" binding:"required"`
	Lines       *[]InvoiceLineRequest `json:"lines" binding:"required,dive"`
}

// InvoiceLineResponse is one invoice line with its derived total.
type InvoiceLineResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// InvoicePaymentResponse is one payment received against an invoice.
type InvoicePaymentResponse struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"paymentType,omitempty"`
	PaymentDate *time.Time      `json:"paymentDate,omitempty"`
}

// InvoiceResponse defines the data returned for an invoice, enriched with
// its lines, payments and recomputed total.
type InvoiceResponse struct {
	ID          int64                    `json:"id"`
	ClientID    int64                    `json:"clientId"`
	Description string                   `json:"description"`
	Date        string                   `json:"date"`
	Lines       []InvoiceLineResponse    `json:"lines"`
	Payments    []InvoicePaymentResponse `json:"payments"`
	Total       decimal.Decimal          `json:"total"`
	CreatedAt   time.Time                `json:"createdAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO,
// deriving line totals and the invoice total.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, len(inv.Lines))
	for i, l := range inv.Lines {
		lines[i] = InvoiceLineResponse{
			ID:          l.LineID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Total:       billing.LineTotal(l.Quantity, l.UnitPrice),
		}
	}
	payments := make([]InvoicePaymentResponse, len(inv.Payments))
	for i, p := range inv.Payments {
		payments[i] = InvoicePaymentResponse{
			ID:          p.PaymentID,
			Amount:      p.Amount,
			PaymentType: p.PaymentType,
			PaymentDate: p.PaymentDate,
		}
	}
	return InvoiceResponse{
		ID:          inv.InvoiceID,
		ClientID:    inv.ClientID,
		Description: inv.Description,
		Date:        inv.InvoiceDate.Format("2006-01-02"),
		Lines:       lines,
		Payments:    payments,
		Total:       billing.InvoiceTotal(inv.Lines),
		CreatedAt:   inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain.Invoice to []InvoiceResponse.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		responses[i] = ToInvoiceResponse(&inv)
	}
	return responses
}
