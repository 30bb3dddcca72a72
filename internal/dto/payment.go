package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// CreatePaymentRequest defines the payload for recording an employee payment.
type CreatePaymentRequest struct {
	EmployeeID int64           `json:"employeeId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Type       string          `json:"type" binding:"required,oneof=advance salary"`
	Note       string          `json:"note"`
}

// UpdatePaymentRequest defines the payload for amending a payment.
type UpdatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Type   string          `json:"type" binding:"required,oneof=advance salary"`
	Note   string          `json:"note"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID                int64           `json:"id"`
	EmployeeID        int64           `json:"employeeId"`
	EmployeeLastName  string          `json:"employeeLastName,omitempty"`
	EmployeeFirstName string          `json:"employeeFirstName,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Type              string          `json:"type"`
	Note              string          `json:"note,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.PaymentID,
		EmployeeID:        p.EmployeeID,
		EmployeeLastName:  p.EmployeeLastName,
		EmployeeFirstName: p.EmployeeFirstName,
		Amount:            p.Amount,
		Type:              string(p.Type),
		Note:              p.Note,
		CreatedAt:         p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(&p)
	}
	return responses
}
