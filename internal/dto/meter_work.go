package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// CreateMeterWorkRequest defines the payload for recording meter work.
type CreateMeterWorkRequest struct {
	EmployeeID    int64           `json:"employeeId" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	Meters        decimal.Decimal `json:"meters" binding:"required"`
	PricePerMeter decimal.Decimal `json:"pricePerMeter" binding:"required"`
}

// MeterWorkResponse defines the data returned for a meter work record.
type MeterWorkResponse struct {
	ID            int64           `json:"id"`
	EmployeeID    int64           `json:"employeeId"`
	Date          string          `json:"date"`
	Meters        decimal.Decimal `json:"meters"`
	PricePerMeter decimal.Decimal `json:"pricePerMeter"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToMeterWorkResponse converts a domain.MeterWorkRecord to its DTO.
func ToMeterWorkResponse(r *domain.MeterWorkRecord) MeterWorkResponse {
	return MeterWorkResponse{
		ID:            r.MeterWorkID,
		EmployeeID:    r.EmployeeID,
		Date:          r.WorkDate.Format("2006-01-02"),
		Meters:        r.Meters,
		PricePerMeter: r.PricePerMeter,
		Total:         r.Total,
		CreatedAt:     r.CreatedAt,
	}
}

// ToMeterWorkResponses converts a slice of domain.MeterWorkRecord to DTOs.
func ToMeterWorkResponses(records []domain.MeterWorkRecord) []MeterWorkResponse {
	responses := make([]MeterWorkResponse, len(records))
	for i, r := range records {
		responses[i] = ToMeterWorkResponse(&r)
	}
	return responses
}
