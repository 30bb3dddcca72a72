package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/utils/billing"
)

// MaterialDescriptionRequest is one cost entry submitted with a step.
type MaterialDescriptionRequest struct {
	Description string           `json:"description" binding:"required"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
}

// CreateMaterialStepRequest defines the payload for creating a material step
// with its descriptions.
type CreateMaterialStepRequest struct {
	ClientID     int64                        `json:"clientId" binding:"required"`
	Name         string                       `json:"name" binding:"required"`
	Descriptions []MaterialDescriptionRequest `json:"descriptions" binding:"required,dive"`
}

// UpdateMaterialStepRequest defines the payload for replacing a step name
// and its full description set.
type UpdateMaterialStepRequest struct {
	Name         string                       `json:"name" binding:"required"`
	Descriptions []MaterialDescriptionRequest `json:"descriptions" binding:"required,dive"`
}

// MaterialDescriptionResponse is one cost entry as returned to the caller.
type MaterialDescriptionResponse struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// MaterialStepResponse defines the data returned for a material step,
// enriched with its descriptions and recomputed total.
type MaterialStepResponse struct {
	ID           int64                         `json:"id"`
	ClientID     int64                         `json:"clientId"`
	Name         string                        `json:"name"`
	Descriptions []MaterialDescriptionResponse `json:"descriptions"`
	Total        decimal.Decimal               `json:"total"`
	CreatedAt    time.Time                     `json:"createdAt"`
}

// ToMaterialStepResponse converts a domain.MaterialStep to its DTO.
func ToMaterialStepResponse(s *domain.MaterialStep) MaterialStepResponse {
	descriptions := make([]MaterialDescriptionResponse, len(s.Descriptions))
	for i, d := range s.Descriptions {
		descriptions[i] = MaterialDescriptionResponse{
			ID:          d.DescriptionID,
			Description: d.Description,
			Quantity:    d.Quantity,
			Price:       d.Price,
		}
	}
	return MaterialStepResponse{
		ID:           s.StepID,
		ClientID:     s.ClientID,
		Name:         s.Name,
		Descriptions: descriptions,
		Total:        billing.MaterialStepTotal(s.Descriptions),
		CreatedAt:    s.CreatedAt,
	}
}

// ToMaterialStepResponses converts a slice of domain.MaterialStep to DTOs.
func ToMaterialStepResponses(steps []domain.MaterialStep) []MaterialStepResponse {
	responses := make([]MaterialStepResponse, len(steps))
	for i, s := range steps {
		responses[i] = ToMaterialStepResponse(&s)
	}
	return responses
}
