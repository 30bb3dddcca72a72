package mapping

import (
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
)

// ToDomainMaterialStep converts a model MaterialStep to a domain MaterialStep (without children)
func ToDomainMaterialStep(m models.MaterialStep) domain.MaterialStep {
	return domain.MaterialStep{
		StepID:    m.StepID,
		ClientID:  m.ClientID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainMaterialDescription converts a model MaterialDescription to a domain one
func ToDomainMaterialDescription(m models.MaterialDescription) domain.MaterialDescription {
	return domain.MaterialDescription{
		DescriptionID: m.DescriptionID,
		StepID:        m.StepID,
		Description:   m.Description,
		Quantity:      m.Quantity,
		Price:         m.Price,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainMaterialDescriptionSlice converts model MaterialDescriptions to domain ones
func ToDomainMaterialDescriptionSlice(ms []models.MaterialDescription) []domain.MaterialDescription {
	ds := make([]domain.MaterialDescription, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMaterialDescription(m)
	}
	return ds
}
