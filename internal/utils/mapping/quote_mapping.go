package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
)

// ToDomainQuote converts a model Quote to a domain Quote, deserializing the
// stored articles list.
func ToDomainQuote(m models.Quote) (domain.Quote, error) {
	articles := []domain.Article{}
	if len(m.Articles) > 0 {
		if err := json.Unmarshal(m.Articles, &articles); err != nil {
			return domain.Quote{}, fmt.Errorf("failed to decode articles for quote %d: %w", m.QuoteID, err)
		}
	}
	return domain.Quote{
		QuoteID:         m.QuoteID,
		ClientID:        m.ClientID,
		Title:           m.Title,
		Description:     m.Description,
		Articles:        articles,
		Subtotal:        m.Subtotal,
		TaxAmount:       m.TaxAmount,
		Total:           m.Total,
		Status:          domain.QuoteStatus(m.Status),
		ValidityDays:    m.ValidityDays,
		CreatedAt:       m.CreatedAt,
		ClientLastName:  derefString(m.ClientLastName),
		ClientFirstName: derefString(m.ClientFirstName),
	}, nil
}

// ToModelQuote converts a domain Quote to a model Quote, serializing the
// articles list for the jsonb column.
func ToModelQuote(d domain.Quote) (models.Quote, error) {
	articles, err := json.Marshal(d.Articles)
	if err != nil {
		return models.Quote{}, fmt.Errorf("failed to encode articles: %w", err)
	}
	return models.Quote{
		QuoteID:      d.QuoteID,
		ClientID:     d.ClientID,
		Title:        d.Title,
		Description:  d.Description,
		Articles:     articles,
		Subtotal:     d.Subtotal,
		TaxAmount:    d.TaxAmount,
		Total:        d.Total,
		Status:       string(d.Status),
		ValidityDays: d.ValidityDays,
		CreatedAt:    d.CreatedAt,
	}, nil
}
