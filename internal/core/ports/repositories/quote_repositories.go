package repositories

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// QuoteRepositoryFacade defines persistence operations for quotes.
type QuoteRepositoryFacade interface {
	SaveQuote(ctx context.Context, quote domain.Quote) (int64, error)
	FindQuotes(ctx context.Context, clientID *int64) ([]domain.Quote, error)
	UpdateQuoteStatus(ctx context.Context, quoteID int64, status domain.QuoteStatus) error
}
