package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/platform/config"
	"github.com/tbensalah/gestion_chantier_app/internal/utils/billing"
)

const defaultValidityDays = 30

type quoteService struct {
	quoteRepo  portsrepo.QuoteRepositoryFacade
	clientRepo portsrepo.ClientRepositoryFacade
	cfg        *config.Config
}

// NewQuoteService creates the quote service. The config supplies the
// default tax rate applied when a request omits one.
func NewQuoteService(
	quoteRepo portsrepo.QuoteRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	cfg *config.Config,
) portssvc.QuoteSvcFacade {
	return &quoteService{quoteRepo: quoteRepo, clientRepo: clientRepo, cfg: cfg}
}

var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

func (s *quoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.Quote, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewAppError(400, "client does not exist", apperrors.ErrValidation)
		}
		return nil, err
	}

	articles := make([]domain.Article, len(req.Articles))
	for i, a := range req.Articles {
		articles[i] = domain.Article{
			Description: a.Description,
			Quantity:    a.Quantity,
			UnitPrice:   a.UnitPrice,
		}
	}
	// Server-side totals; any client-supplied figures are ignored.
	articles = billing.FillArticleTotals(articles)

	taxRate := decimal.NewFromFloat(s.cfg.DefaultTaxRate)
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, apperrors.NewAppError(400, "tax rate cannot be negative", apperrors.ErrValidation)
		}
		taxRate = *req.TaxRate
	}
	subtotal, taxAmount, total := billing.QuoteTotals(articles, taxRate)

	validityDays := defaultValidityDays
	if req.ValidityDays != nil && *req.ValidityDays > 0 {
		validityDays = *req.ValidityDays
	}

	quote := domain.Quote{
		ClientID:     req.ClientID,
		Title:        req.Title,
		Description:  req.Description,
		Articles:     articles,
		Subtotal:     subtotal,
		TaxAmount:    taxAmount,
		Total:        total,
		Status:       domain.QuoteStatusPending,
		ValidityDays: validityDays,
	}

	quoteID, err := s.quoteRepo.SaveQuote(ctx, quote)
	if err != nil {
		return nil, err
	}
	quote.QuoteID = quoteID
	quote.CreatedAt = time.Now()

	return &quote, nil
}

func (s *quoteService) ListQuotes(ctx context.Context, clientID *int64) ([]domain.Quote, error) {
	return s.quoteRepo.FindQuotes(ctx, clientID)
}

func (s *quoteService) UpdateQuoteStatus(ctx context.Context, req dto.UpdateQuoteStatusRequest) error {
	return s.quoteRepo.UpdateQuoteStatus(ctx, req.ID, domain.QuoteStatus(req.Status))
}
