package services

import (
	"context"
	"errors"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (int64, error) {
	invoice, lines, err := s.buildInvoice(ctx, req.ClientID, req.Description, req.Date, req.Lines)
	if err != nil {
		return 0, err
	}
	return s.invoiceRepo.SaveInvoice(ctx, invoice, lines)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID int64, req dto.UpdateInvoiceRequest) error {
	invoice, lines, err := s.buildInvoice(ctx, req.ClientID, req.Description, req.Date, req.Lines)
	if err != nil {
		return err
	}
	invoice.InvoiceID = invoiceID
	return s.invoiceRepo.UpdateInvoice(ctx, invoice, lines)
}

// buildInvoice validates the shared create/update payload and assembles the
// domain invoice with its line set.
func (s *invoiceService) buildInvoice(ctx context.Context, clientID int64, description, date string, reqLines *[]dto.InvoiceLineRequest) (domain.Invoice, []domain.InvoiceLine, error) {
	invoiceDate, err := parseDate(date)
	if err != nil {
		return domain.Invoice{}, nil, err
	}

	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		if isNotFound(err) {
			return domain.Invoice{}, nil, apperrors.NewAppError(400, "client does not exist", apperrors.ErrValidation)
		}
		return domain.Invoice{}, nil, err
	}

	lines := make([]domain.InvoiceLine, 0, len(*reqLines))
	for _, l := range *reqLines {
		if l.Quantity.IsNegative() || l.UnitPrice.IsNegative() {
			return domain.Invoice{}, nil, apperrors.NewAppError(400, "line quantity and unit price cannot be negative", apperrors.ErrValidation)
		}
		lines = append(lines, domain.InvoiceLine{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	invoice := domain.Invoice{
		ClientID:    clientID,
		Description: description,
		InvoiceDate: invoiceDate,
	}
	return invoice, lines, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	return s.invoiceRepo.DeleteInvoice(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, clientID *int64) ([]domain.Invoice, error) {
	return s.invoiceRepo.FindInvoices(ctx, clientID)
}

// isNotFound reports whether err stems from a missing resource.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
