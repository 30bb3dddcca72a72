package services

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

// QuoteSvcFacade defines the service operations for quotes.
type QuoteSvcFacade interface {
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.Quote, error)
	ListQuotes(ctx context.Context, clientID *int64) ([]domain.Quote, error)
	UpdateQuoteStatus(ctx context.Context, req dto.UpdateQuoteStatusRequest) error
}

// InvoiceSvcFacade defines the service operations for invoices.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (int64, error)
	UpdateInvoice(ctx context.Context, invoiceID int64, req dto.UpdateInvoiceRequest) error
	DeleteInvoice(ctx context.Context, invoiceID int64) error
	ListInvoices(ctx context.Context, clientID *int64) ([]domain.Invoice, error)
}

// MaterialSvcFacade defines the service operations for material steps.
type MaterialSvcFacade interface {
	CreateStep(ctx context.Context, req dto.CreateMaterialStepRequest) (int64, error)
	UpdateStep(ctx context.Context, stepID int64, req dto.UpdateMaterialStepRequest) error
	DeleteStep(ctx context.Context, stepID int64) error
	ListSteps(ctx context.Context, clientID int64) ([]domain.MaterialStep, error)
}
