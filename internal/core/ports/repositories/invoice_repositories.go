package repositories

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// InvoiceRepositoryFacade defines persistence operations for invoices and
// their lines. Save and Update run as a single database transaction; a
// failure at any step leaves no partial invoice or orphan lines behind.
type InvoiceRepositoryFacade interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) (int64, error)
	// UpdateInvoice replaces the invoice row and its whole line set.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) error
	DeleteInvoice(ctx context.Context, invoiceID int64) error
	FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error)
	// FindInvoices returns invoices newest first, each with its lines and
	// payments attached.
	FindInvoices(ctx context.Context, clientID *int64) ([]domain.Invoice, error)
}
