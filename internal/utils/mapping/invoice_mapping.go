package mapping

import (
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
)

// ToDomainInvoice converts a model Invoice to a domain Invoice (without children)
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.InvoiceID,
		ClientID:    m.ClientID,
		Description: m.Description,
		InvoiceDate: m.InvoiceDate,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainInvoiceLine converts a model InvoiceLine to a domain InvoiceLine
func ToDomainInvoiceLine(m models.InvoiceLine) domain.InvoiceLine {
	return domain.InvoiceLine{
		LineID:      m.LineID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
	}
}

// ToDomainInvoiceLineSlice converts model InvoiceLines to domain InvoiceLines
func ToDomainInvoiceLineSlice(ms []models.InvoiceLine) []domain.InvoiceLine {
	ds := make([]domain.InvoiceLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceLine(m)
	}
	return ds
}

// ToDomainInvoicePayment converts a model InvoicePayment to a domain InvoicePayment
func ToDomainInvoicePayment(m models.InvoicePayment) domain.InvoicePayment {
	return domain.InvoicePayment{
		PaymentID:   m.PaymentID,
		InvoiceID:   m.InvoiceID,
		Amount:      m.Amount,
		PaymentType: derefString(m.PaymentType),
		PaymentDate: m.PaymentDate,
		CreatedAt:   m.CreatedAt,
	}
}
