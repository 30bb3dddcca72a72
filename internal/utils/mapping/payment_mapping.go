package mapping

import (
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
)

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:         m.PaymentID,
		EmployeeID:        m.EmployeeID,
		Amount:            m.Amount,
		Type:              domain.PaymentType(m.Type),
		Note:              derefString(m.Note),
		CreatedAt:         m.CreatedAt,
		EmployeeLastName:  derefString(m.EmployeeLastName),
		EmployeeFirstName: derefString(m.EmployeeFirstName),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
