package repositories

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// PaymentRepositoryFacade defines persistence operations for employee payments.
type PaymentRepositoryFacade interface {
	SavePayment(ctx context.Context, payment domain.Payment) (int64, error)
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)
	FindPayments(ctx context.Context, employeeID *int64) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, payment domain.Payment) error
	DeletePayment(ctx context.Context, paymentID int64) error
}
