package services

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

// PaymentSvcFacade defines the service operations for employee payments.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
	GetPayment(ctx context.Context, paymentID int64) (*domain.Payment, error)
	ListPayments(ctx context.Context, employeeID *int64) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) error
	DeletePayment(ctx context.Context, paymentID int64) error
}
