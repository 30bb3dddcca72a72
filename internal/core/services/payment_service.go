package services

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

type paymentService struct {
	paymentRepo  portsrepo.PaymentRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewPaymentService creates the employee payment service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo, employeeRepo: employeeRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "payment amount must be positive", apperrors.ErrValidation)
	}
	paymentType := domain.PaymentType(req.Type)
	if !paymentType.IsValid() {
		return nil, apperrors.NewAppError(400, "unknown payment type", apperrors.ErrValidation)
	}

	if _, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	payment := domain.Payment{
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Type:       paymentType,
		Note:       req.Note,
	}

	paymentID, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentService) GetPayment(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentService) ListPayments(ctx context.Context, employeeID *int64) ([]domain.Payment, error) {
	return s.paymentRepo.FindPayments(ctx, employeeID)
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) error {
	if !req.Amount.IsPositive() {
		return apperrors.NewAppError(400, "payment amount must be positive", apperrors.ErrValidation)
	}
	paymentType := domain.PaymentType(req.Type)
	if !paymentType.IsValid() {
		return apperrors.NewAppError(400, "unknown payment type", apperrors.ErrValidation)
	}

	existing, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}

	existing.Amount = req.Amount
	existing.Type = paymentType
	existing.Note = req.Note

	return s.paymentRepo.UpdatePayment(ctx, *existing)
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID int64) error {
	return s.paymentRepo.DeletePayment(ctx, paymentID)
}
