package services

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/utils/billing"
)

type employeeService struct {
	employeeRepo   portsrepo.EmployeeRepositoryFacade
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	meterWorkRepo  portsrepo.MeterWorkRepositoryFacade
	paymentRepo    portsrepo.PaymentRepositoryFacade
}

// NewEmployeeService creates the employee service. Attendance, meter work
// and payment repositories feed the derived history and balance reads.
func NewEmployeeService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
	meterWorkRepo portsrepo.MeterWorkRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		meterWorkRepo:  meterWorkRepo,
		paymentRepo:    paymentRepo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	employee := domain.Employee{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Phone:     req.Phone,
		Type:      domain.EmployeeType(req.Type),
	}

	switch employee.Type {
	case domain.EmployeeTypeDaily:
		if req.DailyRate == nil || !req.DailyRate.IsPositive() {
			return nil, apperrors.NewAppError(400, "daily employees require a positive daily rate", apperrors.ErrValidation)
		}
		employee.DailyRate = req.DailyRate
	case domain.EmployeeTypeMeter:
		// Meter employees are paid per work record; a daily rate is meaningless.
		employee.DailyRate = nil
	default:
		return nil, apperrors.NewAppError(400, "unknown employee type", apperrors.ErrValidation)
	}

	employeeID, err := s.employeeRepo.SaveEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}

	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

func (s *employeeService) ListEmployees(ctx context.Context, employeeType string) ([]domain.Employee, error) {
	var filter *domain.EmployeeType
	if employeeType != "" {
		t := domain.EmployeeType(employeeType)
		if t != domain.EmployeeTypeDaily && t != domain.EmployeeTypeMeter {
			return nil, apperrors.NewAppError(400, "unknown employee type filter", apperrors.ErrValidation)
		}
		filter = &t
	}
	return s.employeeRepo.FindEmployees(ctx, filter)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	return s.employeeRepo.DeleteEmployee(ctx, employeeID)
}

func (s *employeeService) GetEmployeeHistory(ctx context.Context, employeeID int64) (*portssvc.EmployeeHistory, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	history := &portssvc.EmployeeHistory{Employee: *employee}
	switch employee.Type {
	case domain.EmployeeTypeDaily:
		history.Attendance, err = s.attendanceRepo.FindAttendanceByEmployee(ctx, employeeID)
	case domain.EmployeeTypeMeter:
		history.MeterWork, err = s.meterWorkRepo.FindMeterWorkByEmployee(ctx, employeeID)
	}
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (s *employeeService) GetEmployeeBalance(ctx context.Context, employeeID int64) (*domain.PayrollSummary, error) {
	history, err := s.GetEmployeeHistory(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindPayments(ctx, &employeeID)
	if err != nil {
		return nil, err
	}

	earned := billing.EarnedToDate(history.Employee, history.Attendance, history.MeterWork)
	return &domain.PayrollSummary{
		EmployeeID: employeeID,
		Earned:     earned,
		Paid:       billing.PaymentsTotal(payments),
		Balance:    billing.BalanceDue(earned, payments),
	}, nil
}
