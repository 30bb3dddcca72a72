package services

import (
	"context"
	"time"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/utils/billing"
)

type attendanceService struct {
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	employeeRepo   portsrepo.EmployeeRepositoryFacade
}

// NewAttendanceService creates the attendance service.
func NewAttendanceService(
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
) portssvc.AttendanceSvcFacade {
	return &attendanceService{attendanceRepo: attendanceRepo, employeeRepo: employeeRepo}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

func (s *attendanceService) UpsertAttendance(ctx context.Context, req dto.UpsertAttendanceRequest) error {
	workDate, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	if _, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID); err != nil {
		return err
	}

	return s.attendanceRepo.UpsertAttendance(ctx, req.EmployeeID, workDate, *req.Present)
}

func (s *attendanceService) ListAttendance(ctx context.Context, employeeID *int64, month, year *int) ([]domain.AttendanceRecord, error) {
	if err := checkMonthYear(month, year); err != nil {
		return nil, err
	}
	return s.attendanceRepo.FindAttendance(ctx, portsrepo.AttendanceFilter{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
	})
}

type meterWorkService struct {
	meterWorkRepo portsrepo.MeterWorkRepositoryFacade
	employeeRepo  portsrepo.EmployeeRepositoryFacade
}

// NewMeterWorkService creates the meter work service.
func NewMeterWorkService(
	meterWorkRepo portsrepo.MeterWorkRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
) portssvc.MeterWorkSvcFacade {
	return &meterWorkService{meterWorkRepo: meterWorkRepo, employeeRepo: employeeRepo}
}

var _ portssvc.MeterWorkSvcFacade = (*meterWorkService)(nil)

func (s *meterWorkService) CreateMeterWork(ctx context.Context, req dto.CreateMeterWorkRequest) (*domain.MeterWorkRecord, error) {
	workDate, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !req.Meters.IsPositive() || !req.PricePerMeter.IsPositive() {
		return nil, apperrors.NewAppError(400, "meters and price per meter must be positive", apperrors.ErrValidation)
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee.Type != domain.EmployeeTypeMeter {
		return nil, apperrors.NewAppError(400, "meter work only applies to meter employees", apperrors.ErrValidation)
	}

	record := domain.MeterWorkRecord{
		EmployeeID:    req.EmployeeID,
		WorkDate:      workDate,
		Meters:        req.Meters,
		PricePerMeter: req.PricePerMeter,
	}
	// Snapshot the total at creation time.
	record.Total = billing.MeterWorkTotal(record)

	recordID, err := s.meterWorkRepo.SaveMeterWork(ctx, record)
	if err != nil {
		return nil, err
	}
	record.MeterWorkID = recordID
	record.CreatedAt = time.Now()

	return &record, nil
}

func (s *meterWorkService) ListMeterWork(ctx context.Context, employeeID *int64, month, year *int) ([]domain.MeterWorkRecord, error) {
	if err := checkMonthYear(month, year); err != nil {
		return nil, err
	}
	return s.meterWorkRepo.FindMeterWork(ctx, portsrepo.MeterWorkFilter{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
	})
}

// checkMonthYear enforces that month and year filters come as a pair.
func checkMonthYear(month, year *int) error {
	if (month == nil) != (year == nil) {
		return apperrors.NewAppError(400, "month and year filters must be provided together", apperrors.ErrValidation)
	}
	if month != nil && (*month < 1 || *month > 12) {
		return apperrors.NewAppError(400, "month must be between 1 and 12", apperrors.ErrValidation)
	}
	return nil
}
