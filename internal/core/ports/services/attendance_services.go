package services

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

// AttendanceSvcFacade defines the service operations for attendance.
type AttendanceSvcFacade interface {
	UpsertAttendance(ctx context.Context, req dto.UpsertAttendanceRequest) error
	ListAttendance(ctx context.Context, employeeID *int64, month, year *int) ([]domain.AttendanceRecord, error)
}

// MeterWorkSvcFacade defines the service operations for meter work.
type MeterWorkSvcFacade interface {
	CreateMeterWork(ctx context.Context, req dto.CreateMeterWorkRequest) (*domain.MeterWorkRecord, error)
	ListMeterWork(ctx context.Context, employeeID *int64, month, year *int) ([]domain.MeterWorkRecord, error)
}
