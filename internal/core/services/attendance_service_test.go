package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/core/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

func boolPtr(b bool) *bool { return &b }

func TestUpsertAttendance(t *testing.T) {
	attendanceRepo := new(MockAttendanceRepository)
	employeeRepo := new(MockEmployeeRepository)
	svc := services.NewAttendanceService(attendanceRepo, employeeRepo)

	employeeRepo.On("FindEmployeeByID", mock.Anything, int64(1)).
		Return(&domain.Employee{EmployeeID: 1, Type: domain.EmployeeTypeDaily}, nil)
	attendanceRepo.On("UpsertAttendance", mock.Anything, int64(1),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), false).Return(nil)

	err := svc.UpsertAttendance(context.Background(), dto.UpsertAttendanceRequest{
		EmployeeID: 1,
		Date:       "2025-03-10",
		Present:    boolPtr(false),
	})

	require.NoError(t, err)
	attendanceRepo.AssertExpectations(t)
}

func TestUpsertAttendance_UnknownEmployee(t *testing.T) {
	attendanceRepo := new(MockAttendanceRepository)
	employeeRepo := new(MockEmployeeRepository)
	svc := services.NewAttendanceService(attendanceRepo, employeeRepo)

	employeeRepo.On("FindEmployeeByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound)

	err := svc.UpsertAttendance(context.Background(), dto.UpsertAttendanceRequest{
		EmployeeID: 99,
		Date:       "2025-03-10",
		Present:    boolPtr(true),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	attendanceRepo.AssertNotCalled(t, "UpsertAttendance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListAttendance_MonthWithoutYearRejected(t *testing.T) {
	svc := services.NewAttendanceService(new(MockAttendanceRepository), new(MockEmployeeRepository))

	month := 3
	_, err := svc.ListAttendance(context.Background(), nil, &month, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateMeterWork_SnapshotsTotal(t *testing.T) {
	meterWorkRepo := new(MockMeterWorkRepository)
	employeeRepo := new(MockEmployeeRepository)
	svc := services.NewMeterWorkService(meterWorkRepo, employeeRepo)

	employeeRepo.On("FindEmployeeByID", mock.Anything, int64(2)).
		Return(&domain.Employee{EmployeeID: 2, Type: domain.EmployeeTypeMeter}, nil)
	meterWorkRepo.On("SaveMeterWork", mock.Anything, mock.MatchedBy(func(r domain.MeterWorkRecord) bool {
		return r.Total.Equal(decimal.NewFromInt(96))
	})).Return(int64(7), nil)

	record, err := svc.CreateMeterWork(context.Background(), dto.CreateMeterWorkRequest{
		EmployeeID:    2,
		Date:          "2025-03-12",
		Meters:        decimal.NewFromInt(12),
		PricePerMeter: decimal.NewFromInt(8),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), record.MeterWorkID)
	assert.True(t, record.Total.Equal(decimal.NewFromInt(96)))
}

func TestCreateMeterWork_DailyEmployeeRejected(t *testing.T) {
	meterWorkRepo := new(MockMeterWorkRepository)
	employeeRepo := new(MockEmployeeRepository)
	svc := services.NewMeterWorkService(meterWorkRepo, employeeRepo)

	employeeRepo.On("FindEmployeeByID", mock.Anything, int64(1)).
		Return(&domain.Employee{EmployeeID: 1, Type: domain.EmployeeTypeDaily}, nil)

	_, err := svc.CreateMeterWork(context.Background(), dto.CreateMeterWorkRequest{
		EmployeeID:    1,
		Date:          "2025-03-12",
		Meters:        decimal.NewFromInt(12),
		PricePerMeter: decimal.NewFromInt(8),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	meterWorkRepo.AssertNotCalled(t, "SaveMeterWork", mock.Anything, mock.Anything)
}
