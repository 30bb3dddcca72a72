package repositories

import (
	"context"
	"time"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// AttendanceFilter narrows attendance listings. Nil fields are ignored;
// Month and Year only apply together.
type AttendanceFilter struct {
	EmployeeID *int64
	Month      *int
	Year       *int
}

// AttendanceRepositoryFacade defines persistence operations for attendance.
type AttendanceRepositoryFacade interface {
	// UpsertAttendance writes the present flag for (employee, date),
	// inserting or updating so that exactly one record exists per pair.
	UpsertAttendance(ctx context.Context, employeeID int64, workDate time.Time, present bool) error
	FindAttendance(ctx context.Context, filter AttendanceFilter) ([]domain.AttendanceRecord, error)
	FindAttendanceByEmployee(ctx context.Context, employeeID int64) ([]domain.AttendanceRecord, error)
}
