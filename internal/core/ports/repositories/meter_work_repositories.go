package repositories

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// MeterWorkFilter narrows meter work listings. Nil fields are ignored;
// Month and Year only apply together.
type MeterWorkFilter struct {
	EmployeeID *int64
	Month      *int
	Year       *int
}

// MeterWorkRepositoryFacade defines persistence operations for meter work.
type MeterWorkRepositoryFacade interface {
	SaveMeterWork(ctx context.Context, record domain.MeterWorkRecord) (int64, error)
	FindMeterWork(ctx context.Context, filter MeterWorkFilter) ([]domain.MeterWorkRecord, error)
	FindMeterWorkByEmployee(ctx context.Context, employeeID int64) ([]domain.MeterWorkRecord, error)
}
