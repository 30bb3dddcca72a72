package repositories

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// EmployeeRepositoryFacade defines persistence operations for employees.
type EmployeeRepositoryFacade interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) (int64, error)
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)
	FindEmployees(ctx context.Context, employeeType *domain.EmployeeType) ([]domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID int64) error
}
