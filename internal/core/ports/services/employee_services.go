package services

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

// EmployeeHistory bundles an employee with their pay history; exactly one
// of Attendance or MeterWork is populated depending on the employee type.
type EmployeeHistory struct {
	Employee   domain.Employee
	Attendance []domain.AttendanceRecord
	MeterWork  []domain.MeterWorkRecord
}

// EmployeeSvcFacade defines the service operations for employees, including
// the derived payroll figures.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	ListEmployees(ctx context.Context, employeeType string) ([]domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID int64) error
	GetEmployeeHistory(ctx context.Context, employeeID int64) (*EmployeeHistory, error)
	GetEmployeeBalance(ctx context.Context, employeeID int64) (*domain.PayrollSummary, error)
}
