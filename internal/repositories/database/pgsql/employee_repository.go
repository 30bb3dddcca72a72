package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
	"github.com/tbensalah/gestion_chantier_app/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

// SaveEmployee inserts an employee and returns its new ID.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (int64, error) {
	query := `
		INSERT INTO employees (last_name, first_name, phone, type, daily_rate)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var employeeID int64
	err := r.Pool.QueryRow(ctx, query,
		employee.LastName,
		employee.FirstName,
		nullIfEmpty(employee.Phone),
		string(employee.Type),
		employee.DailyRate,
	).Scan(&employeeID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert employee", err)
	}
	return employeeID, nil
}

// FindEmployeeByID retrieves an employee by its ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	query := `
		SELECT id, last_name, first_name, phone, type, daily_rate, created_at
		FROM employees
		WHERE id = $1;
	`
	var m models.Employee
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&m.EmployeeID,
		&m.LastName,
		&m.FirstName,
		&m.Phone,
		&m.Type,
		&m.DailyRate,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee by ID", err)
	}

	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

// FindEmployees retrieves employees, optionally filtered by type.
func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context, employeeType *domain.EmployeeType) ([]domain.Employee, error) {
	query := `
		SELECT id, last_name, first_name, phone, type, daily_rate, created_at
		FROM employees
	`
	args := []interface{}{}
	if employeeType != nil {
		query += ` WHERE type = $1`
		args = append(args, string(*employeeType))
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employees", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var m models.Employee
		if err := rows.Scan(
			&m.EmployeeID,
			&m.LastName,
			&m.FirstName,
			&m.Phone,
			&m.Type,
			&m.DailyRate,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		employees = append(employees, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}

	return mapping.ToDomainEmployeeSlice(employees), nil
}

// DeleteEmployee removes an employee; attendance, meter work and payments
// are cascade-deleted with it.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE id = $1;`, employeeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete employee", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("employee not found for delete")
	}
	return nil
}
