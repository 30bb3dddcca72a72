package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
	"github.com/tbensalah/gestion_chantier_app/internal/utils/mapping"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates a new repository for attendance data.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

// UpsertAttendance writes the present flag for (employee, date). The unique
// constraint on (employee_id, work_date) makes repeated writes converge on a
// single row.
func (r *PgxAttendanceRepository) UpsertAttendance(ctx context.Context, employeeID int64, workDate time.Time, present bool) error {
	query := `
		INSERT INTO attendance (employee_id, work_date, present)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, work_date)
		DO UPDATE SET present = EXCLUDED.present;
	`
	if _, err := r.Pool.Exec(ctx, query, employeeID, workDate, present); err != nil {
		return apperrors.NewAppError(500, "failed to upsert attendance", err)
	}
	return nil
}

// FindAttendance retrieves attendance records matching the filter,
// newest day first.
func (r *PgxAttendanceRepository) FindAttendance(ctx context.Context, filter portsrepo.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT id, employee_id, work_date, present, created_at
		FROM attendance
		WHERE 1=1
	`
	args := []interface{}{}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.Month != nil && filter.Year != nil {
		args = append(args, *filter.Month)
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM work_date) = $%d", len(args))
		args = append(args, *filter.Year)
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM work_date) = $%d", len(args))
	}
	query += " ORDER BY work_date DESC;"

	return r.queryAttendance(ctx, query, args...)
}

// FindAttendanceByEmployee retrieves the full attendance history of one
// employee, newest day first.
func (r *PgxAttendanceRepository) FindAttendanceByEmployee(ctx context.Context, employeeID int64) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT id, employee_id, work_date, present, created_at
		FROM attendance
		WHERE employee_id = $1
		ORDER BY work_date DESC;
	`
	return r.queryAttendance(ctx, query, employeeID)
}

func (r *PgxAttendanceRepository) queryAttendance(ctx context.Context, query string, args ...interface{}) ([]domain.AttendanceRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attendance", err)
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		var m models.AttendanceRecord
		if err := rows.Scan(
			&m.AttendanceID,
			&m.EmployeeID,
			&m.WorkDate,
			&m.Present,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attendance row", err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating attendance rows", err)
	}

	return mapping.ToDomainAttendanceSlice(records), nil
}
