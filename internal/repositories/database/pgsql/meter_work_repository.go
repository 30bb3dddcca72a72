package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
	"github.com/tbensalah/gestion_chantier_app/internal/utils/mapping"
)

type PgxMeterWorkRepository struct {
	BaseRepository
}

// newPgxMeterWorkRepository creates a new repository for meter work data.
func newPgxMeterWorkRepository(pool *pgxpool.Pool) portsrepo.MeterWorkRepositoryFacade {
	return &PgxMeterWorkRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MeterWorkRepositoryFacade = (*PgxMeterWorkRepository)(nil)

// SaveMeterWork inserts a meter work record and returns its new ID.
func (r *PgxMeterWorkRepository) SaveMeterWork(ctx context.Context, record domain.MeterWorkRecord) (int64, error) {
	query := `
		INSERT INTO meter_work (employee_id, work_date, meters, price_per_meter, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var meterWorkID int64
	err := r.Pool.QueryRow(ctx, query,
		record.EmployeeID,
		record.WorkDate,
		record.Meters,
		record.PricePerMeter,
		record.Total,
	).Scan(&meterWorkID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert meter work", err)
	}
	return meterWorkID, nil
}

// FindMeterWork retrieves meter work records matching the filter,
// newest day first.
func (r *PgxMeterWorkRepository) FindMeterWork(ctx context.Context, filter portsrepo.MeterWorkFilter) ([]domain.MeterWorkRecord, error) {
	query := `
		SELECT id, employee_id, work_date, meters, price_per_meter, total, created_at
		FROM meter_work
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

	return r.queryMeterWork(ctx, query, args...)
}

// FindMeterWorkByEmployee retrieves the full meter work history of one
// employee, newest day first.
func (r *PgxMeterWorkRepository) FindMeterWorkByEmployee(ctx context.Context, employeeID int64) ([]domain.MeterWorkRecord, error) {
	query := `
		SELECT id, employee_id, work_date, meters, price_per_meter, total, created_at
		FROM meter_work
		WHERE employee_id = $1
		ORDER BY work_date DESC;
	`
	return r.queryMeterWork(ctx, query, employeeID)
}

func (r *PgxMeterWorkRepository) queryMeterWork(ctx context.Context, query string, args ...interface{}) ([]domain.MeterWorkRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query meter work", err)
	}
	defer rows.Close()

	records := []models.MeterWorkRecord{}
	for rows.Next() {
		var m models.MeterWorkRecord
		if err := rows.Scan(
			&m.MeterWorkID,
			&m.EmployeeID,
			&m.WorkDate,
			&m.Meters,
			&m.PricePerMeter,
			&m.Total,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan meter work row", err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating meter work rows", err)
	}

	return mapping.ToDomainMeterWorkSlice(records), nil
}
