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

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for employee payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// SavePayment inserts a payment and returns its new ID.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	query := `
		INSERT INTO payments (employee_id, amount, type, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	var paymentID int64
	err := r.Pool.QueryRow(ctx, query,
		payment.EmployeeID,
		payment.Amount,
		string(payment.Type),
		nullIfEmpty(payment.Note),
	).Scan(&paymentID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert payment", err)
	}
	return paymentID, nil
}

// FindPaymentByID retrieves a payment with the employee name joined in.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	query := `
		SELECT p.id, p.employee_id, p.amount, p.type, p.note, p.created_at,
		       e.last_name, e.first_name
		FROM payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1;
	`
	var m models.Payment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&m.PaymentID,
		&m.EmployeeID,
		&m.Amount,
		&m.Type,
		&m.Note,
		&m.CreatedAt,
		&m.EmployeeLastName,
		&m.EmployeeFirstName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID", err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// FindPayments retrieves payments newest first, optionally for one employee,
// with the employee name joined in.
func (r *PgxPaymentRepository) FindPayments(ctx context.Context, employeeID *int64) ([]domain.Payment, error) {
	query := `
		SELECT p.id, p.employee_id, p.amount, p.type, p.note, p.created_at,
		       e.last_name, e.first_name
		FROM payments p
		LEFT JOIN employees e ON e.id = p.employee_id
	`
	args := []interface{}{}
	if employeeID != nil {
		query += ` WHERE p.employee_id = $1`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY p.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID,
			&m.EmployeeID,
			&m.Amount,
			&m.Type,
			&m.Note,
			&m.CreatedAt,
			&m.EmployeeLastName,
			&m.EmployeeFirstName,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}

	return mapping.ToDomainPaymentSlice(payments), nil
}

// UpdatePayment rewrites the mutable fields of a payment.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	query := `
		UPDATE payments
		SET employee_id = $1, amount = $2, type = $3, note = $4
		WHERE id = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		payment.EmployeeID,
		payment.Amount,
		string(payment.Type),
		nullIfEmpty(payment.Note),
		payment.PaymentID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update payment", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment not found for update")
	}
	return nil
}

// DeletePayment removes a payment.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE id = $1;`, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment not found for delete")
	}
	return nil
}
