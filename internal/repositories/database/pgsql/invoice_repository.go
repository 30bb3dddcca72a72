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

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveInvoice inserts the invoice and all of its lines in one transaction.
// A failure at any step rolls the whole write back.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	insertInvoiceQuery := `
		INSERT INTO invoices (client_id, description, invoice_date)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	var invoiceID int64
	err = tx.QueryRow(ctx, insertInvoiceQuery,
		invoice.ClientID,
		invoice.Description,
		invoice.InvoiceDate,
	).Scan(&invoiceID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert invoice", err)
	}

	if err := insertInvoiceLines(ctx, tx, invoiceID, lines); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return invoiceID, nil
}

// UpdateInvoice rewrites the invoice row and replaces its whole line set in
// one transaction.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateInvoiceQuery := `
		UPDATE invoices
		SET client_id = $1, description = $2, invoice_date = $3
		WHERE id = $4;
	`
	cmdTag, err := tx.Exec(ctx, updateInvoiceQuery,
		invoice.ClientID,
		invoice.Description,
		invoice.InvoiceDate,
		invoice.InvoiceID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice not found for update")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1;`, invoice.InvoiceID); err != nil {
		return apperrors.NewAppError(500, "failed to clear invoice lines", err)
	}

	if err := insertInvoiceLines(ctx, tx, invoice.InvoiceID, lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// insertInvoiceLines batch-inserts the given lines for one invoice.
func insertInvoiceLines(ctx context.Context, tx pgx.Tx, invoiceID int64, lines []domain.InvoiceLine) error {
	if len(lines) == 0 {
		return nil
	}

	insertLineQuery := `
		INSERT INTO invoice_lines (invoice_id, description, quantity, unit_price)
		VALUES ($1, $2, $3, $4);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(insertLineQuery, invoiceID, line.Description, line.Quantity, line.UnitPrice)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for range lines {
		if _, err := br.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert invoice line", err)
		}
	}
	return nil
}

// DeleteInvoice removes an invoice; its lines and payments are
// cascade-deleted with it.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1;`, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice not found for delete")
	}
	return nil
}

// FindInvoiceByID retrieves one invoice with its lines and payments.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	query := `
		SELECT id, client_id, description, invoice_date, created_at
		FROM invoices
		WHERE id = $1;
	`
	var m models.Invoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.ClientID,
		&m.Description,
		&m.InvoiceDate,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID", err)
	}

	invoice := mapping.ToDomainInvoice(m)

	linesByInvoice, err := r.findLinesByInvoiceIDs(ctx, []int64{invoiceID})
	if err != nil {
		return nil, err
	}
	paymentsByInvoice, err := r.findPaymentsByInvoiceIDs(ctx, []int64{invoiceID})
	if err != nil {
		return nil, err
	}
	invoice.Lines = linesByInvoice[invoiceID]
	invoice.Payments = paymentsByInvoice[invoiceID]

	return &invoice, nil
}

// FindInvoices retrieves invoices newest first, optionally for one client,
// each with its lines and payments attached.
func (r *PgxInvoiceRepository) FindInvoices(ctx context.Context, clientID *int64) ([]domain.Invoice, error) {
	query := `
		SELECT id, client_id, description, invoice_date, created_at
		FROM invoices
	`
	args := []interface{}{}
	if clientID != nil {
		query += ` WHERE client_id = $1`
		args = append(args, *clientID)
	}
	query += ` ORDER BY invoice_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	invoiceIDs := []int64{}
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(
			&m.InvoiceID,
			&m.ClientID,
			&m.Description,
			&m.InvoiceDate,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m))
		invoiceIDs = append(invoiceIDs, m.InvoiceID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}

	if len(invoiceIDs) == 0 {
		return invoices, nil
	}

	linesByInvoice, err := r.findLinesByInvoiceIDs(ctx, invoiceIDs)
	if err != nil {
		return nil, err
	}
	paymentsByInvoice, err := r.findPaymentsByInvoiceIDs(ctx, invoiceIDs)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Lines = linesByInvoice[invoices[i].InvoiceID]
		invoices[i].Payments = paymentsByInvoice[invoices[i].InvoiceID]
	}

	return invoices, nil
}

// findLinesByInvoiceIDs fetches the lines for a set of invoices in one
// query, grouped by invoice ID.
func (r *PgxInvoiceRepository) findLinesByInvoiceIDs(ctx context.Context, invoiceIDs []int64) (map[int64][]domain.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price
		FROM invoice_lines
		WHERE invoice_id = ANY($1)
		ORDER BY id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice lines", err)
	}
	defer rows.Close()

	linesByInvoice := make(map[int64][]domain.InvoiceLine)
	for rows.Next() {
		var m models.InvoiceLine
		if err := rows.Scan(
			&m.LineID,
			&m.InvoiceID,
			&m.Description,
			&m.Quantity,
			&m.UnitPrice,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice line row", err)
		}
		linesByInvoice[m.InvoiceID] = append(linesByInvoice[m.InvoiceID], mapping.ToDomainInvoiceLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice line rows", err)
	}

	return linesByInvoice, nil
}

// findPaymentsByInvoiceIDs fetches the payments for a set of invoices in
// one query, grouped by invoice ID.
func (r *PgxInvoiceRepository) findPaymentsByInvoiceIDs(ctx context.Context, invoiceIDs []int64) (map[int64][]domain.InvoicePayment, error) {
	query := `
		SELECT id, invoice_id, amount, payment_type, payment_date, created_at
		FROM invoice_payments
		WHERE invoice_id = ANY($1)
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice payments", err)
	}
	defer rows.Close()

	paymentsByInvoice := make(map[int64][]domain.InvoicePayment)
	for rows.Next() {
		var m models.InvoicePayment
		if err := rows.Scan(
			&m.PaymentID,
			&m.InvoiceID,
			&m.Amount,
			&m.PaymentType,
			&m.PaymentDate,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice payment row", err)
		}
		paymentsByInvoice[m.InvoiceID] = append(paymentsByInvoice[m.InvoiceID], mapping.ToDomainInvoicePayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice payment rows", err)
	}

	return paymentsByInvoice, nil
}
