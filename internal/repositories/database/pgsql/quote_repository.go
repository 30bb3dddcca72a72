package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
	"github.com/tbensalah/gestion_chantier_app/internal/utils/mapping"
)

type PgxQuoteRepository struct {
	BaseRepository
}

// newPgxQuoteRepository creates a new repository for quote data.
func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepositoryFacade {
	return &PgxQuoteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.QuoteRepositoryFacade = (*PgxQuoteRepository)(nil)

// SaveQuote inserts a quote with its serialized articles and frozen totals,
// and returns its new ID.
func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) (int64, error) {
	m, err := mapping.ToModelQuote(quote)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to serialize quote articles", err)
	}

	query := `
		INSERT INTO quotes (client_id, title, description, articles, subtotal, tax_amount, total, status, validity_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	var quoteID int64
	err = r.Pool.QueryRow(ctx, query,
		m.ClientID,
		m.Title,
		m.Description,
		m.Articles,
		m.Subtotal,
		m.TaxAmount,
		m.Total,
		m.Status,
		m.ValidityDays,
	).Scan(&quoteID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert quote", err)
	}
	return quoteID, nil
}

// FindQuotes retrieves quotes newest first, optionally for one client, with
// the client name joined in.
func (r *PgxQuoteRepository) FindQuotes(ctx context.Context, clientID *int64) ([]domain.Quote, error) {
	query := `
		SELECT q.id, q.client_id, q.title, q.description, q.articles,
		       q.subtotal, q.tax_amount, q.total, q.status, q.validity_days, q.created_at,
		       c.last_name, c.first_name
		FROM quotes q
		LEFT JOIN clients c ON c.id = q.client_id
	`
	args := []interface{}{}
	if clientID != nil {
		query += ` WHERE q.client_id = $1`
		args = append(args, *clientID)
	}
	query += ` ORDER BY q.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query quotes", err)
	}
	defer rows.Close()

	quotes := []domain.Quote{}
	for rows.Next() {
		var m models.Quote
		if err := rows.Scan(
			&m.QuoteID,
			&m.ClientID,
			&m.Title,
			&m.Description,
			&m.Articles,
			&m.Subtotal,
			&m.TaxAmount,
			&m.Total,
			&m.Status,
			&m.ValidityDays,
			&m.CreatedAt,
			&m.ClientLastName,
			&m.ClientFirstName,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan quote row", err)
		}

		quote, err := mapping.ToDomainQuote(m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode quote articles", err)
		}
		quotes = append(quotes, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating quote rows", err)
	}

	return quotes, nil
}

// UpdateQuoteStatus moves a quote to a new lifecycle state.
func (r *PgxQuoteRepository) UpdateQuoteStatus(ctx context.Context, quoteID int64, status domain.QuoteStatus) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE quotes SET status = $1 WHERE id = $2;`, string(status), quoteID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update quote status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("quote not found for status update")
	}
	return nil
}
