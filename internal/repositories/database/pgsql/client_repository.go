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

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// SaveClient inserts a client and returns its new ID.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) (int64, error) {
	query := `
		INSERT INTO clients (last_name, first_name, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	var clientID int64
	err := r.Pool.QueryRow(ctx, query,
		client.LastName,
		client.FirstName,
		nullIfEmpty(client.Phone),
		nullIfEmpty(client.Address),
	).Scan(&clientID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert client", err)
	}
	return clientID, nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `
		SELECT id, last_name, first_name, phone, address, created_at
		FROM clients
		WHERE id = $1;
	`
	var m models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&m.ClientID,
		&m.LastName,
		&m.FirstName,
		&m.Phone,
		&m.Address,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find client by ID", err)
	}

	client := mapping.ToDomainClient(m)
	return &client, nil
}

// FindClients retrieves all clients, newest first.
func (r *PgxClientRepository) FindClients(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT id, last_name, first_name, phone, address, created_at
		FROM clients
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query clients", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(
			&m.ClientID,
			&m.LastName,
			&m.FirstName,
			&m.Phone,
			&m.Address,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan client row", err)
		}
		clients = append(clients, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating client rows", err)
	}

	return mapping.ToDomainClientSlice(clients), nil
}
