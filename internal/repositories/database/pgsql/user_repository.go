package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	"github.com/tbensalah/gestion_chantier_app/internal/models"
	"github.com/tbensalah/gestion_chantier_app/internal/utils/mapping"
)

// uniqueViolationCode is the Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for operator accounts.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// SaveUser inserts an operator account and returns its new ID. A username
// collision surfaces as ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id;
	`
	var userID int64
	err := r.Pool.QueryRow(ctx, query, user.Username, user.PasswordHash).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, apperrors.NewAppError(409, "username already taken", apperrors.ErrDuplicate)
		}
		return 0, apperrors.NewAppError(500, "failed to insert user", err)
	}
	return userID, nil
}

// FindUserByID retrieves an operator account by its ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = $1;
	`
	return r.queryUser(ctx, query, userID)
}

// FindUserByUsername retrieves an operator account by username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1;
	`
	return r.queryUser(ctx, query, username)
}

func (r *PgxUserRepository) queryUser(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var m models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.UserID,
		&m.Username,
		&m.PasswordHash,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user", err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}
