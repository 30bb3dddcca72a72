package repositories

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for operator accounts.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) (int64, error)
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
