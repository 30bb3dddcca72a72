package services

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
)

// UserSvcFacade defines the service operations for operator accounts and
// credential verification.
type UserSvcFacade interface {
	// Authenticate verifies a username/password pair. Unknown usernames and
	// wrong passwords fail with the same error.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}
