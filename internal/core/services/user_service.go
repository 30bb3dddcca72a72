package services

import (
	"context"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	portsrepo "github.com/tbensalah/gestion_chantier_app/internal/core/ports/repositories"
	portssvc "github.com/tbensalah/gestion_chantier_app/internal/core/ports/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the operator account service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// errInvalidCredentials is returned for both unknown usernames and wrong
// passwords so callers cannot probe which usernames exist.
var errInvalidCredentials = apperrors.NewAppError(401, "invalid username or password", nil)

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}

	return user, nil
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	userID, err := s.userRepo.SaveUser(ctx, domain.User{
		Username:     req.Username,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
