package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
	"github.com/tbensalah/gestion_chantier_app/internal/core/services"
	"github.com/tbensalah/gestion_chantier_app/internal/dto"
	"github.com/tbensalah/gestion_chantier_app/internal/utils"
)

func TestAuthenticate_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	hash, err := utils.HashPassword("s3cret-passw0rd")
	require.NoError(t, err)

	userRepo.On("FindUserByUsername", mock.Anything, "admin").
		Return(&domain.User{UserID: 1, Username: "admin", PasswordHash: hash}, nil)

	user, err := svc.Authenticate(context.Background(), "admin", "s3cret-passw0rd")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthenticate_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	hash, err := utils.HashPassword("s3cret-passw0rd")
	require.NoError(t, err)

	userRepo.On("FindUserByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)
	userRepo.On("FindUserByUsername", mock.Anything, "admin").
		Return(&domain.User{UserID: 1, Username: "admin", PasswordHash: hash}, nil)

	_, errUnknown := svc.Authenticate(context.Background(), "ghost", "whatever")
	_, errWrongPw := svc.Authenticate(context.Background(), "admin", "wrong")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	// Both failure modes must be indistinguishable to the caller.
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestRegister_HashesPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	userRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "newuser" &&
			u.PasswordHash != "plaintext-password" &&
			utils.CheckPasswordHash("plaintext-password", u.PasswordHash)
	})).Return(int64(5), nil)
	userRepo.On("FindUserByID", mock.Anything, int64(5)).
		Return(&domain.User{UserID: 5, Username: "newuser"}, nil)

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "newuser",
		Password: "plaintext-password",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	userRepo.On("SaveUser", mock.Anything, mock.Anything).
		Return(int64(0), apperrors.NewAppError(409, "username already taken", apperrors.ErrDuplicate))

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "admin",
		Password: "plaintext-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}
