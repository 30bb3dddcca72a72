package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbensalah/gestion_chantier_app/internal/utils"
)

const testSecret = "test-secret-key-for-session-tokens"

func TestGenerateAndValidateSessionToken(t *testing.T) {
	token, err := utils.GenerateSessionToken(42, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := utils.ValidateSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestValidateSessionToken_WrongSecret(t *testing.T) {
	token, err := utils.GenerateSessionToken(42, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = utils.ValidateSessionToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateSessionToken_Expired(t *testing.T) {
	token, err := utils.GenerateSessionToken(42, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = utils.ValidateSessionToken(token, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	_, err := utils.ValidateSessionToken("not-a-token", testSecret)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, utils.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, utils.CheckPasswordHash("wrong password", hash))
}
