package utils

import (
	"testing"
	"time"

	"blogcore/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret      = "test-secret-key-for-jwt-testing"
	testWrongSecret = "wrong-secret-key-for-jwt-testing"
)

func testUser(role string) *models.User {
	return &models.User{
		ID:       42,
		Email:    "test@example.com",
		Username: "testuser",
		Role:     role,
	}
}

func TestGenerateToken_Roundtrip(t *testing.T) {
	user := testUser(models.RoleAuthor)

	token, err := GenerateToken(testSecret, user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Role, claims.Role)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(testSecret, testUser(models.RoleReader), -time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, testUser(models.RoleAdmin), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(testWrongSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_MissingClaims(t *testing.T) {
	// Токен без id/role — подписан верно, но полезная нагрузка неполная.
	token, err := GenerateToken(testSecret, &models.User{Email: "x@y.z"}, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrMalformedClaims)
}
