package services

import (
	"testing"
	"time"

	"advisory-service/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, claims models.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyToken_Valid(t *testing.T) {
	service := NewJWTService("test-secret")

	tokenString := signTestToken(t, "test-secret", models.Claims{
		UserID: "farmer-42",
		Email:  "farmer@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := service.VerifyToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "farmer-42", claims.UserID)
	assert.Equal(t, "farmer@example.com", claims.Email)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	service := NewJWTService("test-secret")

	tokenString := signTestToken(t, "other-secret", models.Claims{UserID: "farmer-42"})

	claims, err := service.VerifyToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyToken_Expired(t *testing.T) {
	service := NewJWTService("test-secret")

	tokenString := signTestToken(t, "test-secret", models.Claims{
		UserID: "farmer-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	claims, err := service.VerifyToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyToken_Garbage(t *testing.T) {
	service := NewJWTService("test-secret")

	claims, err := service.VerifyToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
