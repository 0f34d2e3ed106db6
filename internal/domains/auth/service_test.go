package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blogarchive-backend/pkg/jwt"
)

func newTestService(t *testing.T, password string) Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	tokens := jwt.NewManager("test-secret", time.Hour)
	return NewService("admin@example.com", string(hash), tokens)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t, "correct horse")

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.NotEmpty(t, res.Data.Token)
	assert.Equal(t, RoleAdmin, res.Data.Role)

	claims, err := jwt.NewManager("test-secret", time.Hour).ValidateToken(res.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t, "correct horse")

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "battery staple",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t, "correct horse")

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "intruder@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLoginValidation(t *testing.T) {
	svc := newTestService(t, "x")

	res, err := svc.Login(context.Background(), LoginRequest{Email: "not-an-email", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
