// Package auth guards the admin surface. There is a single admin account
// configured by email and bcrypt hash; no user table, no registration.
package auth

import (
	"context"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/crypto/bcrypt"

	"blogarchive-backend/internal/shared/result"
	"blogarchive-backend/pkg/jwt"
)

const RoleAdmin = "admin"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (result.Result[LoginResponse], error)
}

type service struct {
	adminEmail string
	adminHash  string
	tokens     *jwt.Manager
}

func NewService(adminEmail, adminHash string, tokens *jwt.Manager) Service {
	return &service{adminEmail: adminEmail, adminHash: adminHash, tokens: tokens}
}

func (s *service) Login(_ context.Context, req LoginRequest) (result.Result[LoginResponse], error) {
	if err := req.Validate(); err != nil {
		return result.BadRequest[LoginResponse]("invalid credentials", err.Error()), nil
	}

	// Compare the hash even on an email mismatch so both paths cost the same.
	hash := s.adminHash
	match := strings.EqualFold(req.Email, s.adminEmail)
	if !match {
		hash = "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinval"
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil || !match {
		return result.Fail[LoginResponse](http.StatusUnauthorized, "invalid email or password"), nil
	}

	token, err := s.tokens.GenerateToken(s.adminEmail, RoleAdmin)
	if err != nil {
		return result.Result[LoginResponse]{}, err
	}

	return result.Ok(LoginResponse{Token: token, Email: s.adminEmail, Role: RoleAdmin}), nil
}
