package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"storecms/internal/auth"
	"storecms/internal/config"
	apperrors "storecms/internal/errors"
)

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, err error)
}

type authService struct {
	cfg        *config.Config
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(cfg *config.Config, jwtService *auth.JWTService) AuthService {
	return &authService{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

// Login checks the supplied credentials against the configured admin account
// and issues a token on success. There is a single administrative identity;
// anything else fails with ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.cfg.AdminUsername {
		return "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(username)
	if err != nil {
		return "", err
	}
	return token, nil
}
