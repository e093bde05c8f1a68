package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/unignoramus11/lumen/internal/config"
	"github.com/unignoramus11/lumen/internal/domains/auth"
	"github.com/unignoramus11/lumen/pkg/jwt"
)

type AuthService interface {
	Login(password string) (*auth.LoginResponse, error)
}

type authService struct {
	cfg        config.AdminConfig
	jwtManager *jwt.Manager
}

func NewAuthService(cfg config.AdminConfig, jwtManager *jwt.Manager) AuthService {
	return &authService{cfg: cfg, jwtManager: jwtManager}
}

// Login checks the single admin credential and issues a signed token.
// A bcrypt hash is preferred; the plain password form exists for local
// development and is compared in constant time.
func (s *authService) Login(password string) (*auth.LoginResponse, error) {
	if !s.verify(password) {
		return nil, auth.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAdminToken()
	if err != nil {
		return nil, err
	}
	return &auth.LoginResponse{Token: token}, nil
}

func (s *authService) verify(password string) bool {
	if s.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)) == nil
	}
	if s.cfg.Password != "" {
		return subtle.ConstantTimeCompare([]byte(s.cfg.Password), []byte(password)) == 1
	}
	return false
}
