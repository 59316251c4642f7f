package service

import (
	"errors"

	"college-hub/pkg/auth"
	"college-hub/pkg/config"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the single configured admin account and issues
// session tokens. The configured password is hashed once at startup; only
// the hash is kept in memory.
type AuthService struct {
	username     string
	passwordHash string
	jwtManager   *auth.JWTManager
	logger       *zap.Logger
}

func NewAuthService(cfg config.AdminConfig, jwtManager *auth.JWTManager, logger *zap.Logger) (*AuthService, error) {
	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		username:     cfg.Username,
		passwordHash: hash,
		jwtManager:   jwtManager,
		logger:       logger,
	}, nil
}

func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username || !auth.CheckPassword(s.passwordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(username)
	if err != nil {
		return "", err
	}

	s.logger.Info("Admin logged in", zap.String("username", username))
	return token, nil
}
