package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"terea-store/internal/logger"
	"time"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, username, password string) (string, *AdminUser, error)
	Authenticate(ctx context.Context, token string) (*AdminUser, error)
	CreateAdmin(ctx context.Context, username, password string) (*AdminUser, error)
	TokenTTL() time.Duration
}

type service struct {
	repo   Repository
	secret string
	ttl    time.Duration
}

func NewService(repo Repository, secret string, ttl time.Duration) Service {
	return &service{repo: repo, secret: secret, ttl: ttl}
}

func (s *service) TokenTTL() time.Duration {
	return s.ttl
}

func (s *service) Login(ctx context.Context, username, password string) (string, *AdminUser, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("username", username),
	)

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			log.Warn("login rejected: unknown username")
			return "", nil, ErrInvalidCredentials
		}
		log.Error("failed to load admin user", zap.Error(err))
		return "", nil, err
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		log.Warn("login rejected: password mismatch")
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(s.secret, u.ID, u.Username, s.ttl)
	if err != nil {
		log.Error("failed to generate jwt", zap.Error(err))
		return "", nil, err
	}

	log.Info("admin logged in", zap.Int64("admin_id", u.ID))
	return token, u, nil
}

// Authenticate resolves a session token to an admin that still exists.
func (s *service) Authenticate(ctx context.Context, token string) (*AdminUser, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	claims, err := ParseJWT(s.secret, token)
	if err != nil {
		logger.FromCtx(ctx).Debug("token rejected", zap.Error(err))
		return nil, ErrUnauthorized
	}

	id, err := claims.AdminID()
	if err != nil {
		return nil, ErrUnauthorized
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return u, nil
}

func (s *service) CreateAdmin(ctx context.Context, username, password string) (*AdminUser, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateAdmin"),
	)

	username = strings.TrimSpace(username)
	if username == "" || len(username) > MaxUsernameLen {
		return nil, fmt.Errorf("%w: username must be 1..%d characters", ErrInvalidInput, MaxUsernameLen)
	}
	if len(password) < MinPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLen)
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.Create(ctx, username, hashed)
	if err != nil {
		return nil, err
	}

	log.Info("admin user created", zap.Int64("admin_id", u.ID), zap.String("username", u.Username))
	return u, nil
}
