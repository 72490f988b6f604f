// Package auth implements account registration, login and token validation.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(tokenString string) (uuid.UUID, error)
}

// Service provides authentication operations.
type Service struct {
	users    userRepo
	tokens   tokenManager
	hashCost int
	log      *slog.Logger
}

// NewService creates a new auth service. hashCost is the bcrypt cost used for
// password hashing.
func NewService(log *slog.Logger, users userRepo, tokens tokenManager, hashCost int) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		hashCost: hashCost,
		log:      log.With("service", "auth"),
	}
}

// ValidateToken resolves an access token to a user ID. Used by the auth
// middleware.
func (s *Service) ValidateToken(token string) (uuid.UUID, error) {
	userID, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
