// Package board implements board creation and listing. Membership and
// deletion live in the membership service.
package board

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

type boardRepo interface {
	Create(ctx context.Context, board *domain.Board) (*domain.Board, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.BoardWithStats, error)
}

// Service provides board operations.
type Service struct {
	boards boardRepo
	log    *slog.Logger
}

// NewService creates a new board service.
func NewService(log *slog.Logger, boards boardRepo) *Service {
	return &Service{
		boards: boards,
		log:    log.With("service", "board"),
	}
}
