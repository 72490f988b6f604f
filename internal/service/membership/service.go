// Package membership maintains the board↔pin relation: strict adds, idempotent
// removals, ordered listing, and the explicit board-delete cascade.
package membership

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

type boardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// M2M: board <-> pin
	AddPin(ctx context.Context, boardID, pinID uuid.UUID) (*domain.Membership, error)
	RemovePin(ctx context.Context, boardID, pinID uuid.UUID) error
	ListPins(ctx context.Context, boardID uuid.UUID) ([]*domain.PinWithStats, error)
	DeleteMembershipsByBoard(ctx context.Context, boardID uuid.UUID) error
}

type pinRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides board membership operations.
type Service struct {
	boards boardRepo
	pins   pinRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new membership service.
func NewService(log *slog.Logger, boards boardRepo, pins pinRepo, tx txManager) *Service {
	return &Service{
		boards: boards,
		pins:   pins,
		tx:     tx,
		log:    log.With("service", "membership"),
	}
}
