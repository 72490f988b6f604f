// Package like implements the user↔pin engagement relation as an idempotent
// toggle that converges under concurrent requests.
package like

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

type pinRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error)
}

type likeRepo interface {
	Insert(ctx context.Context, userID, pinID uuid.UUID) (bool, error)
	Delete(ctx context.Context, userID, pinID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, pinID uuid.UUID) (bool, error)
	CountByPin(ctx context.Context, pinID uuid.UUID) (int, error)
}

// Service provides like operations.
type Service struct {
	pins  pinRepo
	likes likeRepo
	log   *slog.Logger
}

// NewService creates a new like service.
func NewService(log *slog.Logger, pins pinRepo, likes likeRepo) *Service {
	return &Service{
		pins:  pins,
		likes: likes,
		log:   log.With("service", "like"),
	}
}
