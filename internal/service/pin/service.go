// Package pin implements pin lifecycle operations: create, read, list, and
// the owner-gated delete with its explicit reference cascade.
package pin

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	pinrepo "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/pin"
	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

type pinRepo interface {
	Create(ctx context.Context, pin *domain.Pin) (*domain.Pin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error)
	GetWithStats(ctx context.Context, id uuid.UUID) (*domain.PinWithStats, error)
	List(ctx context.Context, filter pinrepo.Filter) ([]*domain.PinWithStats, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type likeRepo interface {
	DeleteByPin(ctx context.Context, pinID uuid.UUID) error
}

type membershipRepo interface {
	DeleteMembershipsByPin(ctx context.Context, pinID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides pin operations.
type Service struct {
	pins        pinRepo
	likes       likeRepo
	memberships membershipRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new pin service.
func NewService(log *slog.Logger, pins pinRepo, likes likeRepo, memberships membershipRepo, tx txManager) *Service {
	return &Service{
		pins:        pins,
		likes:       likes,
		memberships: memberships,
		tx:          tx,
		log:         log.With("service", "pin"),
	}
}
