package like

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
	"github.com/heartmarshall/pinboard-backend/pkg/ctxutil"
)

// ToggleResult reports the like state after a toggle.
type ToggleResult struct {
	Liked     bool
	LikeCount int
}

// ToggleLike flips the authenticated user's like on a pin and returns the
// resulting state. Both directions are single conditional writes, so two
// concurrent toggles never fail with a uniqueness error: one of them wins,
// and the loser re-reads the row and reports the state the winner left
// behind.
func (s *Service) ToggleLike(ctx context.Context, pinID uuid.UUID) (*ToggleResult, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if pinID == uuid.Nil {
		return nil, domain.NewValidationError("pin_id", "required")
	}

	if _, err := s.pins.GetByID(ctx, pinID); err != nil {
		return nil, fmt.Errorf("get pin: %w", err)
	}

	liked, err := s.toggle(ctx, actorID, pinID)
	if err != nil {
		return nil, err
	}

	count, err := s.likes.CountByPin(ctx, pinID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	s.log.InfoContext(ctx, "like toggled",
		slog.String("user_id", actorID.String()),
		slog.String("pin_id", pinID.String()),
		slog.Bool("liked", liked),
	)

	return &ToggleResult{Liked: liked, LikeCount: count}, nil
}

func (s *Service) toggle(ctx context.Context, userID, pinID uuid.UUID) (bool, error) {
	inserted, err := s.likes.Insert(ctx, userID, pinID)
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}
	if inserted {
		return true, nil
	}

	// The like already existed, so this toggle turns it off.
	deleted, err := s.likes.Delete(ctx, userID, pinID)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	if deleted {
		return false, nil
	}

	// Neither write touched a row: a concurrent toggle removed the like
	// between our insert and delete. Report whatever state is current now.
	exists, err := s.likes.Exists(ctx, userID, pinID)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}

	return exists, nil
}
