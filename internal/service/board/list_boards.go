package board

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
	"github.com/heartmarshall/pinboard-backend/pkg/ctxutil"
)

// ListBoards returns a user's boards with pin counts and cover images.
// Private boards are included only when the requester is the owner.
func (s *Service) ListBoards(ctx context.Context, userID uuid.UUID) ([]*domain.BoardWithStats, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	boards, err := s.boards.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	actorID, _ := ctxutil.UserIDFromCtx(ctx)
	if actorID == userID {
		return boards, nil
	}

	visible := boards[:0]
	for _, b := range boards {
		if !b.IsPrivate {
			visible = append(visible, b)
		}
	}

	return visible, nil
}
