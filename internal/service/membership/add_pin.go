package membership

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
	"github.com/heartmarshall/pinboard-backend/pkg/ctxutil"
)

// AddPinToBoard joins a pin to a board owned by the authenticated user.
// Strict: adding a pin that is already on the board fails with
// domain.ErrAlreadyExists. The uniqueness of the pair is enforced by the
// store's composite key, not by a prior existence check, so concurrent adds
// for the same pair create exactly one membership.
func (s *Service) AddPinToBoard(ctx context.Context, input AddPinInput) (*domain.Membership, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var membership *domain.Membership
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		board, err := s.boards.GetByID(txCtx, input.BoardID)
		if err != nil {
			return fmt.Errorf("get board: %w", err)
		}
		if !domain.IsOwner(board.UserID, actorID) {
			return domain.ErrForbidden
		}

		if _, err := s.pins.GetByID(txCtx, input.PinID); err != nil {
			return fmt.Errorf("get pin: %w", err)
		}

		membership, err = s.boards.AddPin(txCtx, input.BoardID, input.PinID)
		if err != nil {
			return fmt.Errorf("add pin: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pin added to board",
		slog.String("user_id", actorID.String()),
		slog.String("board_id", input.BoardID.String()),
		slog.String("pin_id", input.PinID.String()),
	)

	return membership, nil
}
