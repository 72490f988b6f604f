package membership

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
	"github.com/heartmarshall/pinboard-backend/pkg/ctxutil"
)

// RemovePinFromBoard removes a pin from a board owned by the authenticated
// user. Idempotent: removing a pin that is not on the board succeeds silently.
// The asymmetry with AddPinToBoard is deliberate: add is strict, remove
// means "retire if present".
func (s *Service) RemovePinFromBoard(ctx context.Context, input RemovePinInput) error {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		board, err := s.boards.GetByID(txCtx, input.BoardID)
		if err != nil {
			return fmt.Errorf("get board: %w", err)
		}
		if !domain.IsOwner(board.UserID, actorID) {
			return domain.ErrForbidden
		}

		// 0 affected rows is not an error
		if err := s.boards.RemovePin(txCtx, input.BoardID, input.PinID); err != nil {
			return fmt.Errorf("remove pin: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "pin removed from board",
		slog.String("user_id", actorID.String()),
		slog.String("board_id", input.BoardID.String()),
		slog.String("pin_id", input.PinID.String()),
	)

	return nil
}
