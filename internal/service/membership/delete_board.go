package membership

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
	"github.com/heartmarshall/pinboard-backend/pkg/ctxutil"
)

// DeleteBoard deletes a board owned by the authenticated user together with
// all its membership rows. The cascade is explicit: join rows and the board
// are removed in one transaction, so no reader ever observes a board without
// its memberships or dangling memberships without their board.
func (s *Service) DeleteBoard(ctx context.Context, input DeleteBoardInput) error {
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

		// Join rows first: the boards FK would reject deleting the parent
		// while memberships remain.
		if err := s.boards.DeleteMembershipsByBoard(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}

		if err := s.boards.Delete(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("delete board: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "board deleted",
		slog.String("user_id", actorID.String()),
		slog.String("board_id", input.BoardID.String()),
	)

	return nil
}
