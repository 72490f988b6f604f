package pin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
	"github.com/heartmarshall/pinboard-backend/pkg/ctxutil"
)

// DeletePin deletes a pin owned by the authenticated user together with every
// row that references it. The cascade is explicit and runs in one
// transaction: likes and board memberships go first, then the pin itself, so
// a failure anywhere leaves everything in place.
func (s *Service) DeletePin(ctx context.Context, pinID uuid.UUID) error {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if pinID == uuid.Nil {
		return domain.NewValidationError("pin_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		pin, err := s.pins.GetByID(txCtx, pinID)
		if err != nil {
			return fmt.Errorf("get pin: %w", err)
		}
		if !domain.IsOwner(pin.UserID, actorID) {
			return domain.ErrForbidden
		}

		if err := s.likes.DeleteByPin(txCtx, pinID); err != nil {
			return fmt.Errorf("delete likes: %w", err)
		}
		if err := s.memberships.DeleteMembershipsByPin(txCtx, pinID); err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}

		if err := s.pins.Delete(txCtx, pinID); err != nil {
			return fmt.Errorf("delete pin: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "pin deleted",
		slog.String("user_id", actorID.String()),
		slog.String("pin_id", pinID.String()),
	)

	return nil
}
