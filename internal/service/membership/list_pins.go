package membership

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

// ListBoardPins returns a board and its pins ordered most-recently-added
// first. No authorization check happens here: the transport layer decides
// whether a private board is visible to the requester.
func (s *Service) ListBoardPins(ctx context.Context, boardID uuid.UUID) (*domain.Board, []*domain.PinWithStats, error) {
	if boardID == uuid.Nil {
		return nil, nil, domain.NewValidationError("board_id", "required")
	}

	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, nil, fmt.Errorf("get board: %w", err)
	}

	pins, err := s.boards.ListPins(ctx, boardID)
	if err != nil {
		return nil, nil, fmt.Errorf("list pins: %w", err)
	}

	return board, pins, nil
}
