package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
	"github.com/heartmarshall/pinboard-backend/pkg/ctxutil"
)

// CreateBoard creates a board owned by the authenticated user.
func (s *Service) CreateBoard(ctx context.Context, input CreateBoardInput) (*domain.Board, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	board := &domain.Board{
		ID:          uuid.New(),
		UserID:      actorID,
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		IsPrivate:   input.IsPrivate,
	}

	created, err := s.boards.Create(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}

	s.log.InfoContext(ctx, "board created",
		slog.String("user_id", actorID.String()),
		slog.String("board_id", created.ID.String()),
	)

	return created, nil
}

// trimOrNil trims the string and returns nil if nothing remains.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
