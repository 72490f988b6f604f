package pin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
	"github.com/heartmarshall/pinboard-backend/pkg/ctxutil"
)

// CreatePin creates a pin owned by the authenticated user.
func (s *Service) CreatePin(ctx context.Context, input CreatePinInput) (*domain.Pin, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	pin := &domain.Pin{
		ID:          uuid.New(),
		UserID:      actorID,
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		ImageURL:    input.ImageURL,
		Link:        input.Link,
	}

	created, err := s.pins.Create(ctx, pin)
	if err != nil {
		return nil, fmt.Errorf("create pin: %w", err)
	}

	s.log.InfoContext(ctx, "pin created",
		slog.String("user_id", actorID.String()),
		slog.String("pin_id", created.ID.String()),
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
