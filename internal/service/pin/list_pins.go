package pin

import (
	"context"
	"fmt"

	pinrepo "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/pin"
	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListPins returns pins newest first, optionally filtered by author.
// A zero limit falls back to the default page size.
func (s *Service) ListPins(ctx context.Context, input ListPinsInput) ([]*domain.PinWithStats, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	pins, err := s.pins.List(ctx, pinrepo.Filter{
		UserID: input.UserID,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}

	return pins, nil
}
