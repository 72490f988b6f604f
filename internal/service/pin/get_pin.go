package pin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

// GetPin returns a pin with its like count and author preview.
func (s *Service) GetPin(ctx context.Context, pinID uuid.UUID) (*domain.PinWithStats, error) {
	if pinID == uuid.Nil {
		return nil, domain.NewValidationError("pin_id", "required")
	}

	pin, err := s.pins.GetWithStats(ctx, pinID)
	if err != nil {
		return nil, fmt.Errorf("get pin: %w", err)
	}

	return pin, nil
}
