package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pin is a user-authored media post. The owner is immutable after creation
// and authoritative for authorization checks.
type Pin struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	ImageURL    string
	Link        *string
	CreatedAt   time.Time
}

// PinWithStats is a pin enriched with its like count and author preview,
// as returned by listing queries.
type PinWithStats struct {
	Pin
	LikeCount int
	Author    UserPreview
}

// Like is the join fact that a user has liked a pin.
// At most one Like exists per (UserID, PinID) pair; the composite primary
// key in the store enforces this.
type Like struct {
	UserID    uuid.UUID
	PinID     uuid.UUID
	CreatedAt time.Time
}
