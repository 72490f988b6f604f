package domain

import (
	"time"

	"github.com/google/uuid"
)

// Board is a named, owned collection of pins. The owner is immutable after
// creation and authoritative for authorization checks.
type Board struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	IsPrivate   bool
	CreatedAt   time.Time
}

// BoardWithStats is a board enriched with its pin count and cover image
// (the most recently added pin's image), as returned by listing queries.
type BoardWithStats struct {
	Board
	PinCount int
	CoverURL *string
}

// Membership is the join fact that a pin belongs to a board.
// At most one Membership exists per (BoardID, PinID) pair; the composite
// primary key in the store enforces this.
type Membership struct {
	BoardID   uuid.UUID
	PinID     uuid.UUID
	CreatedAt time.Time
}
