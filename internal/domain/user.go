package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Users are referenced by pins, boards and likes
// but never mutated by the membership/engagement core.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Name         string
	PasswordHash string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPreview is the public subset of a user embedded in pin listings.
type UserPreview struct {
	ID        uuid.UUID
	Name      string
	AvatarURL *string
}
