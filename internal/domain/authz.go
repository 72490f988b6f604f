package domain

import "github.com/google/uuid"

// IsOwner reports whether the actor owns an entity. All board and pin
// mutation paths use this single predicate so authorization logic cannot
// diverge between services.
func IsOwner(ownerID, actorID uuid.UUID) bool {
	return ownerID != uuid.Nil && ownerID == actorID
}
