package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default values. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$seedseedseedseedseedse.seedseedseedseedseedseedseedse",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedPin creates a pin owned by the given user. Returns a filled domain.Pin.
func SeedPin(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Pin {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	pin := domain.Pin{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     "Pin " + suffix,
		ImageURL:  "https://images.example.com/" + suffix + ".jpg",
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO pins (id, user_id, title, image_url, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		pin.ID, pin.UserID, pin.Title, pin.ImageURL, pin.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPin insert pin: %v", err)
	}

	return pin
}

// SeedBoard creates a board owned by the given user. Returns a filled domain.Board.
func SeedBoard(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Board {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	board := domain.Board{
		ID:        uuid.New(),
		UserID:    ownerID,
		Name:      "Board " + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO boards (id, user_id, name, is_private, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		board.ID, board.UserID, board.Name, board.IsPrivate, board.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBoard insert board: %v", err)
	}

	return board
}

// SeedMembership joins a pin to a board directly at the store level.
func SeedMembership(t *testing.T, pool *pgxpool.Pool, boardID, pinID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO board_pins (board_id, pin_id) VALUES ($1, $2)`,
		boardID, pinID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMembership insert: %v", err)
	}
}
