// Package board implements the Board repository using PostgreSQL.
// It also owns the board_pins join table: membership rows live and die with
// their board, so all M2M writes go through this repository.
package board

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

// Repo provides board and membership persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new board repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const boardColumns = `id, user_id, name, description, is_private, created_at`

const createSQL = `
INSERT INTO boards (id, user_id, name, description, is_private, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + boardColumns

const getByIDSQL = `
SELECT ` + boardColumns + `
FROM boards
WHERE id = $1`

const listByUserSQL = `
SELECT b.id, b.user_id, b.name, b.description, b.is_private, b.created_at,
    (SELECT count(*) FROM board_pins bp WHERE bp.board_id = b.id) AS pin_count,
    (SELECT p.image_url
     FROM board_pins bp
     JOIN pins p ON p.id = bp.pin_id
     WHERE bp.board_id = b.id
     ORDER BY bp.created_at DESC
     LIMIT 1) AS cover_url
FROM boards b
WHERE b.user_id = $1
ORDER BY b.created_at DESC`

const deleteSQL = `DELETE FROM boards WHERE id = $1`

const addPinSQL = `
INSERT INTO board_pins (board_id, pin_id, created_at)
VALUES ($1, $2, $3)
RETURNING board_id, pin_id, created_at`

const removePinSQL = `
DELETE FROM board_pins
WHERE board_id = $1 AND pin_id = $2`

const listPinsSQL = `
SELECT p.id, p.user_id, p.title, p.description, p.image_url, p.link, p.created_at,
    u.name, u.avatar_url,
    (SELECT count(*) FROM likes l WHERE l.pin_id = p.id) AS like_count
FROM board_pins bp
JOIN pins p ON p.id = bp.pin_id
JOIN users u ON u.id = p.user_id
WHERE bp.board_id = $1
ORDER BY bp.created_at DESC`

const deleteMembershipsByBoardSQL = `DELETE FROM board_pins WHERE board_id = $1`

const deleteMembershipsByPinSQL = `DELETE FROM board_pins WHERE pin_id = $1`

// ---------------------------------------------------------------------------
// Board operations
// ---------------------------------------------------------------------------

// Create inserts a new board and returns the persisted domain.Board.
func (r *Repo) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := querier.QueryRow(ctx, createSQL,
		board.ID,
		board.UserID,
		board.Name,
		ptrToText(board.Description),
		board.IsPrivate,
		now,
	)

	created, err := scanBoard(row)
	if err != nil {
		return nil, postgres.MapError(err, "board", board.ID)
	}

	return created, nil
}

// GetByID returns a board by primary key, regardless of owner. Ownership is
// checked by the service so that "missing" and "not yours" map to distinct
// errors.
// Returns domain.ErrNotFound if the board does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBoard(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "board", id)
	}

	return b, nil
}

// ListByUser returns all boards of a user ordered newest first, each with its
// pin count and cover image (most recently added pin). Returns an empty slice
// (not nil) when the user has no boards.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.BoardWithStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer rows.Close()

	result := []*domain.BoardWithStats{}
	for rows.Next() {
		b, err := scanBoardWithStats(rows)
		if err != nil {
			return nil, fmt.Errorf("list boards: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	return result, nil
}

// Delete removes a board. The caller must have deleted its membership rows
// first (in the same transaction); a remaining row fails with a foreign key
// violation.
// Returns domain.ErrNotFound if the board does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "board", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Membership operations (board_pins)
// ---------------------------------------------------------------------------

// AddPin creates a membership row for (boardID, pinID). The insert is strict:
// the composite primary key rejects a duplicate pair atomically and the
// violation surfaces as domain.ErrAlreadyExists, so concurrent adds for the
// same pair produce exactly one row.
func (r *Repo) AddPin(ctx context.Context, boardID, pinID uuid.UUID) (*domain.Membership, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := querier.QueryRow(ctx, addPinSQL, boardID, pinID, now)

	var m domain.Membership
	if err := row.Scan(&m.BoardID, &m.PinID, &m.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "membership", boardID)
	}

	return &m, nil
}

// RemovePin deletes the membership row for (boardID, pinID).
// Idempotent: deleting a non-existent row is not an error (0 rows affected is OK).
func (r *Repo) RemovePin(ctx context.Context, boardID, pinID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, removePinSQL, boardID, pinID); err != nil {
		return postgres.MapError(err, "membership", boardID)
	}

	return nil
}

// ListPins returns the pins joined to a board ordered by membership creation,
// most recently added first, each with its like count and author preview.
// Returns an empty slice (not nil) for an empty board.
func (r *Repo) ListPins(ctx context.Context, boardID uuid.UUID) ([]*domain.PinWithStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listPinsSQL, boardID)
	if err != nil {
		return nil, fmt.Errorf("list board pins: %w", err)
	}
	defer rows.Close()

	result := []*domain.PinWithStats{}
	for rows.Next() {
		p, err := scanBoardPin(rows)
		if err != nil {
			return nil, fmt.Errorf("list board pins: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list board pins: %w", err)
	}

	return result, nil
}

// DeleteMembershipsByBoard removes all membership rows of a board. Used by
// the explicit board-delete cascade.
func (r *Repo) DeleteMembershipsByBoard(ctx context.Context, boardID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteMembershipsByBoardSQL, boardID); err != nil {
		return postgres.MapError(err, "membership", boardID)
	}

	return nil
}

// DeleteMembershipsByPin removes all membership rows referencing a pin. Used
// by the explicit pin-delete cascade.
func (r *Repo) DeleteMembershipsByPin(ctx context.Context, pinID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteMembershipsByPinSQL, pinID); err != nil {
		return postgres.MapError(err, "membership", pinID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanBoard(row pgx.Row) (*domain.Board, error) {
	var (
		b           domain.Board
		description pgtype.Text
	)

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&description,
		&b.IsPrivate,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		b.Description = &description.String
	}

	return &b, nil
}

func scanBoardWithStats(row pgx.Row) (*domain.BoardWithStats, error) {
	var (
		b           domain.BoardWithStats
		description pgtype.Text
		coverURL    pgtype.Text
	)

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&description,
		&b.IsPrivate,
		&b.CreatedAt,
		&b.PinCount,
		&coverURL,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		b.Description = &description.String
	}
	if coverURL.Valid {
		b.CoverURL = &coverURL.String
	}

	return &b, nil
}

func scanBoardPin(row pgx.Row) (*domain.PinWithStats, error) {
	var (
		p           domain.PinWithStats
		description pgtype.Text
		link        pgtype.Text
		avatarURL   pgtype.Text
	)

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&description,
		&p.ImageURL,
		&link,
		&p.CreatedAt,
		&p.Author.Name,
		&avatarURL,
		&p.LikeCount,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		p.Description = &description.String
	}
	if link.Valid {
		p.Link = &link.String
	}
	if avatarURL.Valid {
		p.Author.AvatarURL = &avatarURL.String
	}
	p.Author.ID = p.UserID

	return &p, nil
}

// ptrToText converts a *string to pgtype.Text (nil -> NULL).
func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
