// Package pin implements the Pin repository using PostgreSQL.
// Listing queries use squirrel to build the optional owner filter; everything
// else is raw SQL.
package pin

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

// Filter narrows pin listing queries.
type Filter struct {
	UserID *uuid.UUID
	Limit  int
	Offset int
}

// Repo provides pin persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const pinColumns = `id, user_id, title, description, image_url, link, created_at`

const createSQL = `
INSERT INTO pins (id, user_id, title, description, image_url, link, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + pinColumns

const getByIDSQL = `
SELECT ` + pinColumns + `
FROM pins
WHERE id = $1`

const deleteSQL = `DELETE FROM pins WHERE id = $1`

// statColumns are the extra columns selected by stats queries, relative to
// alias p (pins) and u (users).
const statColumns = `u.name, u.avatar_url,
(SELECT count(*) FROM likes l WHERE l.pin_id = p.id) AS like_count`

const getWithStatsSQL = `
SELECT p.id, p.user_id, p.title, p.description, p.image_url, p.link, p.created_at,
` + statColumns + `
FROM pins p
JOIN users u ON u.id = p.user_id
WHERE p.id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a pin by primary key.
// Returns domain.ErrNotFound if the pin does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPin(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "pin", id)
	}

	return p, nil
}

// GetWithStats returns a pin with its like count and author preview.
// Returns domain.ErrNotFound if the pin does not exist.
func (r *Repo) GetWithStats(ctx context.Context, id uuid.UUID) (*domain.PinWithStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPinWithStats(querier.QueryRow(ctx, getWithStatsSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "pin", id)
	}

	return p, nil
}

// List returns pins matching the filter ordered newest first, each with its
// like count and author preview. Returns an empty slice (not nil) when
// nothing matches.
func (r *Repo) List(ctx context.Context, filter Filter) ([]*domain.PinWithStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(
		"p.id", "p.user_id", "p.title", "p.description", "p.image_url", "p.link", "p.created_at",
		"u.name", "u.avatar_url",
		"(SELECT count(*) FROM likes l WHERE l.pin_id = p.id) AS like_count",
	).
		From("pins p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"p.user_id": *filter.UserID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pin list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}
	defer rows.Close()

	result := []*domain.PinWithStats{}
	for rows.Next() {
		p, err := scanPinWithStats(rows)
		if err != nil {
			return nil, fmt.Errorf("list pins: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new pin and returns the persisted domain.Pin.
func (r *Repo) Create(ctx context.Context, pin *domain.Pin) (*domain.Pin, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := querier.QueryRow(ctx, createSQL,
		pin.ID,
		pin.UserID,
		pin.Title,
		ptrToText(pin.Description),
		pin.ImageURL,
		ptrToText(pin.Link),
		now,
	)

	created, err := scanPin(row)
	if err != nil {
		return nil, postgres.MapError(err, "pin", pin.ID)
	}

	return created, nil
}

// Delete removes a pin. The caller must have deleted the pin's like and
// membership rows first (in the same transaction); a remaining reference
// fails with a foreign key violation.
// Returns domain.ErrNotFound if the pin does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "pin", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pin %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanPin(row pgx.Row) (*domain.Pin, error) {
	var (
		p           domain.Pin
		description pgtype.Text
		link        pgtype.Text
	)

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&description,
		&p.ImageURL,
		&link,
		&p.CreatedAt,
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

	return &p, nil
}

func scanPinWithStats(row pgx.Row) (*domain.PinWithStats, error) {
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
