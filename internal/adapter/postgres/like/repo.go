// Package like implements the Like repository using PostgreSQL.
// Insert and Delete are single atomic conditional writes so the toggle in the
// like service never depends on a separate existence read.
package like

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres"
)

// Repo provides like persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new like repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO likes (user_id, pin_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, pin_id) DO NOTHING`

const deleteSQL = `
DELETE FROM likes
WHERE user_id = $1 AND pin_id = $2`

const existsSQL = `
SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND pin_id = $2)`

const countByPinSQL = `SELECT count(*) FROM likes WHERE pin_id = $1`

const deleteByPinSQL = `DELETE FROM likes WHERE pin_id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Insert creates a like row for (userID, pinID) if absent. Reports whether a
// row was actually inserted; false means the pair already existed. The
// ON CONFLICT clause makes this a single atomic conditional write.
func (r *Repo) Insert(ctx context.Context, userID, pinID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	tag, err := querier.Exec(ctx, insertSQL, userID, pinID, now)
	if err != nil {
		return false, postgres.MapError(err, "like", pinID)
	}

	return tag.RowsAffected() == 1, nil
}

// Delete removes the like row for (userID, pinID) if present. Reports whether
// a row was actually deleted; false means the pair did not exist.
func (r *Repo) Delete(ctx context.Context, userID, pinID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, userID, pinID)
	if err != nil {
		return false, postgres.MapError(err, "like", pinID)
	}

	return tag.RowsAffected() == 1, nil
}

// Exists reports whether a like row exists for (userID, pinID).
func (r *Repo) Exists(ctx context.Context, userID, pinID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, userID, pinID).Scan(&exists); err != nil {
		return false, fmt.Errorf("like exists: %w", err)
	}

	return exists, nil
}

// CountByPin returns the number of likes on a pin.
func (r *Repo) CountByPin(ctx context.Context, pinID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByPinSQL, pinID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count likes by pin: %w", err)
	}

	return count, nil
}

// DeleteByPin removes all like rows referencing a pin. Used by the explicit
// pin-delete cascade.
func (r *Repo) DeleteByPin(ctx context.Context, pinID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByPinSQL, pinID); err != nil {
		return postgres.MapError(err, "like", pinID)
	}

	return nil
}
