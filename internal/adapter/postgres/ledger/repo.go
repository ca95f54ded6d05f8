// Package ledger stores XP balances and the idempotency ledger of applied
// awards.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/studybuddy/internal/adapter/postgres"
	"github.com/heartmarshall/studybuddy/internal/domain"
)

// Repo provides XP persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const getXPSQL = `SELECT xp FROM user_stats WHERE user_id = $1`

const insertEventSQL = `
INSERT INTO xp_events (user_id, idempotency_key, amount, reason, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, idempotency_key) DO NOTHING`

const addXPSQL = `
INSERT INTO user_stats (user_id, xp, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE
SET xp = user_stats.xp + EXCLUDED.xp, updated_at = EXCLUDED.updated_at
RETURNING xp`

const purgeEventsSQL = `DELETE FROM xp_events WHERE created_at < $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetXP returns the user's XP total; users without a row have 0.
func (r *Repo) GetXP(ctx context.Context, userID uuid.UUID) (int, error) {
	var xp int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getXPSQL, userID).Scan(&xp)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, postgres.MapError(err, "user stats", userID.String())
	}
	return xp, nil
}

// InsertEvent records an award in the ledger. It reports false when the
// (user, key) pair was already recorded.
func (r *Repo) InsertEvent(ctx context.Context, ev domain.XPEvent) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertEventSQL,
		ev.UserID, ev.Key, ev.Amount, ev.Reason, ev.CreatedAt,
	)
	if err != nil {
		return false, postgres.MapError(err, "xp event", ev.Key.String())
	}
	return tag.RowsAffected() == 1, nil
}

// AddXP adds amount to the user's total and returns the new total.
func (r *Repo) AddXP(ctx context.Context, userID uuid.UUID, amount int, at time.Time) (int, error) {
	var xp int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, addXPSQL, userID, amount, at).Scan(&xp)
	if err != nil {
		return 0, postgres.MapError(err, "user stats", userID.String())
	}
	return xp, nil
}

// PurgeEventsBefore deletes ledger rows created before cutoff.
func (r *Repo) PurgeEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, purgeEventsSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge xp events: %w", err)
	}
	return tag.RowsAffected(), nil
}
