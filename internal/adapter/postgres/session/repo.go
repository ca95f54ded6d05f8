// Package session stores finished study sessions.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/studybuddy/internal/adapter/postgres"
	"github.com/heartmarshall/studybuddy/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const sessionColumns = `id, user_id, subject, cards_studied, correct_answers, session_xp, duration_seconds, created_at`

const createSQL = `
INSERT INTO study_sessions (` + sessionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE user_id = $1
ORDER BY created_at DESC, id
LIMIT $2`

const activeDaysSQL = `
SELECT DISTINCT (created_at AT TIME ZONE 'UTC')::date AS day
FROM study_sessions
WHERE user_id = $1 AND created_at >= $2
ORDER BY day DESC`

type sessionRow struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Subject         string    `db:"subject"`
	CardsStudied    int       `db:"cards_studied"`
	CorrectAnswers  int       `db:"correct_answers"`
	SessionXP       int       `db:"session_xp"`
	DurationSeconds int       `db:"duration_seconds"`
	CreatedAt       time.Time `db:"created_at"`
}

// Create inserts a finished session.
func (r *Repo) Create(ctx context.Context, s domain.StudySessionLog) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		s.ID, s.UserID, s.Subject.String(), s.CardsStudied, s.CorrectAnswers,
		s.SessionXP, s.DurationSeconds, s.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "study session", s.ID.String())
	}
	return nil
}

// List returns the user's most recent sessions, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.StudySessionLog, error) {
	var rows []sessionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL, userID, limit); err != nil {
		return nil, fmt.Errorf("list study sessions: %w", err)
	}

	out := make([]domain.StudySessionLog, len(rows))
	for i, row := range rows {
		out[i] = domain.StudySessionLog{
			ID:              row.ID,
			UserID:          row.UserID,
			Subject:         domain.Subject(row.Subject),
			CardsStudied:    row.CardsStudied,
			CorrectAnswers:  row.CorrectAnswers,
			SessionXP:       row.SessionXP,
			DurationSeconds: row.DurationSeconds,
			CreatedAt:       row.CreatedAt,
		}
	}
	return out, nil
}

// ActiveDays returns the UTC days on or after since with at least one logged
// session, newest first.
func (r *Repo) ActiveDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	var days []time.Time
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &days, activeDaysSQL, userID, since); err != nil {
		return nil, fmt.Errorf("list session days: %w", err)
	}
	return days, nil
}
