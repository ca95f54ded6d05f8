// Package card implements the flashcard bank repository using PostgreSQL.
// Listing filters are built with squirrel; rows are scanned with scany.
package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/studybuddy/internal/adapter/postgres"
	"github.com/heartmarshall/studybuddy/internal/domain"
)

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "user_id", "question", "answer", "subject", "difficulty",
	"notes", "times_reviewed", "last_reviewed_at", "created_at",
}

type cardRow struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	Question       string     `db:"question"`
	Answer         string     `db:"answer"`
	Subject        string     `db:"subject"`
	Difficulty     string     `db:"difficulty"`
	Notes          string     `db:"notes"`
	TimesReviewed  int        `db:"times_reviewed"`
	LastReviewedAt *time.Time `db:"last_reviewed_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

func (r cardRow) toDomain() domain.BankCard {
	return domain.BankCard{
		Card: domain.Card{
			ID:         r.ID,
			Question:   r.Question,
			Answer:     r.Answer,
			Subject:    domain.Subject(r.Subject),
			Difficulty: domain.Difficulty(r.Difficulty),
		},
		UserID:         r.UserID,
		Notes:          r.Notes,
		TimesReviewed:  r.TimesReviewed,
		LastReviewedAt: r.LastReviewedAt,
		CreatedAt:      r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the user's cards, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.BankCard, error) {
	q := postgres.Builder.
		Select(columns...).
		From("flashcards").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")
	if filter.Subject != nil {
		q = q.Where(squirrel.Eq{"subject": filter.Subject.String()})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	var rows []cardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "cards", userID.String())
	}

	cards := make([]domain.BankCard, len(rows))
	for i, row := range rows {
		cards[i] = row.toDomain()
	}
	return cards, nil
}

// CountBySubject returns card counts per subject, largest first.
func (r *Repo) CountBySubject(ctx context.Context, userID uuid.UUID) ([]domain.SubjectCount, error) {
	const query = `
SELECT subject, count(*) AS count
FROM flashcards
WHERE user_id = $1
GROUP BY subject
ORDER BY count DESC, subject`

	var rows []struct {
		Subject string `db:"subject"`
		Count   int    `db:"count"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, userID); err != nil {
		return nil, postgres.MapError(err, "cards", userID.String())
	}

	out := make([]domain.SubjectCount, len(rows))
	for i, row := range rows {
		out[i] = domain.SubjectCount{Subject: domain.Subject(row.Subject), Count: row.Count}
	}
	return out, nil
}

// ReviewDays returns per-day counts of cards last reviewed on or after since,
// newest day first. Days are UTC calendar days.
func (r *Repo) ReviewDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayReviewCount, error) {
	const query = `
SELECT (last_reviewed_at AT TIME ZONE 'UTC')::date AS day, count(*) AS count
FROM flashcards
WHERE user_id = $1 AND last_reviewed_at >= $2
GROUP BY day
ORDER BY day DESC`

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, userID, since)
	if err != nil {
		return nil, postgres.MapError(err, "review days", userID.String())
	}
	defer rows.Close()

	var days []domain.DayReviewCount
	for rows.Next() {
		var d domain.DayReviewCount
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, fmt.Errorf("scan review day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "review days", userID.String())
	}
	return days, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateBatch inserts cards in a single statement. IDs and timestamps must be
// set by the caller.
func (r *Repo) CreateBatch(ctx context.Context, cards []domain.BankCard) error {
	if len(cards) == 0 {
		return nil
	}

	q := postgres.Builder.Insert("flashcards").Columns(columns...)
	for _, c := range cards {
		q = q.Values(
			c.ID, c.UserID, c.Question, c.Answer, c.Subject.String(), c.Difficulty.String(),
			c.Notes, c.TimesReviewed, c.LastReviewedAt, c.CreatedAt,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert cards query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "cards", cards[0].UserID.String())
	}
	return nil
}

// MarkReviewed bumps the review counter and stamps the review time.
func (r *Repo) MarkReviewed(ctx context.Context, userID, cardID uuid.UUID, at time.Time) (domain.BankCard, error) {
	sql, args, err := postgres.Builder.
		Update("flashcards").
		Set("times_reviewed", squirrel.Expr("times_reviewed + 1")).
		Set("last_reviewed_at", at).
		Where(squirrel.Eq{"id": cardID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.BankCard{}, fmt.Errorf("build review card query: %w", err)
	}

	var row cardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.BankCard{}, postgres.MapError(err, "card", cardID.String())
	}
	return row.toDomain(), nil
}

// Delete removes a card owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Delete("flashcards").
		Where(squirrel.Eq{"id": cardID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete card query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "card", cardID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}
	return nil
}
