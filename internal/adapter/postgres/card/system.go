package card

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/studybuddy/internal/adapter/postgres"
	"github.com/heartmarshall/studybuddy/internal/domain"
)

// There is no users table: a user exists once it owns a card, an XP balance
// or a session log.
const systemTotalsSQL = `
SELECT
    (SELECT count(*) FROM (
        SELECT user_id FROM flashcards
        UNION SELECT user_id FROM user_stats
        UNION SELECT user_id FROM study_sessions
    ) u) AS total_users,
    (SELECT count(*) FROM flashcards) AS total_cards,
    (SELECT count(*) FROM study_sessions) AS total_sessions,
    (SELECT count(*) FROM (
        SELECT user_id FROM flashcards WHERE created_at >= $1 OR last_reviewed_at >= $1
        UNION SELECT user_id FROM study_sessions WHERE created_at >= $1
    ) a) AS active_users`

const popularSubjectsSQL = `
SELECT subject, count(*) AS count
FROM flashcards
GROUP BY subject
ORDER BY count DESC, subject
LIMIT $1`

// SystemStats aggregates every user's data. Users count as active when they
// created or reviewed a card, or logged a session, on or after activeSince.
func (r *Repo) SystemStats(ctx context.Context, activeSince time.Time, topSubjects int) (domain.SystemStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var totals struct {
		TotalUsers    int `db:"total_users"`
		TotalCards    int `db:"total_cards"`
		TotalSessions int `db:"total_sessions"`
		ActiveUsers   int `db:"active_users"`
	}
	if err := pgxscan.Get(ctx, q, &totals, systemTotalsSQL, activeSince); err != nil {
		return domain.SystemStats{}, fmt.Errorf("system totals: %w", err)
	}

	var subjects []struct {
		Subject string `db:"subject"`
		Count   int    `db:"count"`
	}
	if err := pgxscan.Select(ctx, q, &subjects, popularSubjectsSQL, topSubjects); err != nil {
		return domain.SystemStats{}, fmt.Errorf("popular subjects: %w", err)
	}

	stats := domain.SystemStats{
		TotalUsers:      totals.TotalUsers,
		TotalCards:      totals.TotalCards,
		TotalSessions:   totals.TotalSessions,
		ActiveUsers:     totals.ActiveUsers,
		PopularSubjects: make([]domain.SubjectCount, len(subjects)),
	}
	for i, s := range subjects {
		stats.PopularSubjects[i] = domain.SubjectCount{Subject: domain.Subject(s.Subject), Count: s.Count}
	}
	return stats, nil
}
