package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

// SeedCard inserts a flashcard for userID. reviewedAt, when non-nil, marks the
// card as reviewed once at that time.
func SeedCard(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, subject domain.Subject, reviewedAt *time.Time) domain.BankCard {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.BankCard{
		Card: domain.Card{
			ID:         uuid.New(),
			Question:   "question " + uuid.NewString()[:8],
			Answer:     "answer",
			Subject:    subject,
			Difficulty: domain.DifficultyMedium,
		},
		UserID:         userID,
		LastReviewedAt: reviewedAt,
		CreatedAt:      now,
	}
	if reviewedAt != nil {
		card.TimesReviewed = 1
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO flashcards (id, user_id, question, answer, subject, difficulty, notes, times_reviewed, last_reviewed_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		card.ID, card.UserID, card.Question, card.Answer, string(card.Subject), string(card.Difficulty),
		card.Notes, card.TimesReviewed, card.LastReviewedAt, card.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard insert: %v", err)
	}
	return card
}
