package domain

import (
	"time"

	"github.com/google/uuid"
)

// XP award reasons.
const (
	ReasonCorrectAnswer    = "Correct answer!"
	ReasonSessionCompleted = "Study session completed!"
)

// UserStats is the gamification profile of a user.
// Level is always derived from XP and never set on its own.
type UserStats struct {
	Level      int
	XP         int
	Streak     int
	TotalCards int
}

// LevelUpEvent is emitted when an award moves the user to a higher level.
type LevelUpEvent struct {
	PreviousLevel int
	Level         int
	Reason        string
}

// XPAward is a single XP grant. Key identifies the grant so that a receiver
// can apply retried deliveries exactly once.
type XPAward struct {
	Key       uuid.UUID
	Amount    int
	Reason    string
	AwardedAt time.Time
}

// XPEvent is an XP award recorded in the server-side ledger, keyed by the
// client-supplied idempotency key.
type XPEvent struct {
	Key       uuid.UUID
	UserID    uuid.UUID
	Amount    int
	Reason    string
	CreatedAt time.Time
}

// XPBalance is the ledger outcome of applying an award.
type XPBalance struct {
	XP      int
	Applied bool
}

// SessionSummary is returned when a study session ends.
type SessionSummary struct {
	Subject        *Subject
	CardsStudied   int
	CorrectAnswers int
	Accuracy       float64
	SessionXP      int
	Elapsed        time.Duration
}

// ElapsedSeconds returns the whole seconds the session ran.
func (s SessionSummary) ElapsedSeconds() int {
	return int(s.Elapsed / time.Second)
}

// StudySessionLog is a finished session as recorded by the server.
type StudySessionLog struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Subject         Subject
	CardsStudied    int
	CorrectAnswers  int
	SessionXP       int
	DurationSeconds int
	CreatedAt       time.Time
}

// DayReviewCount holds the number of reviewed cards on a given day.
type DayReviewCount struct {
	Date  time.Time
	Count int
}

// SubjectCount is the number of bank cards in one subject.
type SubjectCount struct {
	Subject Subject
	Count   int
}

// ProgressReport is the server-side view of a user's progress.
type ProgressReport struct {
	UserStats
	ReviewedToday int
	BySubject     []SubjectCount
}

// SystemStats is the service-wide aggregate shown to administrators.
type SystemStats struct {
	TotalUsers      int
	TotalCards      int
	TotalSessions   int
	ActiveUsers     int
	PopularSubjects []SubjectCount
}
