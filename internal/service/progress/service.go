// Package progress keeps the server-side record of XP, stats and study sessions.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/pkg/clock"
	"github.com/heartmarshall/studybuddy/pkg/metrics"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ledgerRepo interface {
	GetXP(ctx context.Context, userID uuid.UUID) (int, error)
	InsertEvent(ctx context.Context, ev domain.XPEvent) (bool, error)
	AddXP(ctx context.Context, userID uuid.UUID, amount int, at time.Time) (int, error)
	PurgeEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type cardStats interface {
	CountBySubject(ctx context.Context, userID uuid.UUID) ([]domain.SubjectCount, error)
	ReviewDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayReviewCount, error)
	SystemStats(ctx context.Context, activeSince time.Time, topSubjects int) (domain.SystemStats, error)
}

type sessionRepo interface {
	Create(ctx context.Context, s domain.StudySessionLog) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.StudySessionLog, error)
	ActiveDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	// StreakWindowDays bounds how far back activity days are read for the streak.
	StreakWindowDays = 30
	// MaxAwardAmount caps a single XP award.
	MaxAwardAmount = 1000
	// DefaultSessionListLimit is used when a listing does not ask for a size.
	DefaultSessionListLimit = 20
	// MaxSessionListLimit caps a session listing.
	MaxSessionListLimit = 100
	// ActiveWindowDays is the lookback for counting active users.
	ActiveWindowDays = 7
	// PopularSubjectsLimit caps the subject ranking in system stats.
	PopularSubjectsLimit = 10
)

// Service provides progress tracking operations.
type Service struct {
	log      *slog.Logger
	ledger   ledgerRepo
	cards    cardStats
	sessions sessionRepo
	tx       txManager
	clock    clock.Clock
	metrics  *metrics.Metrics
}

// NewService creates a progress Service. m may be nil.
func NewService(
	log *slog.Logger,
	ledger ledgerRepo,
	cards cardStats,
	sessions sessionRepo,
	tx txManager,
	clk clock.Clock,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:      log.With("service", "progress"),
		ledger:   ledger,
		cards:    cards,
		sessions: sessions,
		tx:       tx,
		clock:    clk,
		metrics:  m,
	}
}
