package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/pkg/ctxutil"
)

// LogSession records a finished study session. An empty subject is stored
// as "other".
func (s *Service) LogSession(ctx context.Context, input LogSessionInput) (domain.StudySessionLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StudySessionLog{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.StudySessionLog{}, err
	}

	subject := domain.SubjectOther
	if input.Subject != "" {
		subject = domain.Subject(input.Subject)
	}

	rec := domain.StudySessionLog{
		ID:              uuid.New(),
		UserID:          userID,
		Subject:         subject,
		CardsStudied:    input.CardsStudied,
		CorrectAnswers:  input.CorrectAnswers,
		SessionXP:       input.SessionXP,
		DurationSeconds: input.DurationSeconds,
		CreatedAt:       s.clock.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, rec); err != nil {
		return domain.StudySessionLog{}, fmt.Errorf("create session: %w", err)
	}

	s.metrics.ObserveSession()
	s.log.InfoContext(ctx, "study session logged",
		slog.String("session_id", rec.ID.String()),
		slog.String("subject", subject.String()),
		slog.Int("cards_studied", rec.CardsStudied),
		slog.Int("session_xp", rec.SessionXP),
	)
	return rec, nil
}

// ListSessions returns the caller's recent sessions, newest first.
func (s *Service) ListSessions(ctx context.Context, limit int) ([]domain.StudySessionLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	switch {
	case limit <= 0:
		limit = DefaultSessionListLimit
	case limit > MaxSessionListLimit:
		limit = MaxSessionListLimit
	}

	out, err := s.sessions.List(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}
