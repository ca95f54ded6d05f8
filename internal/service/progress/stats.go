package progress

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/internal/service/study/xp"
	"github.com/heartmarshall/studybuddy/pkg/ctxutil"
)

// GetStats returns the caller's level, XP, streak and card counts.
func (s *Service) GetStats(ctx context.Context) (domain.ProgressReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ProgressReport{}, domain.ErrUnauthorized
	}

	now := s.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	since := today.AddDate(0, 0, -StreakWindowDays)

	var (
		total       int
		bySubj      []domain.SubjectCount
		days        []domain.DayReviewCount
		sessionDays []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.ledger.GetXP(gctx, userID)
		if err != nil {
			return fmt.Errorf("get xp: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		bySubj, err = s.cards.CountBySubject(gctx, userID)
		if err != nil {
			return fmt.Errorf("count cards: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		days, err = s.cards.ReviewDays(gctx, userID, since)
		if err != nil {
			return fmt.Errorf("get review days: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sessionDays, err = s.sessions.ActiveDays(gctx, userID, since)
		if err != nil {
			return fmt.Errorf("get session days: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.ProgressReport{}, err
	}

	report := domain.ProgressReport{
		UserStats: domain.UserStats{
			XP:     total,
			Level:  xp.LevelOf(total),
			Streak: calculateStreak(activityDays(days, sessionDays), today),
		},
		BySubject: bySubj,
	}
	for _, c := range bySubj {
		report.TotalCards += c.Count
	}
	if len(days) > 0 && sameDay(days[0].Date, today) {
		report.ReviewedToday = days[0].Count
	}

	s.log.DebugContext(ctx, "stats computed",
		slog.Int("xp", report.XP),
		slog.Int("streak", report.Streak),
		slog.Int("total_cards", report.TotalCards),
	)
	return report, nil
}

// activityDays merges card review days and session days into distinct UTC
// days, newest first.
func activityDays(reviews []domain.DayReviewCount, sessions []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(reviews)+len(sessions))
	out := make([]time.Time, 0, len(reviews)+len(sessions))
	add := func(t time.Time) {
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	for _, r := range reviews {
		add(r.Date)
	}
	for _, d := range sessions {
		add(d)
	}
	slices.SortFunc(out, func(a, b time.Time) int { return b.Compare(a) })
	return out
}

// calculateStreak counts consecutive active days ending today, or ending
// yesterday when nothing happened today. days must be distinct, newest first.
func calculateStreak(days []time.Time, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	expected := today
	if !sameDay(days[0], today) {
		expected = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range days {
		if !sameDay(d, expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SystemStats returns service-wide totals. Only administrators may call it.
func (s *Service) SystemStats(ctx context.Context) (domain.SystemStats, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.SystemStats{}, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.SystemStats{}, domain.ErrForbidden
	}

	since := s.clock.Now().UTC().AddDate(0, 0, -ActiveWindowDays)
	stats, err := s.cards.SystemStats(ctx, since, PopularSubjectsLimit)
	if err != nil {
		return domain.SystemStats{}, fmt.Errorf("system stats: %w", err)
	}
	return stats, nil
}
