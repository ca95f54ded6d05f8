package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/heartmarshall/studybuddy/internal/config"
	"github.com/heartmarshall/studybuddy/internal/transport/rest"
)

const purgeTimeout = 5 * time.Minute

type xpEventPurger interface {
	PurgeXPEvents(ctx context.Context, retentionDays int) (int64, error)
}

// newRetentionScheduler schedules the XP ledger purge on cfg.Schedule.
// It returns nil when no schedule is configured.
func newRetentionScheduler(log *slog.Logger, p xpEventPurger, cfg config.RetentionConfig) (*gocron.Scheduler, error) {
	if cfg.Schedule == "" {
		return nil, nil
	}

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, err := s.Cron(cfg.Schedule).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()

		if _, err := p.PurgeXPEvents(ctx, cfg.XPEventsDays); err != nil {
			log.ErrorContext(ctx, "scheduled xp purge failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule xp purge %q: %w", cfg.Schedule, err)
	}
	return s, nil
}

// schedulerProbe reports the retention scheduler as down once it stops.
func schedulerProbe(s *gocron.Scheduler) rest.Prober {
	return rest.ProberFunc(func(context.Context) error {
		if !s.IsRunning() {
			return errors.New("retention scheduler not running")
		}
		return nil
	})
}
