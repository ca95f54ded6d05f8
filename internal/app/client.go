package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/studybuddy/internal/adapter/provider/studyapi"
	"github.com/heartmarshall/studybuddy/internal/config"
	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/internal/service/deck"
	"github.com/heartmarshall/studybuddy/internal/service/study"
	"github.com/heartmarshall/studybuddy/internal/service/xpsync"
	"github.com/heartmarshall/studybuddy/internal/transport/cli"
	"github.com/heartmarshall/studybuddy/pkg/clock"
	"github.com/heartmarshall/studybuddy/pkg/ctxutil"
)

const (
	initialStatsTimeout = 5 * time.Second
	syncDrainTimeout    = 5 * time.Second
)

// RunClient runs the interactive study client on in/out. Without a
// configured API it studies the sample deck and keeps XP locally.
func RunClient(ctx context.Context, cfg *config.ClientConfig, in io.Reader, out io.Writer) error {
	logger := NewLogger(cfg.Log)
	logger.Info("starting study client",
		slog.String("version", BuildVersion()),
		slog.Bool("online", cfg.API.Online()),
	)

	var (
		source   *studyapi.Client
		stats    domain.UserStats
		notifier interface {
			Notify(ctx context.Context, award domain.XPAward)
		}
		dispatcher *xpsync.Dispatcher
	)

	if cfg.API.Online() {
		userID, err := ctxutil.ParseUserID(cfg.API.UserID)
		if err != nil {
			return fmt.Errorf("api user id: %w", err)
		}
		source = studyapi.NewClient(cfg.API.BaseURL, userID, cfg.API.Timeout, logger)

		dispatcher = xpsync.NewDispatcher(logger, source, xpsync.Config{
			QueueSize:       cfg.Sync.QueueSize,
			MaxRetries:      cfg.Sync.MaxRetries,
			InitialInterval: cfg.Sync.InitialInterval,
			MaxInterval:     cfg.Sync.MaxInterval,
			PushTimeout:     cfg.API.Timeout,
		})
		defer func() {
			drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), syncDrainTimeout)
			defer cancel()
			if err := dispatcher.Close(drainCtx); err != nil {
				logger.Warn("xp sync not drained", slog.String("error", err.Error()))
			}
			c := dispatcher.Counters()
			logger.Info("xp sync finished",
				slog.Int64("delivered", c.Delivered),
				slog.Int64("failed", c.Failed),
				slog.Int64("dropped", c.Dropped),
				slog.Int64("sessions_logged", c.SessionsLogged),
			)
		}()
		notifier = dispatcher

		statsCtx, cancel := context.WithTimeout(ctx, initialStatsTimeout)
		stats, err = source.FetchStats(statsCtx)
		cancel()
		if err != nil {
			logger.Warn("starting with local stats", slog.String("error", err.Error()))
			stats = domain.UserStats{}
		}
	}

	decks := deck.NewService(logger, cardSource(source), deck.Options{Shuffle: cfg.Study.Shuffle})

	renderer := cli.NewRenderer(out, cfg.Study.LiveTimer)
	ticker := clock.NewTicker(cfg.Study.TickInterval)
	defer ticker.Stop()

	sess := study.NewSession(logger, stats, clock.Real{}, ticker, notifier, renderer, study.Options{
		ExcludePausedTime: cfg.Study.ExcludePausedTime,
	})

	var (
		remote interface {
			FetchStats(ctx context.Context) (domain.UserStats, error)
		}
		logs interface {
			LogSession(ctx context.Context, summary domain.SessionSummary)
		}
	)
	if source != nil {
		remote = source
		logs = dispatcher
	}

	return cli.NewREPL(logger, in, renderer, sess, decks, remote, logs, cli.Options{
		DefaultSubject: cfg.Study.Subject,
	}).Run(ctx)
}

// cardSource keeps a nil client from becoming a non-nil interface.
func cardSource(c *studyapi.Client) interface {
	FetchCards(ctx context.Context, subject *domain.Subject) ([]domain.Card, error)
} {
	if c == nil {
		return nil
	}
	return c
}
