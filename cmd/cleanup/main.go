// Command cleanup purges XP idempotency records older than the configured
// retention period. It is meant for deployments that run retention from an
// external cron job instead of the in-process schedule.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/studybuddy/internal/adapter/postgres"
	"github.com/heartmarshall/studybuddy/internal/adapter/postgres/card"
	"github.com/heartmarshall/studybuddy/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/studybuddy/internal/adapter/postgres/session"
	"github.com/heartmarshall/studybuddy/internal/app"
	"github.com/heartmarshall/studybuddy/internal/config"
	"github.com/heartmarshall/studybuddy/internal/service/progress"
	"github.com/heartmarshall/studybuddy/pkg/clock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := progress.NewService(logger,
		ledger.New(pool), card.New(pool), session.New(pool),
		postgres.NewTxManager(pool), clock.Real{}, nil,
	)

	if _, err := svc.PurgeXPEvents(ctx, cfg.Retention.XPEventsDays); err != nil {
		logger.Error("xp purge failed",
			slog.String("error", err.Error()),
			slog.Int("retention_days", cfg.Retention.XPEventsDays),
		)
		os.Exit(1)
	}
}
