package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studybuddy/internal/adapter/postgres"
	"github.com/heartmarshall/studybuddy/internal/adapter/postgres/card"
	"github.com/heartmarshall/studybuddy/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/studybuddy/internal/adapter/postgres/session"
	"github.com/heartmarshall/studybuddy/internal/config"
	"github.com/heartmarshall/studybuddy/internal/service/cardbank"
	"github.com/heartmarshall/studybuddy/internal/service/progress"
	"github.com/heartmarshall/studybuddy/internal/transport/middleware"
	"github.com/heartmarshall/studybuddy/internal/transport/rest"
	"github.com/heartmarshall/studybuddy/pkg/clock"
	"github.com/heartmarshall/studybuddy/pkg/metrics"
)

// RunServer starts the collaborator API: it connects to PostgreSQL, applies
// migrations when configured, schedules ledger retention and serves HTTP
// until ctx is cancelled.
func RunServer(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting server",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)
	if err := postgres.RegisterPoolMetrics(reg, pool); err != nil {
		return err
	}

	// Repositories
	cardRepo := card.New(pool)
	ledgerRepo := ledger.New(pool)
	sessionRepo := session.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services
	clk := clock.Real{}
	progressSvc := progress.NewService(logger, ledgerRepo, cardRepo, sessionRepo, txm, clk, m)
	cardSvc := cardbank.NewService(logger, cardRepo, clk)

	var rl *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rl = middleware.NewRateLimiter(cfg.RateLimit)
		defer rl.Stop()
	}

	sched, err := newRetentionScheduler(logger, progressSvc, cfg.Retention)
	if err != nil {
		return err
	}
	probes := []rest.Probe{{Name: "database", Prober: pool}}
	if sched != nil {
		sched.StartAsync()
		defer sched.Stop()
		probes = append(probes, rest.Probe{Name: "retention", Prober: schedulerProbe(sched), Optional: true})
	}

	admins, err := cfg.Admin.IDs()
	if err != nil {
		return fmt.Errorf("admin ids: %w", err)
	}
	router := rest.NewRouter(logger, cfg.CORS, m, rl, rest.Handlers{
		Health:   rest.NewHealthHandler(Version, clk, probes...),
		Cards:    rest.NewCardHandler(cardSvc, logger),
		Progress: rest.NewProgressHandler(progressSvc, logger),
		Metrics:  m.Handler(),
		Admins:   admins,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
