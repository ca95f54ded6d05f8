package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/studybuddy/internal/config"
)

const applicationName = "studybuddy"

// NewPool connects to PostgreSQL with the configured limits and verifies the
// connection before returning.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// RegisterPoolMetrics exposes connection pool gauges on reg.
func RegisterPoolMetrics(reg prometheus.Registerer, pool *pgxpool.Pool) error {
	gauges := []struct {
		name, help string
		value      func(*pgxpool.Stat) float64
	}{
		{"studybuddy_db_pool_total_conns", "Total connections in the pool.", func(s *pgxpool.Stat) float64 { return float64(s.TotalConns()) }},
		{"studybuddy_db_pool_acquired_conns", "Connections currently in use.", func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) }},
		{"studybuddy_db_pool_idle_conns", "Idle connections.", func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) }},
		{"studybuddy_db_pool_max_conns", "Maximum pool size.", func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) }},
	}

	for _, g := range gauges {
		value := g.value
		c := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: g.name,
			Help: g.help,
		}, func() float64 { return value(pool.Stat()) })
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("register %s: %w", g.name, err)
		}
	}
	return nil
}
