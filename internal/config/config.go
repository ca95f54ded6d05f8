package config

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/pkg/ctxutil"
)

// Config is the collaborator server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Retention RetentionConfig `yaml:"retention"`
	Admin     AdminConfig     `yaml:"admin"`
}

// AdminConfig lists the callers allowed to read service-wide stats.
type AdminConfig struct {
	// UserIDs is a comma-separated list of user UUIDs.
	UserIDs string `yaml:"user_ids" env:"ADMIN_USER_IDS"`
}

// IDs parses UserIDs. Entries are trimmed; empty entries are skipped.
func (a AdminConfig) IDs() ([]uuid.UUID, error) {
	raw := splitList(a.UserIDs)
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := ctxutil.ParseUserID(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-User-Id,X-Request-Id,Idempotency-Key"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// AutoMigrate applies embedded migrations on server start.
	AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds requests per client IP.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerMin  int           `yaml:"requests_per_min" env:"RATE_LIMIT_REQUESTS_PER_MIN" env-default:"120"`
	Burst           int           `yaml:"burst"            env:"RATE_LIMIT_BURST"            env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// RetentionConfig controls purging of the XP idempotency ledger.
type RetentionConfig struct {
	XPEventsDays int `yaml:"xp_events_days" env:"RETENTION_XP_EVENTS_DAYS" env-default:"30"`
	// Schedule is a cron expression for the in-process purge. Empty disables it.
	Schedule string `yaml:"schedule" env:"RETENTION_SCHEDULE" env-default:"0 3 * * *"`
}

// XPEventsTTL is the age after which ledger rows may be purged.
func (r RetentionConfig) XPEventsTTL() time.Duration {
	return time.Duration(r.XPEventsDays) * 24 * time.Hour
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
