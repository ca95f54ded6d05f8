package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "http://localhost:3000, https://study.example.com"

rate_limit:
  requests_per_min: 60
  burst: 5

retention:
  xp_events_days: 14
  schedule: "30 2 * * *"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", writeYAML(t, dir, validYAML))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9090 {
		t.Errorf("server = %s:%d, want 127.0.0.1:9090", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("server.write_timeout = %v, want 30s (default)", cfg.Server.WriteTimeout)
	}
	if cfg.Database.MaxConns != 10 || cfg.Database.MinConns != 2 {
		t.Errorf("database conns = %d/%d, want 10/2", cfg.Database.MaxConns, cfg.Database.MinConns)
	}
	if !cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should default to true")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %s/%s, want debug/text", cfg.Log.Level, cfg.Log.Format)
	}
	if got := cfg.CORS.Origins(); len(got) != 2 || got[1] != "https://study.example.com" {
		t.Errorf("cors origins = %v", got)
	}
	if cfg.RateLimit.RequestsPerMin != 60 || cfg.RateLimit.Burst != 5 || !cfg.RateLimit.Enabled {
		t.Errorf("rate_limit = %+v", cfg.RateLimit)
	}
	if cfg.Retention.XPEventsTTL() != 14*24*time.Hour {
		t.Errorf("retention ttl = %v, want 336h", cfg.Retention.XPEventsTTL())
	}
	if cfg.Retention.Schedule != "30 2 * * *" {
		t.Errorf("retention.schedule = %q", cfg.Retention.Schedule)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeYAML(t, t.TempDir(), validYAML))
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("RETENTION_XP_EVENTS_DAYS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
	if cfg.Retention.XPEventsDays != 7 {
		t.Errorf("retention.xp_events_days = %d, want 7", cfg.Retention.XPEventsDays)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Retention.XPEventsDays != 30 {
		t.Errorf("retention.xp_events_days = %d, want 30 (default)", cfg.Retention.XPEventsDays)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeYAML(t, t.TempDir(), `{{{invalid yaml`))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"min conns over max", func(c *Config) { c.Database.MinConns = 30 }, true},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"log level case-insensitive", func(c *Config) { c.Log.Level = "DEBUG" }, false},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"rate limit zero", func(c *Config) { c.RateLimit.RequestsPerMin = 0 }, true},
		{"rate limit disabled ignores values", func(c *Config) {
			c.RateLimit.Enabled = false
			c.RateLimit.RequestsPerMin = 0
		}, false},
		{"burst zero", func(c *Config) { c.RateLimit.Burst = 0 }, true},
		{"retention zero", func(c *Config) { c.Retention.XPEventsDays = 0 }, true},
		{"admin ids", func(c *Config) { c.Admin.UserIDs = uuid.NewString() + ", " + uuid.NewString() }, false},
		{"malformed admin id", func(c *Config) { c.Admin.UserIDs = "root" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := LoadClient("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.Online() {
		t.Error("client should default to offline mode")
	}
	if cfg.Study.TickInterval != time.Second {
		t.Errorf("study.tick_interval = %v, want 1s", cfg.Study.TickInterval)
	}
	if cfg.Study.ExcludePausedTime {
		t.Error("study.exclude_paused_time should default to false")
	}
	if cfg.Sync.QueueSize != 64 || cfg.Sync.MaxRetries != 3 {
		t.Errorf("sync = %+v", cfg.Sync)
	}
}

func TestLoadClient_OverrideWinsOverFile(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `
api:
  base_url: "http://file.example.com"
  user_id: "`+uuid.NewString()+`"
study:
  subject: "math"
`)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := LoadClient(path, func(c *ClientConfig) {
		c.Study.Subject = "german"
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "http://file.example.com" {
		t.Errorf("api.base_url = %q", cfg.API.BaseURL)
	}
	if cfg.Study.Subject != "german" {
		t.Errorf("study.subject = %q, want german (override)", cfg.Study.Subject)
	}
}

func TestClientValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr bool
	}{
		{"valid online", func(*ClientConfig) {}, false},
		{"offline ignores user", func(c *ClientConfig) {
			c.API.BaseURL = ""
			c.API.UserID = ""
		}, false},
		{"online without user", func(c *ClientConfig) { c.API.UserID = "" }, true},
		{"online with nil user", func(c *ClientConfig) { c.API.UserID = uuid.Nil.String() }, true},
		{"bad scheme", func(c *ClientConfig) { c.API.BaseURL = "ftp://example.com" }, true},
		{"unknown subject", func(c *ClientConfig) { c.Study.Subject = "music" }, true},
		{"zero tick", func(c *ClientConfig) { c.Study.TickInterval = 0 }, true},
		{"zero queue", func(c *ClientConfig) { c.Sync.QueueSize = 0 }, true},
		{"negative retries", func(c *ClientConfig) { c.Sync.MaxRetries = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validClientConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// validConfig returns a Config that passes all validation checks.
func TestAdminConfig_IDs(t *testing.T) {
	t.Parallel()

	a, b := uuid.New(), uuid.New()
	ids, err := AdminConfig{UserIDs: " " + a.String() + ",," + b.String() + " "}.IDs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Fatalf("ids = %v, want [%s %s]", ids, a, b)
	}

	ids, err = AdminConfig{}.IDs()
	if err != nil || len(ids) != 0 {
		t.Fatalf("empty config: ids = %v, err = %v", ids, err)
	}
}

func validConfig() Config {
	return Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{DSN: "postgres://localhost/db", MaxConns: 25, MinConns: 5},
		Log:      LogConfig{Level: "info", Format: "json"},
		RateLimit: RateLimitConfig{
			Enabled:        true,
			RequestsPerMin: 120,
			Burst:          20,
		},
		Retention: RetentionConfig{XPEventsDays: 30},
	}
}

func validClientConfig() ClientConfig {
	return ClientConfig{
		API:   APIConfig{BaseURL: "http://localhost:8080", UserID: uuid.NewString(), Timeout: 10 * time.Second},
		Log:   LogConfig{Level: "info", Format: "text"},
		Study: StudyConfig{Subject: "spanish", TickInterval: time.Second},
		Sync:  SyncConfig{QueueSize: 64, MaxRetries: 3},
	}
}
