package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/pkg/ctxutil"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMin <= 0 {
			return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
		}
	}
	if c.Retention.XPEventsDays <= 0 {
		return fmt.Errorf("retention.xp_events_days must be > 0 (got %d)", c.Retention.XPEventsDays)
	}
	if _, err := c.Admin.IDs(); err != nil {
		return fmt.Errorf("admin.user_ids: %w", err)
	}
	return nil
}

// Validate checks the client configuration.
func (c *ClientConfig) Validate() error {
	if c.API.Online() {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("api.base_url must be an http(s) URL (got %q)", c.API.BaseURL)
		}
		if _, err := ctxutil.ParseUserID(c.API.UserID); err != nil {
			return fmt.Errorf("api.user_id: %w", err)
		}
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Study.Subject != "" && !domain.Subject(c.Study.Subject).IsValid() {
		return fmt.Errorf("study.subject %q is not a known subject", c.Study.Subject)
	}
	if c.Study.TickInterval <= 0 {
		return fmt.Errorf("study.tick_interval must be > 0 (got %v)", c.Study.TickInterval)
	}
	if c.Sync.QueueSize <= 0 {
		return fmt.Errorf("sync.queue_size must be > 0 (got %d)", c.Sync.QueueSize)
	}
	if c.Sync.MaxRetries < 0 {
		return fmt.Errorf("sync.max_retries must be >= 0 (got %d)", c.Sync.MaxRetries)
	}
	return nil
}

func (l LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of %v (got %q)", logLevels, l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be one of %v (got %q)", logFormats, l.Format)
	}
	return nil
}
