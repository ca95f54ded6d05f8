package config

import "time"

// ClientConfig is the terminal study client configuration.
type ClientConfig struct {
	API   APIConfig   `yaml:"api"`
	Log   LogConfig   `yaml:"log"`
	Study StudyConfig `yaml:"study"`
	Sync  SyncConfig  `yaml:"sync"`
}

// APIConfig points the client at the collaborator server.
type APIConfig struct {
	// BaseURL empty means offline: the sample deck is used and XP stays local.
	BaseURL string        `yaml:"base_url" env:"STUDYBUDDY_API_URL"`
	UserID  string        `yaml:"user_id"  env:"STUDYBUDDY_USER_ID"`
	Timeout time.Duration `yaml:"timeout"  env:"STUDYBUDDY_API_TIMEOUT" env-default:"10s"`
}

// StudyConfig tunes the study session.
type StudyConfig struct {
	Subject           string        `yaml:"subject"             env:"STUDYBUDDY_SUBJECT"`
	TickInterval      time.Duration `yaml:"tick_interval"       env:"STUDYBUDDY_TICK_INTERVAL"       env-default:"1s"`
	ExcludePausedTime bool          `yaml:"exclude_paused_time" env:"STUDYBUDDY_EXCLUDE_PAUSED_TIME" env-default:"false"`
	Shuffle           bool          `yaml:"shuffle"             env:"STUDYBUDDY_SHUFFLE"             env-default:"false"`
	LiveTimer         bool          `yaml:"live_timer"          env:"STUDYBUDDY_LIVE_TIMER"          env-default:"false"`
}

// SyncConfig tunes background delivery of XP awards.
type SyncConfig struct {
	QueueSize       int           `yaml:"queue_size"       env:"STUDYBUDDY_SYNC_QUEUE_SIZE"       env-default:"64"`
	MaxRetries      int           `yaml:"max_retries"      env:"STUDYBUDDY_SYNC_MAX_RETRIES"      env-default:"3"`
	InitialInterval time.Duration `yaml:"initial_interval" env:"STUDYBUDDY_SYNC_INITIAL_INTERVAL" env-default:"500ms"`
	MaxInterval     time.Duration `yaml:"max_interval"     env:"STUDYBUDDY_SYNC_MAX_INTERVAL"     env-default:"5s"`
}

// Online reports whether a collaborator server is configured.
func (c APIConfig) Online() bool {
	return c.BaseURL != ""
}
