package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type validatable interface {
	Validate() error
}

// Load reads the server configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config
	if err := read(os.Getenv("CONFIG_PATH"), &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// LoadClient reads the client configuration from path (or CONFIG_PATH when
// path is empty). override runs before validation so command-line flags can
// take precedence over file and environment.
func LoadClient(path string, override func(*ClientConfig)) (*ClientConfig, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg ClientConfig
	if err := read(path, &cfg); err != nil {
		return nil, err
	}
	if override != nil {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, cfg validatable) error {
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	} else if explicitPath {
		return fmt.Errorf("config: file %s: %w", path, err)
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}
