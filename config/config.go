// Package config loads the rsmap YAML configuration.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFileName = "rsmap.yaml"

	defaultLogLevel     = "info"
	defaultWorkers      = 5
	defaultOpsPerWorker = 100
)

// Config holds the driver configuration.
type Config struct {
	Log struct {
		Level string `yaml:"level,omitempty"` // debug, info, warn, error
	} `yaml:"log,omitempty"`

	// Seed values are inserted before any command runs.
	Seed []string `yaml:"seed,omitempty"`

	Stress struct {
		Workers      int `yaml:"workers,omitempty"`
		OpsPerWorker int `yaml:"ops_per_worker,omitempty"`
	} `yaml:"stress,omitempty"`
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadFromFile(path)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return nil, err
		}
		cfg = &Config{}
	}
	applyDefaults(cfg)
	if _, err := cfg.LogLevel(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Stress.Workers <= 0 {
		cfg.Stress.Workers = defaultWorkers
	}
	if cfg.Stress.OpsPerWorker <= 0 {
		cfg.Stress.OpsPerWorker = defaultOpsPerWorker
	}
}

// LogLevel maps Log.Level to a slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Errorf("unknown log level %q", c.Log.Level)
}
