package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration.
// callsight.yaml in configDir is optional; when present, its values are
// decoded over the built-in defaults so partial files only override what
// they name.
func Initialize(configDir string) (*Config, error) {
	cfg := &Config{
		configDir:     configDir,
		Pipeline:      DefaultPipelineConfig(),
		Correlator:    DefaultCorrelatorConfig(),
		Aggregator:    DefaultAggregatorConfig(),
		Scoring:       DefaultScoringConfig(),
		Alerts:        DefaultAlertConfig(),
		Notifications: DefaultNotificationConfig(),
	}

	path := filepath.Join(configDir, "callsight.yaml")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Info("No callsight.yaml found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		slog.Info("Loaded configuration", "path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks cross-field constraints that yaml decoding cannot.
func (c *Config) Validate() error {
	s := c.Scoring
	if sum := s.ScriptWeight + s.ServiceWeight + s.ResolutionWeight; math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %v", sum)
	}
	if s.PassThreshold < 0 || s.PassThreshold > 100 {
		return fmt.Errorf("pass_threshold must be in 0..100, got %d", s.PassThreshold)
	}
	if s.FailThreshold < 0 || s.FailThreshold > s.PassThreshold {
		return fmt.Errorf("fail_threshold must be in 0..pass_threshold, got %d", s.FailThreshold)
	}
	if c.Pipeline.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1, got %d", c.Pipeline.MaxAttempts)
	}
	if c.Correlator.TTL <= 0 {
		return fmt.Errorf("correlator ttl must be positive, got %v", c.Correlator.TTL)
	}
	if c.Aggregator.FlushInterval <= 0 {
		return fmt.Errorf("aggregator flush_interval must be positive, got %v", c.Aggregator.FlushInterval)
	}
	if c.Alerts.ChurnThreshold < 0 || c.Alerts.ChurnThreshold > 1 {
		return fmt.Errorf("churn_threshold must be in 0..1, got %v", c.Alerts.ChurnThreshold)
	}
	return nil
}
