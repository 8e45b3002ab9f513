// Package config loads and validates CallSight configuration.
//
// Infrastructure endpoints (database, broker, cache, object storage,
// notification credentials) come from environment variables; pipeline
// tunables come from callsight.yaml in the configuration directory, merged
// over built-in defaults.
package config

// Config is the umbrella configuration object returned by Initialize and
// passed explicitly to every component. There are no global holders.
type Config struct {
	configDir string

	Pipeline      *PipelineConfig      `yaml:"pipeline"`
	Correlator    *CorrelatorConfig    `yaml:"correlator"`
	Aggregator    *AggregatorConfig    `yaml:"aggregator"`
	Scoring       *ScoringConfig       `yaml:"scoring"`
	Alerts        *AlertConfig         `yaml:"alerts"`
	Notifications *NotificationConfig  `yaml:"notifications"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
