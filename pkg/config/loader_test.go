package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	t.Run("defaults when no yaml present", func(t *testing.T) {
		cfg, err := Initialize(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "calls.received", cfg.Pipeline.Topics.Received)
		assert.Equal(t, ".dlq", cfg.Pipeline.DLQSuffix)
		assert.Equal(t, 5, cfg.Pipeline.MaxAttempts)
		assert.Equal(t, 70, cfg.Scoring.PassThreshold)
		assert.Equal(t, 50, cfg.Scoring.FailThreshold)
		assert.Equal(t, 10*time.Minute, cfg.Correlator.TTL)
		assert.Equal(t, 5*time.Minute, cfg.Aggregator.FlushInterval)
		assert.InDelta(t, 0.7, cfg.Alerts.ChurnThreshold, 1e-9)
	})

	t.Run("partial yaml overrides only named values", func(t *testing.T) {
		dir := t.TempDir()
		yaml := `
correlator:
  ttl: 2m
scoring:
  pass_threshold: 80
  fail_threshold: 40
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "callsight.yaml"), []byte(yaml), 0o644))

		cfg, err := Initialize(dir)
		require.NoError(t, err)

		assert.Equal(t, 2*time.Minute, cfg.Correlator.TTL)
		assert.Equal(t, 80, cfg.Scoring.PassThreshold)
		assert.Equal(t, 40, cfg.Scoring.FailThreshold)
		// Untouched values keep defaults.
		assert.Equal(t, 30*time.Second, cfg.Correlator.SweepInterval)
		assert.InDelta(t, 0.30, cfg.Scoring.ScriptWeight, 1e-9)
	})

	t.Run("rejects weights not summing to one", func(t *testing.T) {
		dir := t.TempDir()
		yaml := `
scoring:
  script_weight: 0.5
  service_weight: 0.5
  resolution_weight: 0.5
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "callsight.yaml"), []byte(yaml), 0o644))

		_, err := Initialize(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "weights must sum")
	})

	t.Run("rejects fail threshold above pass threshold", func(t *testing.T) {
		dir := t.TempDir()
		yaml := `
scoring:
  pass_threshold: 50
  fail_threshold: 60
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "callsight.yaml"), []byte(yaml), 0o644))

		_, err := Initialize(dir)
		require.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "callsight.yaml"), []byte("pipeline: ["), 0o644))

		_, err := Initialize(dir)
		require.Error(t, err)
	})
}
