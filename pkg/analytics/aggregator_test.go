package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
	testdb "github.com/callsight/callsight/test/database"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func auditedEnvelope(t *testing.T, agentID string, overallScore int, ts time.Time) events.Envelope {
	t.Helper()
	env, err := events.New(events.EventTypeCallAudited, uuid.New().String(), events.CallAuditedPayload{
		CallID:           "c-" + uuid.New().String(),
		OverallScore:     overallScore,
		ComplianceStatus: events.ComplianceStatusPassed,
	})
	require.NoError(t, err)
	env.Timestamp = ts
	return env.WithMetadata(events.MetaAgentID, agentID)
}

func TestExtract(t *testing.T) {
	ts := time.Date(2026, 8, 24, 14, 30, 0, 0, time.UTC)

	t.Run("missing agent id skips", func(t *testing.T) {
		env, err := events.New(events.EventTypeCallAudited, "c1", events.CallAuditedPayload{CallID: "c1"})
		require.NoError(t, err)
		_, ok := Extract(env)
		assert.False(t, ok)
	})

	t.Run("unknown event type skips", func(t *testing.T) {
		env, err := events.New(events.EventTypeCallReceived, "c1", events.CallReceivedPayload{CallID: "c1"})
		require.NoError(t, err)
		_, ok := Extract(env.WithMetadata(events.MetaAgentID, "a1"))
		assert.False(t, ok)
	})

	t.Run("sentiment event carries sentiment only", func(t *testing.T) {
		env, err := events.New(events.EventTypeSentimentAnalyzed, "c1", events.SentimentAnalyzedPayload{
			CallID: "c1", SentimentScore: -0.4,
		})
		require.NoError(t, err)
		env.Timestamp = ts
		obs, ok := Extract(env.WithMetadata(events.MetaAgentID, "a1"))
		require.True(t, ok)
		assert.Equal(t, "2026-08-24T14", obs.HourKey)
		require.NotNil(t, obs.Sentiment)
		assert.InDelta(t, -0.4, *obs.Sentiment, 1e-9)
		assert.Nil(t, obs.Quality)
		assert.Nil(t, obs.Satisfaction)
	})

	t.Run("voc event carries satisfaction and churn", func(t *testing.T) {
		env, err := events.New(events.EventTypeVocAnalyzed, "c1", events.VocAnalyzedPayload{
			CallID: "c1", CustomerSatisfaction: events.SatisfactionHigh, PredictedChurnRisk: 0.3,
		})
		require.NoError(t, err)
		obs, ok := Extract(env.WithMetadata(events.MetaAgentID, "a1"))
		require.True(t, ok)
		require.NotNil(t, obs.Satisfaction)
		assert.InDelta(t, 1.0, *obs.Satisfaction, 1e-9)
		require.NotNil(t, obs.ChurnRisk)
		assert.InDelta(t, 0.3, *obs.ChurnRisk, 1e-9)
	})

	t.Run("audited event carries quality and pass rate", func(t *testing.T) {
		obs, ok := Extract(auditedEnvelope(t, "a1", 88, ts))
		require.True(t, ok)
		require.NotNil(t, obs.Quality)
		assert.InDelta(t, 0.88, *obs.Quality, 1e-9)
		require.NotNil(t, obs.ComplianceOK)
		assert.InDelta(t, 1.0, *obs.ComplianceOK, 1e-9)
	})
}

func TestMergeAvg(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	t.Run("merge law", func(t *testing.T) {
		// Merging (n1,n2) running averages equals one mean over all values.
		values := []float64{0.8, 1.0, 0.7, 0.4, 0.9}
		left := (0.8 + 1.0) / 2
		right := (0.7 + 0.4 + 0.9) / 3
		merged := mergeAvg(f(left), 2, f(right), 3)
		require.NotNil(t, merged)

		sum := 0.0
		for _, v := range values {
			sum += v
		}
		assert.InDelta(t, sum/5, *merged, 1e-12)
	})

	t.Run("null-safe", func(t *testing.T) {
		assert.Nil(t, mergeAvg(nil, 0, nil, 3))
		got := mergeAvg(nil, 2, f(0.5), 3)
		require.NotNil(t, got)
		assert.InDelta(t, 0.5, *got, 1e-12)
		got = mergeAvg(f(0.25), 4, nil, 0)
		require.NotNil(t, got)
		assert.InDelta(t, 0.25, *got, 1e-12)
	})
}

func TestAggregator_ObserveDeduplicates(t *testing.T) {
	rdb := testRedis(t)
	cfg := config.DefaultAggregatorConfig()
	agg := NewAggregator(nil, rdb, cfg)
	ctx := context.Background()

	env := auditedEnvelope(t, "a1", 80, time.Now().UTC())
	require.NoError(t, agg.Observe(ctx, env))
	require.NoError(t, agg.Observe(ctx, env))

	obs, err := agg.buf.drain(ctx, "a1|"+env.Timestamp.UTC().Format(hourKeyFormat))
	require.NoError(t, err)
	assert.Len(t, obs, 1)
}

func TestAggregator_FlushMerges(t *testing.T) {
	client := testdb.NewTestClient(t)
	rdb := testRedis(t)
	cfg := config.DefaultAggregatorConfig()
	agg := NewAggregator(client.Client, rdb, cfg)
	ctx := context.Background()

	ts := time.Date(2026, 8, 24, 9, 12, 0, 0, time.UTC)
	slot := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	perf := NewPerformanceService(client.Client)

	require.NoError(t, agg.Observe(ctx, auditedEnvelope(t, "a1", 80, ts)))
	require.NoError(t, agg.Observe(ctx, auditedEnvelope(t, "a1", 100, ts)))
	require.NoError(t, agg.Flush(ctx))

	rows, err := perf.ListSlots(ctx, "a1", slot, slot.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Count)
	require.NotNil(t, rows[0].AvgQuality)
	assert.InDelta(t, 0.90, *rows[0].AvgQuality, 1e-9)

	// A later flush merges into the same row with the running-average
	// formula.
	require.NoError(t, agg.Observe(ctx, auditedEnvelope(t, "a1", 70, ts.Add(20*time.Minute))))
	require.NoError(t, agg.Flush(ctx))

	rows, err = perf.ListSlots(ctx, "a1", slot, slot.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Count)
	assert.InDelta(t, (0.90*2+0.70)/3, *rows[0].AvgQuality, 1e-9)

	// An empty flush is a no-op.
	require.NoError(t, agg.Flush(ctx))
	rows, err = perf.ListSlots(ctx, "a1", slot, slot.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, rows[0].Count)
}
