package stages

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/callsight/callsight/pkg/analytics"
	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
	"github.com/callsight/callsight/pkg/notify"
	testdb "github.com/callsight/callsight/test/database"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []string
}

func (r *recordingSender) Send(_ context.Context, recipient, _, _ string) error {
	r.sent = append(r.sent, recipient)
	return nil
}

func TestNotifyStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := notify.NewNotificationService(client.Client)
	engine := notify.NewEngine(config.DefaultAlertConfig())
	ctx := context.Background()

	t.Run("escalation event produces delivered notifications", func(t *testing.T) {
		chat := &recordingSender{}
		dispatcher := notify.NewDispatcher(engine, svc, map[string]notify.Sender{notify.ChannelChat: chat})
		stage := NewNotify(engine, dispatcher)

		callID := uuid.New().String()
		env, err := events.New(events.EventTypeSentimentAnalyzed, callID, events.SentimentAnalyzedPayload{
			CallID:             callID,
			OverallSentiment:   events.SentimentNegative,
			SentimentScore:     -0.6,
			EscalationDetected: true,
		})
		require.NoError(t, err)

		require.True(t, stage.Handle(ctx, env).IsAck())
		assert.Len(t, chat.sent, 2)

		rows, err := svc.List(ctx, callID, "sent", 0)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("quiet event produces nothing", func(t *testing.T) {
		dispatcher := notify.NewDispatcher(engine, svc, nil)
		stage := NewNotify(engine, dispatcher)

		callID := uuid.New().String()
		env, err := events.New(events.EventTypeVocAnalyzed, callID, events.VocAnalyzedPayload{
			CallID: callID, PredictedChurnRisk: 0.1,
		})
		require.NoError(t, err)

		require.True(t, stage.Handle(ctx, env).IsAck())
		rows, err := svc.List(ctx, callID, "", 0)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestAnalyticsStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	agg := analytics.NewAggregator(client.Client, rdb, config.DefaultAggregatorConfig())
	stage := NewAnalytics(agg)
	ctx := context.Background()

	callID := uuid.New().String()
	env, err := events.New(events.EventTypeCallAudited, callID, events.CallAuditedPayload{
		CallID: callID, OverallScore: 80, ComplianceStatus: events.ComplianceStatusPassed,
	})
	require.NoError(t, err)
	env = env.WithMetadata(events.MetaAgentID, "agent-7")

	require.True(t, stage.Handle(ctx, env).IsAck())
	// Duplicate delivery is absorbed by the dedup set.
	require.True(t, stage.Handle(ctx, env).IsAck())

	// An event without an agent id is skipped cleanly.
	anon, err := events.New(events.EventTypeCallAudited, uuid.New().String(), events.CallAuditedPayload{})
	require.NoError(t, err)
	require.True(t, stage.Handle(ctx, anon).IsAck())
}
