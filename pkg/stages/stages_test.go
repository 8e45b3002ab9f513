package stages

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/callsight/callsight/ent/call"
	"github.com/callsight/callsight/pkg/audit"
	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/correlator"
	"github.com/callsight/callsight/pkg/database"
	"github.com/callsight/callsight/pkg/events"
	"github.com/callsight/callsight/pkg/mlservice"
	"github.com/callsight/callsight/pkg/projector"
	testdb "github.com/callsight/callsight/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpeech struct {
	result *mlservice.Transcription
	err    error
	calls  int
}

func (f *fakeSpeech) Transcribe(_ context.Context, callID, _, _ string) (*mlservice.Transcription, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	res := *f.result
	res.Payload.CallID = callID
	return &res, nil
}

type fakeAnalysis struct {
	sentiment *mlservice.Sentiment
	insights  *mlservice.Insights
	err       error
}

func (f *fakeAnalysis) AnalyzeSentiment(_ context.Context, callID string, _ events.CallTranscribedPayload) (*mlservice.Sentiment, error) {
	if f.err != nil {
		return nil, f.err
	}
	res := *f.sentiment
	res.Payload.CallID = callID
	return &res, nil
}

func (f *fakeAnalysis) ExtractInsights(_ context.Context, callID string, _ events.CallTranscribedPayload) (*mlservice.Insights, error) {
	if f.err != nil {
		return nil, f.err
	}
	res := *f.insights
	res.Payload.CallID = callID
	return &res, nil
}

// flakyPublisher fails the first failures publishes, then succeeds.
type flakyPublisher struct {
	failures  int
	published []events.Envelope
	topics    []string
}

func (f *flakyPublisher) Publish(_ context.Context, topic string, env events.Envelope) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("not enough replicas")
	}
	f.topics = append(f.topics, topic)
	f.published = append(f.published, env)
	return nil
}

func transcriptionResult() *mlservice.Transcription {
	conf := 0.93
	return &mlservice.Transcription{
		Payload: events.CallTranscribedPayload{
			FullText:   "Thank you for calling. Is there anything else I can help you with?",
			Language:   "en",
			Confidence: 0.93,
			WordCount:  13,
			Segments: []events.Segment{
				{Speaker: events.SpeakerAgent, StartTime: 0, EndTime: 4.2, Text: "Thank you for calling.", Confidence: &conf},
				{Speaker: events.SpeakerAgent, StartTime: 4.2, EndTime: 9.8, Text: "Is there anything else I can help you with?", Confidence: &conf},
			},
		},
		ModelVersion: "whisper-3",
	}
}

func receivedEnvelope(t *testing.T, callID string) events.Envelope {
	t.Helper()
	env, err := events.New(events.EventTypeCallReceived, callID, events.CallReceivedPayload{
		CallID:     callID,
		CallerID:   "+15550100",
		AgentID:    "agent-7",
		Channel:    "support",
		FileHandle: "calls/" + callID + ".wav",
		FileFormat: "wav",
		StartTime:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)
	return env.WithMetadata(events.MetaAgentID, "agent-7")
}

func registerCall(t *testing.T, calls *projector.CallService, callID string) {
	t.Helper()
	_, err := calls.RegisterCall(context.Background(), projector.RegisterCallParams{
		CallID:        callID,
		CallerID:      "+15550100",
		AgentID:       "agent-7",
		Channel:       "support",
		AudioKey:      "calls/" + callID + ".wav",
		FileFormat:    "wav",
		FileSizeBytes: 2048,
		StartTime:     time.Now(),
		CorrelationID: uuid.New().String(),
	})
	require.NoError(t, err)
}

func TestTranscribeStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	calls := projector.NewCallService(client.Client)
	transcriptions := projector.NewTranscriptionService(client.Client)
	ctx := context.Background()

	t.Run("transcribes, projects, advances status, emits", func(t *testing.T) {
		callID := uuid.New().String()
		registerCall(t, calls, callID)
		pub := &flakyPublisher{}
		stage := NewTranscribe(&fakeSpeech{result: transcriptionResult()}, calls, transcriptions, pub, events.TopicCallsTranscribed)

		env := receivedEnvelope(t, callID)
		result := stage.Handle(ctx, env)
		require.True(t, result.IsAck(), "unexpected result: %v", result.Err())

		row, err := transcriptions.GetByCallID(ctx, callID)
		require.NoError(t, err)
		assert.Len(t, row.Edges.Segments, 2)

		c, err := calls.GetCall(ctx, callID)
		require.NoError(t, err)
		assert.Equal(t, call.StatusTranscribed, c.Status)

		require.Len(t, pub.published, 1)
		out := pub.published[0]
		assert.Equal(t, []string{events.TopicCallsTranscribed}, pub.topics)
		assert.Equal(t, events.EventTypeCallTranscribed, out.EventType)
		assert.Equal(t, env.CorrelationID, out.CorrelationID)
		assert.Equal(t, env.EventID, out.CausationID)
		assert.Equal(t, "agent-7", out.Metadata[events.MetaAgentID])
		assert.Equal(t, "whisper-3", out.Metadata[events.MetaModelVersion])
	})

	t.Run("replay projects once but re-emits", func(t *testing.T) {
		callID := uuid.New().String()
		registerCall(t, calls, callID)
		pub := &flakyPublisher{}
		speech := &fakeSpeech{result: transcriptionResult()}
		stage := NewTranscribe(speech, calls, transcriptions, pub, events.TopicCallsTranscribed)

		env := receivedEnvelope(t, callID)
		require.True(t, stage.Handle(ctx, env).IsAck())
		require.True(t, stage.Handle(ctx, env).IsAck())

		assert.Equal(t, 2, speech.calls)
		require.Len(t, pub.published, 2)
		// Both emissions carry the same event id, so eventId-keyed dedup
		// downstream absorbs the second one.
		assert.Equal(t, pub.published[0].EventID, pub.published[1].EventID)

		row, err := transcriptions.GetByCallID(ctx, callID)
		require.NoError(t, err)
		assert.Len(t, row.Edges.Segments, 2)
	})

	t.Run("speech failure is transient", func(t *testing.T) {
		stage := NewTranscribe(&fakeSpeech{err: errors.New("deadline exceeded")}, calls, transcriptions, &flakyPublisher{}, events.TopicCallsTranscribed)

		result := stage.Handle(ctx, receivedEnvelope(t, uuid.New().String()))
		assert.True(t, result.IsRetry())
	})

	t.Run("malformed payload is permanent", func(t *testing.T) {
		stage := NewTranscribe(&fakeSpeech{result: transcriptionResult()}, calls, transcriptions, &flakyPublisher{}, events.TopicCallsTranscribed)

		env := receivedEnvelope(t, uuid.New().String())
		env.Payload = json.RawMessage(`{"callId": 42}`)
		result := stage.Handle(ctx, env)
		assert.False(t, result.IsAck())
		assert.False(t, result.IsRetry())
		assert.ErrorIs(t, result.Err(), events.ErrMalformedEnvelope)
	})

	t.Run("publish failure is transient", func(t *testing.T) {
		callID := uuid.New().String()
		stage := NewTranscribe(&fakeSpeech{result: transcriptionResult()}, calls, transcriptions, &flakyPublisher{failures: 1}, events.TopicCallsTranscribed)

		result := stage.Handle(ctx, receivedEnvelope(t, callID))
		assert.True(t, result.IsRetry())
	})
}

func analysisResults() *fakeAnalysis {
	return &fakeAnalysis{
		sentiment: &mlservice.Sentiment{
			Payload: events.SentimentAnalyzedPayload{
				OverallSentiment: events.SentimentPositive,
				SentimentScore:   0.6,
				SegmentSentiments: []events.SegmentSentiment{
					{StartTime: 0, EndTime: 9.8, Sentiment: events.SentimentPositive, Score: 0.6, Speaker: events.SpeakerCustomer},
				},
			},
			ModelVersion: "sentiment-2",
		},
		insights: &mlservice.Insights{
			Payload: events.VocAnalyzedPayload{
				PrimaryIntent:        events.IntentInquiry,
				Topics:               []string{"billing"},
				Keywords:             []string{"invoice"},
				CustomerSatisfaction: events.SatisfactionHigh,
				PredictedChurnRisk:   0.2,
				Summary:              "Routine billing question.",
			},
			ModelVersion: "voc-2",
		},
	}
}

func transcribedEnvelope(t *testing.T, callID string) events.Envelope {
	t.Helper()
	parent := receivedEnvelope(t, callID)
	env, err := events.Derive(parent, events.EventTypeCallTranscribed, transcriptionResult().Payload)
	require.NoError(t, err)
	return env
}

func TestSentimentAndVocStages(t *testing.T) {
	client := testdb.NewTestClient(t)
	calls := projector.NewCallService(client.Client)
	sentiments := projector.NewSentimentService(client.Client)
	insights := projector.NewVocService(client.Client)
	ctx := context.Background()

	t.Run("sentiment stage projects and emits", func(t *testing.T) {
		callID := uuid.New().String()
		pub := &flakyPublisher{}
		stage := NewSentiment(analysisResults(), calls, sentiments, pub, events.TopicCallsSentimentAnalyzed)

		env := transcribedEnvelope(t, callID)
		require.True(t, stage.Handle(ctx, env).IsAck())

		row, err := sentiments.GetByCallID(ctx, callID)
		require.NoError(t, err)
		assert.Equal(t, 0.6, row.SentimentScore)

		require.Len(t, pub.published, 1)
		assert.Equal(t, events.EventTypeSentimentAnalyzed, pub.published[0].EventType)
		assert.Equal(t, env.CorrelationID, pub.published[0].CorrelationID)
		assert.Equal(t, "agent-7", pub.published[0].Metadata[events.MetaAgentID])
	})

	t.Run("voc stage projects and emits", func(t *testing.T) {
		callID := uuid.New().String()
		pub := &flakyPublisher{}
		stage := NewVoc(analysisResults(), calls, insights, pub, events.TopicCallsVocAnalyzed)

		env := transcribedEnvelope(t, callID)
		require.True(t, stage.Handle(ctx, env).IsAck())

		row, err := insights.GetByCallID(ctx, callID)
		require.NoError(t, err)
		assert.Equal(t, 0.2, row.PredictedChurnRisk)

		require.Len(t, pub.published, 1)
		assert.Equal(t, events.EventTypeVocAnalyzed, pub.published[0].EventType)
	})

	t.Run("analysis failure is transient", func(t *testing.T) {
		broken := &fakeAnalysis{err: errors.New("deadline exceeded")}
		stage := NewSentiment(broken, calls, sentiments, &flakyPublisher{}, events.TopicCallsSentimentAnalyzed)

		result := stage.Handle(ctx, transcribedEnvelope(t, uuid.New().String()))
		assert.True(t, result.IsRetry())
	})
}

func auditFragments(t *testing.T, callID string) []events.Envelope {
	t.Helper()
	root := receivedEnvelope(t, callID)

	transcribed, err := events.Derive(root, events.EventTypeCallTranscribed, transcriptionResult().Payload)
	require.NoError(t, err)

	analysis := analysisResults()
	sentimentPayload := analysis.sentiment.Payload
	sentimentPayload.CallID = callID
	sentiment, err := events.Derive(transcribed, events.EventTypeSentimentAnalyzed, sentimentPayload)
	require.NoError(t, err)

	vocPayload := analysis.insights.Payload
	vocPayload.CallID = callID
	voc, err := events.Derive(transcribed, events.EventTypeVocAnalyzed, vocPayload)
	require.NoError(t, err)

	return []events.Envelope{transcribed, sentiment, voc}
}

func newAuditStage(t *testing.T, client *database.Client, pub Publisher) (*Audit, *correlator.Correlator) {
	t.Helper()
	corr := correlator.New(config.DefaultCorrelatorConfig())
	stage := NewAudit(
		corr,
		audit.NewRuleService(client.Client),
		audit.NewScorer(config.DefaultScoringConfig()),
		audit.NewResultService(client.Client),
		projector.NewCallService(client.Client),
		pub,
		events.TopicCallsAudited,
	)
	return stage, corr
}

func TestAuditStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	results := audit.NewResultService(client.Client)
	ctx := context.Background()

	t.Run("third fragment completes and audits", func(t *testing.T) {
		callID := uuid.New().String()
		pub := &flakyPublisher{}
		stage, corr := newAuditStage(t, client, pub)

		fragments := auditFragments(t, callID)
		for i, env := range fragments {
			result := stage.Handle(ctx, env)
			require.True(t, result.IsAck(), "fragment %d: %v", i, result.Err())
		}
		assert.Equal(t, 0, corr.PendingCount())

		row, err := results.GetByCallID(ctx, callID)
		require.NoError(t, err)
		assert.Equal(t, fragments[2].EventID, row.EventID)

		require.Len(t, pub.published, 1)
		out := pub.published[0]
		assert.Equal(t, events.EventTypeCallAudited, out.EventType)
		assert.Equal(t, fragments[2].EventID, out.CausationID)
		assert.Equal(t, fragments[2].CorrelationID, out.CorrelationID)

		var payload events.CallAuditedPayload
		require.NoError(t, out.DecodePayload(&payload))
		assert.Equal(t, row.OverallScore, payload.OverallScore)
		assert.Equal(t, string(row.ComplianceStatus), payload.ComplianceStatus)
	})

	t.Run("redelivered fragment after completion is absorbed", func(t *testing.T) {
		callID := uuid.New().String()
		pub := &flakyPublisher{}
		stage, corr := newAuditStage(t, client, pub)

		fragments := auditFragments(t, callID)
		for _, env := range fragments {
			require.True(t, stage.Handle(ctx, env).IsAck())
		}

		// The audit row already exists and no partial is pending, so the
		// fragment must not open a fresh partial for the sweep to miscount
		// as a pipeline gap.
		require.True(t, stage.Handle(ctx, fragments[1]).IsAck())
		assert.Equal(t, 0, corr.PendingCount())
		assert.Len(t, pub.published, 1)
	})

	t.Run("publish failure restores the triple for redelivery", func(t *testing.T) {
		callID := uuid.New().String()
		pub := &flakyPublisher{failures: 1}
		stage, corr := newAuditStage(t, client, pub)

		fragments := auditFragments(t, callID)
		require.True(t, stage.Handle(ctx, fragments[0]).IsAck())
		require.True(t, stage.Handle(ctx, fragments[1]).IsAck())

		result := stage.Handle(ctx, fragments[2])
		require.True(t, result.IsRetry())
		assert.Equal(t, 1, corr.PendingCount())

		// Redelivery completes the restored triple; the persisted row is
		// reused and only the emission is repeated.
		require.True(t, stage.Handle(ctx, fragments[2]).IsAck())
		assert.Equal(t, 0, corr.PendingCount())
		require.Len(t, pub.published, 1)

		row, err := results.GetByCallID(ctx, callID)
		require.NoError(t, err)
		assert.Equal(t, fragments[2].EventID, row.EventID)
	})

	t.Run("unexpected event type is acknowledged", func(t *testing.T) {
		stage, _ := newAuditStage(t, client, &flakyPublisher{})
		env, err := events.New(events.EventTypeCallReceived, uuid.New().String(), events.CallReceivedPayload{})
		require.NoError(t, err)
		assert.True(t, stage.Handle(ctx, env).IsAck())
	})
}
