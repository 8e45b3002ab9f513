package projector

import (
	"context"
	"testing"
	"time"

	"github.com/callsight/callsight/ent/call"
	"github.com/callsight/callsight/ent/sentimentanalysis"
	"github.com/callsight/callsight/pkg/events"
	testdb "github.com/callsight/callsight/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerTestCall(t *testing.T, svc *CallService, callID string) {
	t.Helper()
	_, err := svc.RegisterCall(context.Background(), RegisterCallParams{
		CallID:        callID,
		CallerID:      "+15550100",
		AgentID:       "agent-7",
		Channel:       "support",
		AudioKey:      "calls/2026/08/" + callID + ".wav",
		FileFormat:    "wav",
		FileSizeBytes: 2048,
		StartTime:     time.Now(),
		CorrelationID: uuid.New().String(),
	})
	require.NoError(t, err)
}

func TestCallService_RegisterCall(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCallService(client.Client)
	ctx := context.Background()

	t.Run("registers and reads back", func(t *testing.T) {
		callID := uuid.New().String()
		registerTestCall(t, svc, callID)

		c, err := svc.GetCall(ctx, callID)
		require.NoError(t, err)
		assert.Equal(t, "agent-7", c.AgentID)
		assert.Equal(t, call.StatusReceived, c.Status)
	})

	t.Run("duplicate call id", func(t *testing.T) {
		callID := uuid.New().String()
		registerTestCall(t, svc, callID)

		_, err := svc.RegisterCall(ctx, RegisterCallParams{
			CallID:     callID,
			CallerID:   "+15550100",
			AgentID:    "agent-7",
			Channel:    "support",
			AudioKey:   "calls/dup.wav",
			FileFormat: "wav",
			StartTime:  time.Now(),
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := svc.RegisterCall(ctx, RegisterCallParams{CallID: "", AgentID: "a", AudioKey: "k"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing call", func(t *testing.T) {
		_, err := svc.GetCall(ctx, "no-such-call")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCallService_AdvanceStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCallService(client.Client)
	ctx := context.Background()

	callID := uuid.New().String()
	registerTestCall(t, svc, callID)

	require.NoError(t, svc.AdvanceStatus(ctx, callID, call.StatusAnalyzed))
	c, err := svc.GetCall(ctx, callID)
	require.NoError(t, err)
	assert.Equal(t, call.StatusAnalyzed, c.Status)

	// A late transcribed event must not regress the marker.
	require.NoError(t, svc.AdvanceStatus(ctx, callID, call.StatusTranscribed))
	c, err = svc.GetCall(ctx, callID)
	require.NoError(t, err)
	assert.Equal(t, call.StatusAnalyzed, c.Status)

	// Unknown call ids are a no-op, not an error.
	require.NoError(t, svc.AdvanceStatus(ctx, "no-such-call", call.StatusAudited))
}

func transcribedEnvelope(t *testing.T, callID string) (events.Envelope, events.CallTranscribedPayload) {
	t.Helper()
	conf := 0.97
	payload := events.CallTranscribedPayload{
		CallID:     callID,
		FullText:   "thank you for calling how can i help",
		Language:   "en",
		Confidence: 0.95,
		WordCount:  8,
		Segments: []events.Segment{
			{Speaker: events.SpeakerAgent, StartTime: 0, EndTime: 2.5, Text: "thank you for calling", Confidence: &conf},
			{Speaker: events.SpeakerCustomer, StartTime: 2.5, EndTime: 4.0, Text: "how can i help"},
		},
	}
	env, err := events.New(events.EventTypeCallTranscribed, callID, payload)
	require.NoError(t, err)
	return env, payload
}

func TestTranscriptionService_Project(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTranscriptionService(client.Client)
	ctx := context.Background()

	callID := uuid.New().String()
	env, payload := transcribedEnvelope(t, callID)

	created, err := svc.Project(ctx, env, payload)
	require.NoError(t, err)
	assert.True(t, created)

	row, err := svc.GetByCallID(ctx, callID)
	require.NoError(t, err)
	assert.Equal(t, payload.FullText, row.FullText)
	assert.Equal(t, env.EventID, row.EventID)
	require.Len(t, row.Edges.Segments, 2)
	assert.Equal(t, 0, row.Edges.Segments[0].Position)
	assert.Equal(t, "thank you for calling", row.Edges.Segments[0].Text)
	require.NotNil(t, row.Edges.Segments[0].Confidence)
	assert.InDelta(t, 0.97, *row.Edges.Segments[0].Confidence, 1e-9)
	assert.Nil(t, row.Edges.Segments[1].Confidence)

	// Redelivery of the same event leaves the store unchanged.
	created, err = svc.Project(ctx, env, payload)
	require.NoError(t, err)
	assert.False(t, created)

	// A duplicate with a different event id is still once-per-call.
	dup, err := events.New(events.EventTypeCallTranscribed, callID, payload)
	require.NoError(t, err)
	created, err = svc.Project(ctx, dup, payload)
	require.NoError(t, err)
	assert.False(t, created)

	row, err = svc.GetByCallID(ctx, callID)
	require.NoError(t, err)
	assert.Equal(t, env.EventID, row.EventID)
	assert.Len(t, row.Edges.Segments, 2)
}

func TestSentimentService_Project(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSentimentService(client.Client)
	ctx := context.Background()

	callID := uuid.New().String()
	payload := events.SentimentAnalyzedPayload{
		CallID:             callID,
		OverallSentiment:   events.SentimentNegative,
		SentimentScore:     -0.42,
		EscalationDetected: true,
		EscalationDetails:  &events.EscalationDetails{MaxDrop: 0.8, FromScore: 0.5, ToScore: -0.3},
		SegmentSentiments: []events.SegmentSentiment{
			{StartTime: 0, EndTime: 2.5, Sentiment: events.SentimentNeutral, Score: 0.1, Speaker: events.SpeakerCustomer},
		},
		ProcessingTimeMs: 120,
	}
	env, err := events.New(events.EventTypeSentimentAnalyzed, callID, payload)
	require.NoError(t, err)

	created, err := svc.Project(ctx, env, payload)
	require.NoError(t, err)
	assert.True(t, created)

	row, err := svc.GetByCallID(ctx, callID)
	require.NoError(t, err)
	assert.Equal(t, sentimentanalysis.OverallSentimentNegative, row.OverallSentiment)
	assert.True(t, row.EscalationDetected)
	assert.InDelta(t, 0.8, row.EscalationDetails["maxDrop"], 1e-9)
	require.Len(t, row.SegmentSentiments, 1)
	assert.Equal(t, "customer", row.SegmentSentiments[0]["speaker"])

	created, err = svc.Project(ctx, env, payload)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestVocService_Project(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewVocService(client.Client)
	ctx := context.Background()

	callID := uuid.New().String()
	payload := events.VocAnalyzedPayload{
		CallID:               callID,
		PrimaryIntent:        events.IntentComplaint,
		Topics:               []string{"billing"},
		Keywords:             []string{"overcharge"},
		CustomerSatisfaction: events.SatisfactionLow,
		PredictedChurnRisk:   0.9,
		ActionableItems:      []string{"refund review"},
		Summary:              "customer disputes an overcharge",
	}
	env, err := events.New(events.EventTypeVocAnalyzed, callID, payload)
	require.NoError(t, err)

	created, err := svc.Project(ctx, env, payload)
	require.NoError(t, err)
	assert.True(t, created)

	row, err := svc.GetByCallID(ctx, callID)
	require.NoError(t, err)
	assert.Equal(t, []string{"billing"}, row.Topics)
	assert.InDelta(t, 0.9, row.PredictedChurnRisk, 1e-9)

	created, err = svc.Project(ctx, env, payload)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestDossierService_GetDossier(t *testing.T) {
	client := testdb.NewTestClient(t)
	calls := NewCallService(client.Client)
	transcriptions := NewTranscriptionService(client.Client)
	dossiers := NewDossierService(client.Client)
	ctx := context.Background()

	t.Run("missing call", func(t *testing.T) {
		_, err := dossiers.GetDossier(ctx, "no-such-call")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("partial dossier while in flight", func(t *testing.T) {
		callID := uuid.New().String()
		registerTestCall(t, calls, callID)

		env, payload := transcribedEnvelope(t, callID)
		_, err := transcriptions.Project(ctx, env, payload)
		require.NoError(t, err)

		d, err := dossiers.GetDossier(ctx, callID)
		require.NoError(t, err)
		require.NotNil(t, d.Call)
		require.NotNil(t, d.Transcription)
		assert.Len(t, d.Transcription.Edges.Segments, 2)
		assert.Nil(t, d.Sentiment)
		assert.Nil(t, d.VocInsight)
		assert.Nil(t, d.AuditResult)
	})
}
