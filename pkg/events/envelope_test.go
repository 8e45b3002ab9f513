package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndDerive(t *testing.T) {
	t.Run("root envelope gets fresh ids", func(t *testing.T) {
		env, err := New(EventTypeCallReceived, "call-1", CallReceivedPayload{CallID: "call-1"})
		require.NoError(t, err)

		assert.NotEmpty(t, env.EventID)
		assert.NotEmpty(t, env.CorrelationID)
		assert.Empty(t, env.CausationID)
		assert.Equal(t, "call-1", env.AggregateID)
		assert.Equal(t, AggregateTypeCall, env.AggregateType)
		assert.Equal(t, SchemaVersion, env.Version)
		assert.False(t, env.Timestamp.IsZero())
	})

	t.Run("derived envelope inherits correlation and sets causation", func(t *testing.T) {
		root, err := New(EventTypeCallReceived, "call-2", CallReceivedPayload{CallID: "call-2"})
		require.NoError(t, err)

		child, err := Derive(root, EventTypeCallTranscribed, CallTranscribedPayload{CallID: "call-2"})
		require.NoError(t, err)

		assert.Equal(t, root.CorrelationID, child.CorrelationID)
		assert.Equal(t, root.EventID, child.CausationID)
		assert.NotEqual(t, root.EventID, child.EventID)
		assert.Equal(t, root.AggregateID, child.AggregateID)
	})

	t.Run("re-deriving the same result reuses the event id", func(t *testing.T) {
		root, err := New(EventTypeCallReceived, "call-5", CallReceivedPayload{CallID: "call-5"})
		require.NoError(t, err)

		first, err := Derive(root, EventTypeSentimentAnalyzed, SentimentAnalyzedPayload{CallID: "call-5"})
		require.NoError(t, err)
		second, err := Derive(root, EventTypeSentimentAnalyzed, SentimentAnalyzedPayload{CallID: "call-5"})
		require.NoError(t, err)
		assert.Equal(t, first.EventID, second.EventID)

		other, err := Derive(root, EventTypeVocAnalyzed, VocAnalyzedPayload{CallID: "call-5"})
		require.NoError(t, err)
		assert.NotEqual(t, first.EventID, other.EventID)
	})

	t.Run("agent id metadata inherits, stage metadata does not", func(t *testing.T) {
		root, err := New(EventTypeCallReceived, "call-2", CallReceivedPayload{CallID: "call-2"})
		require.NoError(t, err)
		root = root.WithMetadata(MetaAgentID, "agent-9").WithMetadata(MetaService, "ingest")

		child, err := Derive(root, EventTypeCallTranscribed, CallTranscribedPayload{CallID: "call-2"})
		require.NoError(t, err)

		assert.Equal(t, "agent-9", child.Metadata[MetaAgentID])
		assert.NotContains(t, child.Metadata, MetaService)
	})

	t.Run("correlation id survives the whole chain", func(t *testing.T) {
		root, err := New(EventTypeCallReceived, "call-3", CallReceivedPayload{CallID: "call-3"})
		require.NoError(t, err)

		prev := root
		for _, et := range []string{EventTypeCallTranscribed, EventTypeSentimentAnalyzed, EventTypeCallAudited} {
			next, err := Derive(prev, et, map[string]string{"callId": "call-3"})
			require.NoError(t, err)
			assert.Equal(t, root.CorrelationID, next.CorrelationID)
			prev = next
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		env, err := New(EventTypeVocAnalyzed, "call-4", VocAnalyzedPayload{
			CallID:               "call-4",
			PrimaryIntent:        IntentInquiry,
			CustomerSatisfaction: SatisfactionHigh,
			PredictedChurnRisk:   0.2,
		})
		require.NoError(t, err)

		data, err := env.Marshal()
		require.NoError(t, err)

		got, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, env.EventID, got.EventID)
		assert.Equal(t, env.CorrelationID, got.CorrelationID)

		var payload VocAnalyzedPayload
		require.NoError(t, got.DecodePayload(&payload))
		assert.Equal(t, IntentInquiry, payload.PrimaryIntent)
		assert.InDelta(t, 0.2, payload.PredictedChurnRisk, 1e-9)
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		data := []byte(`{"eventId":"e1","eventType":"call.received","aggregateId":"c1",
			"aggregateType":"call","version":1,"correlationId":"x",
			"futureField":"ignored","payload":{"callId":"c1"}}`)
		env, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, "e1", env.EventID)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Decode([]byte("not json"))
		assert.ErrorIs(t, err, ErrMalformedEnvelope)
	})

	t.Run("rejects missing identity fields", func(t *testing.T) {
		_, err := Decode([]byte(`{"eventType":"call.received","payload":{}}`))
		assert.ErrorIs(t, err, ErrMalformedEnvelope)
	})

	t.Run("rejects newer schema version", func(t *testing.T) {
		_, err := Decode([]byte(`{"eventId":"e1","eventType":"call.received","aggregateId":"c1","version":99,"payload":{}}`))
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})
}

func TestPartitionKey(t *testing.T) {
	env, err := New(EventTypeCallReceived, "call-77", CallReceivedPayload{CallID: "call-77"})
	require.NoError(t, err)
	assert.Equal(t, []byte("call-77"), env.PartitionKey())
}

func TestTopicForEventType(t *testing.T) {
	cases := map[string]string{
		EventTypeCallReceived:      TopicCallsReceived,
		EventTypeCallTranscribed:   TopicCallsTranscribed,
		EventTypeSentimentAnalyzed: TopicCallsSentimentAnalyzed,
		EventTypeVocAnalyzed:       TopicCallsVocAnalyzed,
		EventTypeCallAudited:       TopicCallsAudited,
		"call.unknown":             "",
	}
	for et, topic := range cases {
		assert.Equal(t, topic, TopicForEventType(et), et)
	}
}

func TestPayloadFieldNames(t *testing.T) {
	// Wire field names are a contract with non-Go consumers; pin a few.
	data, err := json.Marshal(CallAuditedPayload{CallID: "c1", OverallScore: 88, ComplianceStatus: ComplianceStatusPassed})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "callId")
	assert.Contains(t, m, "overallScore")
	assert.Contains(t, m, "complianceStatus")
	assert.Contains(t, m, "flagsForReview")
}
