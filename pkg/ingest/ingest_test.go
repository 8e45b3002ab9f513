package ingest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/callsight/callsight/ent/call"
	"github.com/callsight/callsight/pkg/events"
	"github.com/callsight/callsight/pkg/projector"
	testdb "github.com/callsight/callsight/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	keys []string
	body []byte
	err  error
}

func (f *fakeStore) Put(_ context.Context, key, _ string, _ int64, body io.Reader) error {
	if f.err != nil {
		return f.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.keys = append(f.keys, key)
	f.body = data
	return nil
}

type fakePublisher struct {
	published []events.Envelope
	topics    []string
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, topic string, env events.Envelope) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, topic)
	f.published = append(f.published, env)
	return nil
}

func testParams(callID string) IngestParams {
	return IngestParams{
		CallID:        callID,
		CallerID:      "+15550100",
		AgentID:       "agent-7",
		Channel:       "support",
		FileFormat:    "wav",
		FileSizeBytes: 4,
		StartTime:     time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC),
		Audio:         bytes.NewReader([]byte("RIFF")),
	}
}

func TestService_IngestCall(t *testing.T) {
	client := testdb.NewTestClient(t)
	calls := projector.NewCallService(client.Client)
	ctx := context.Background()

	t.Run("stores audio, registers the call, and publishes", func(t *testing.T) {
		store := &fakeStore{}
		pub := &fakePublisher{}
		svc := NewService(store, calls, pub)
		callID := uuid.New().String()

		res, err := svc.IngestCall(ctx, testParams(callID))
		require.NoError(t, err)
		require.NotNil(t, res.Call)
		assert.Equal(t, call.StatusReceived, res.Call.Status)

		require.Len(t, store.keys, 1)
		assert.Equal(t, "calls/"+callID+".wav", store.keys[0])
		assert.Equal(t, []byte("RIFF"), store.body)

		require.Len(t, pub.published, 1)
		env := pub.published[0]
		assert.Equal(t, []string{events.TopicCallsReceived}, pub.topics)
		assert.Equal(t, events.EventTypeCallReceived, env.EventType)
		assert.Equal(t, callID, env.AggregateID)
		assert.Equal(t, res.EventID, env.EventID)
		assert.NotEmpty(t, env.CorrelationID)
		assert.Empty(t, env.CausationID)
		assert.Equal(t, "agent-7", env.Metadata[events.MetaAgentID])
		assert.Equal(t, res.Call.CorrelationID, env.CorrelationID)

		var payload events.CallReceivedPayload
		require.NoError(t, env.DecodePayload(&payload))
		assert.Equal(t, callID, payload.CallID)
		assert.Equal(t, "calls/"+callID+".wav", payload.FileHandle)
		assert.Equal(t, "2026-08-24T10:30:00Z", payload.StartTime)
	})

	t.Run("generates a call id when none is given", func(t *testing.T) {
		store := &fakeStore{}
		pub := &fakePublisher{}
		svc := NewService(store, calls, pub)

		params := testParams("")
		res, err := svc.IngestCall(ctx, params)
		require.NoError(t, err)
		assert.NotEmpty(t, res.Call.ID)
		assert.Equal(t, "calls/"+res.Call.ID+".wav", store.keys[0])
	})

	t.Run("each ingestion gets its own correlation id", func(t *testing.T) {
		pub := &fakePublisher{}
		svc := NewService(&fakeStore{}, calls, pub)

		a := testParams(uuid.New().String())
		b := testParams(uuid.New().String())
		_, err := svc.IngestCall(ctx, a)
		require.NoError(t, err)
		_, err = svc.IngestCall(ctx, b)
		require.NoError(t, err)
		assert.NotEqual(t, pub.published[0].CorrelationID, pub.published[1].CorrelationID)
	})

	t.Run("rejects an unknown audio format", func(t *testing.T) {
		svc := NewService(&fakeStore{}, calls, &fakePublisher{})
		params := testParams(uuid.New().String())
		params.FileFormat = "aiff"

		_, err := svc.IngestCall(ctx, params)
		require.Error(t, err)
		assert.True(t, projector.IsValidationError(err))
	})

	t.Run("rejects a missing audio body", func(t *testing.T) {
		svc := NewService(&fakeStore{}, calls, &fakePublisher{})
		params := testParams(uuid.New().String())
		params.Audio = nil

		_, err := svc.IngestCall(ctx, params)
		require.Error(t, err)
		assert.True(t, projector.IsValidationError(err))
	})

	t.Run("storage failure stops ingestion before any row or event", func(t *testing.T) {
		pub := &fakePublisher{}
		svc := NewService(&fakeStore{err: errors.New("bucket unavailable")}, calls, pub)
		callID := uuid.New().String()

		_, err := svc.IngestCall(ctx, testParams(callID))
		require.Error(t, err)
		assert.Empty(t, pub.published)

		_, err = calls.GetCall(ctx, callID)
		assert.ErrorIs(t, err, projector.ErrNotFound)
	})

	t.Run("duplicate call id is rejected without publishing", func(t *testing.T) {
		pub := &fakePublisher{}
		svc := NewService(&fakeStore{}, calls, pub)
		callID := uuid.New().String()

		_, err := svc.IngestCall(ctx, testParams(callID))
		require.NoError(t, err)

		_, err = svc.IngestCall(ctx, testParams(callID))
		assert.ErrorIs(t, err, projector.ErrAlreadyExists)
		assert.Len(t, pub.published, 1)
	})

	t.Run("broker rejection surfaces to the caller", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("not enough replicas")}
		svc := NewService(&fakeStore{}, calls, pub)

		_, err := svc.IngestCall(ctx, testParams(uuid.New().String()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "event not accepted")
	})
}
