// Package ingest is the pipeline entry point: it stores the audio blob,
// registers the call, and emits CallReceived with a fresh correlation id.
// The caller is acknowledged only after the broker has accepted the event.
package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/pkg/events"
	"github.com/callsight/callsight/pkg/projector"
	"github.com/google/uuid"
)

// Publisher is the broker-facing half the service needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, env events.Envelope) error
}

var contentTypes = map[string]string{
	"wav":  "audio/wav",
	"mp3":  "audio/mpeg",
	"flac": "audio/flac",
	"ogg":  "audio/ogg",
}

// IngestParams describes one incoming call recording. CallID is optional;
// one is generated when empty.
type IngestParams struct {
	CallID        string
	CallerID      string
	AgentID       string
	Channel       string
	FileFormat    string
	FileSizeBytes int64
	Duration      *float64
	StartTime     time.Time
	Audio         io.Reader
}

// Result reports what ingestion produced.
type Result struct {
	Call    *ent.Call
	EventID string
}

// Service ingests call recordings.
type Service struct {
	store    AudioStore
	calls    *projector.CallService
	producer Publisher
	logger   *slog.Logger
}

// NewService creates an ingestion service.
func NewService(store AudioStore, calls *projector.CallService, producer Publisher) *Service {
	return &Service{
		store:    store,
		calls:    calls,
		producer: producer,
		logger:   slog.Default().With("component", "ingest"),
	}
}

// IngestCall stores the audio, registers the call row, and publishes
// CallReceived. The steps run in that order so a published event always
// refers to durable audio and a durable row. A duplicate call id surfaces
// as ErrAlreadyExists before anything is written.
func (s *Service) IngestCall(ctx context.Context, p IngestParams) (*Result, error) {
	if p.Audio == nil {
		return nil, projector.NewValidationError("audio", "audio body is required")
	}
	contentType, ok := contentTypes[p.FileFormat]
	if !ok {
		return nil, projector.NewValidationError("fileFormat", "must be one of wav, mp3, flac, ogg")
	}
	if p.CallID == "" {
		p.CallID = uuid.New().String()
	}

	key := fmt.Sprintf("calls/%s.%s", p.CallID, p.FileFormat)
	if err := s.store.Put(ctx, key, contentType, p.FileSizeBytes, p.Audio); err != nil {
		return nil, err
	}

	correlationID := uuid.New().String()
	call, err := s.calls.RegisterCall(ctx, projector.RegisterCallParams{
		CallID:        p.CallID,
		CallerID:      p.CallerID,
		AgentID:       p.AgentID,
		Channel:       p.Channel,
		AudioKey:      key,
		FileFormat:    p.FileFormat,
		FileSizeBytes: p.FileSizeBytes,
		Duration:      p.Duration,
		StartTime:     p.StartTime,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}

	env, err := events.New(events.EventTypeCallReceived, p.CallID, events.CallReceivedPayload{
		CallID:        p.CallID,
		CallerID:      p.CallerID,
		AgentID:       p.AgentID,
		Channel:       p.Channel,
		FileHandle:    key,
		FileFormat:    p.FileFormat,
		FileSizeBytes: p.FileSizeBytes,
		Duration:      p.Duration,
		StartTime:     p.StartTime.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	env.CorrelationID = correlationID
	env = env.WithMetadata(events.MetaAgentID, p.AgentID)

	if err := s.producer.Publish(ctx, events.TopicCallsReceived, env); err != nil {
		return nil, fmt.Errorf("call %s registered but event not accepted: %w", p.CallID, err)
	}

	s.logger.Info("Call ingested",
		"call_id", p.CallID, "agent_id", p.AgentID,
		"audio_key", key, "event_id", env.EventID)
	return &Result{Call: call, EventID: env.EventID}, nil
}
