package stages

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/callsight/callsight/ent/call"
	"github.com/callsight/callsight/pkg/broker"
	"github.com/callsight/callsight/pkg/events"
	"github.com/callsight/callsight/pkg/mlservice"
	"github.com/callsight/callsight/pkg/projector"
	"github.com/sony/gobreaker"
)

// Transcribe consumes CallReceived, runs speech-to-text, projects the
// transcript, and emits CallTranscribed.
type Transcribe struct {
	speech         mlservice.SpeechClient
	calls          *projector.CallService
	transcriptions *projector.TranscriptionService
	producer       Publisher
	topic          string

	ml     *gobreaker.CircuitBreaker
	store  *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// NewTranscribe creates the transcription stage. topic is the destination
// for CallTranscribed events.
func NewTranscribe(speech mlservice.SpeechClient, calls *projector.CallService, transcriptions *projector.TranscriptionService, producer Publisher, topic string) *Transcribe {
	return &Transcribe{
		speech:         speech,
		calls:          calls,
		transcriptions: transcriptions,
		producer:       producer,
		topic:          topic,
		ml:             broker.NewBreaker("speech-service"),
		store:          broker.NewBreaker("transcribe-store"),
		logger:         slog.Default().With("stage", "transcribe"),
	}
}

// Handle processes one CallReceived event. Replays re-run the RPC but hit
// the idempotent projection, then re-emit; downstream stages absorb the
// duplicate the same way.
func (s *Transcribe) Handle(ctx context.Context, env events.Envelope) broker.Result {
	var p events.CallReceivedPayload
	if err := env.DecodePayload(&p); err != nil {
		return broker.Permanent(err)
	}

	start := time.Now()
	var result *mlservice.Transcription
	err := broker.Guard(ctx, s.ml, func(ctx context.Context) error {
		var err error
		result, err = s.speech.Transcribe(ctx, p.CallID, p.FileHandle, p.FileFormat)
		return err
	})
	if err != nil {
		return broker.Retry(err)
	}
	elapsed := time.Since(start).Milliseconds()

	var created bool
	err = broker.Guard(ctx, s.store, func(ctx context.Context) error {
		var err error
		created, err = s.transcriptions.Project(ctx, env, result.Payload)
		return err
	})
	if err != nil {
		return broker.Retry(err)
	}
	if !created {
		s.logger.Info("Transcription already projected, re-emitting",
			"call_id", p.CallID, "event_id", env.EventID)
	}

	if err := s.calls.AdvanceStatus(ctx, p.CallID, call.StatusTranscribed); err != nil {
		return broker.Retry(err)
	}

	out, err := events.Derive(env, events.EventTypeCallTranscribed, result.Payload)
	if err != nil {
		return broker.Permanent(err)
	}
	out = out.WithMetadata(events.MetaService, "speech").
		WithMetadata(events.MetaModelVersion, result.ModelVersion).
		WithMetadata(events.MetaProcessingTimeMs, strconv.FormatInt(elapsed, 10))

	if err := s.producer.Publish(ctx, s.topic, out); err != nil {
		return broker.Retry(err)
	}
	return broker.Ack()
}
