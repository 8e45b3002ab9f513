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

// Sentiment consumes CallTranscribed, classifies sentiment, projects the
// analysis, and emits SentimentAnalyzed.
type Sentiment struct {
	analysis   mlservice.AnalysisClient
	calls      *projector.CallService
	sentiments *projector.SentimentService
	producer   Publisher
	topic      string

	ml     *gobreaker.CircuitBreaker
	store  *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// NewSentiment creates the sentiment stage.
func NewSentiment(analysis mlservice.AnalysisClient, calls *projector.CallService, sentiments *projector.SentimentService, producer Publisher, topic string) *Sentiment {
	return &Sentiment{
		analysis:   analysis,
		calls:      calls,
		sentiments: sentiments,
		producer:   producer,
		topic:      topic,
		ml:         broker.NewBreaker("sentiment-service"),
		store:      broker.NewBreaker("sentiment-store"),
		logger:     slog.Default().With("stage", "sentiment"),
	}
}

// Handle processes one CallTranscribed event.
func (s *Sentiment) Handle(ctx context.Context, env events.Envelope) broker.Result {
	var p events.CallTranscribedPayload
	if err := env.DecodePayload(&p); err != nil {
		return broker.Permanent(err)
	}

	start := time.Now()
	var result *mlservice.Sentiment
	err := broker.Guard(ctx, s.ml, func(ctx context.Context) error {
		var err error
		result, err = s.analysis.AnalyzeSentiment(ctx, p.CallID, p)
		return err
	})
	if err != nil {
		return broker.Retry(err)
	}
	elapsed := time.Since(start).Milliseconds()
	result.Payload.ProcessingTimeMs = elapsed

	var created bool
	err = broker.Guard(ctx, s.store, func(ctx context.Context) error {
		var err error
		created, err = s.sentiments.Project(ctx, env, result.Payload)
		return err
	})
	if err != nil {
		return broker.Retry(err)
	}
	if !created {
		s.logger.Info("Sentiment already projected, re-emitting",
			"call_id", p.CallID, "event_id", env.EventID)
	}

	if err := s.calls.AdvanceStatus(ctx, p.CallID, call.StatusAnalyzed); err != nil {
		return broker.Retry(err)
	}

	out, err := events.Derive(env, events.EventTypeSentimentAnalyzed, result.Payload)
	if err != nil {
		return broker.Permanent(err)
	}
	out = out.WithMetadata(events.MetaService, "sentiment").
		WithMetadata(events.MetaModelVersion, result.ModelVersion).
		WithMetadata(events.MetaProcessingTimeMs, strconv.FormatInt(elapsed, 10))

	if err := s.producer.Publish(ctx, s.topic, out); err != nil {
		return broker.Retry(err)
	}
	return broker.Ack()
}
