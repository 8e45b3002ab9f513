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

// Voc consumes CallTranscribed, extracts Voice-of-Customer insights,
// projects them, and emits VocAnalyzed. It runs in its own consumer group
// so it fans out from the same topic the sentiment stage reads.
type Voc struct {
	analysis mlservice.AnalysisClient
	calls    *projector.CallService
	insights *projector.VocService
	producer Publisher
	topic    string

	ml     *gobreaker.CircuitBreaker
	store  *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// NewVoc creates the VoC stage.
func NewVoc(analysis mlservice.AnalysisClient, calls *projector.CallService, insights *projector.VocService, producer Publisher, topic string) *Voc {
	return &Voc{
		analysis: analysis,
		calls:    calls,
		insights: insights,
		producer: producer,
		topic:    topic,
		ml:       broker.NewBreaker("voc-service"),
		store:    broker.NewBreaker("voc-store"),
		logger:   slog.Default().With("stage", "voc"),
	}
}

// Handle processes one CallTranscribed event.
func (s *Voc) Handle(ctx context.Context, env events.Envelope) broker.Result {
	var p events.CallTranscribedPayload
	if err := env.DecodePayload(&p); err != nil {
		return broker.Permanent(err)
	}

	start := time.Now()
	var result *mlservice.Insights
	err := broker.Guard(ctx, s.ml, func(ctx context.Context) error {
		var err error
		result, err = s.analysis.ExtractInsights(ctx, p.CallID, p)
		return err
	})
	if err != nil {
		return broker.Retry(err)
	}
	elapsed := time.Since(start).Milliseconds()

	var created bool
	err = broker.Guard(ctx, s.store, func(ctx context.Context) error {
		var err error
		created, err = s.insights.Project(ctx, env, result.Payload)
		return err
	})
	if err != nil {
		return broker.Retry(err)
	}
	if !created {
		s.logger.Info("VoC insight already projected, re-emitting",
			"call_id", p.CallID, "event_id", env.EventID)
	}

	if err := s.calls.AdvanceStatus(ctx, p.CallID, call.StatusAnalyzed); err != nil {
		return broker.Retry(err)
	}

	out, err := events.Derive(env, events.EventTypeVocAnalyzed, result.Payload)
	if err != nil {
		return broker.Permanent(err)
	}
	out = out.WithMetadata(events.MetaService, "voc").
		WithMetadata(events.MetaModelVersion, result.ModelVersion).
		WithMetadata(events.MetaProcessingTimeMs, strconv.FormatInt(elapsed, 10))

	if err := s.producer.Publish(ctx, s.topic, out); err != nil {
		return broker.Retry(err)
	}
	return broker.Ack()
}
