package stages

import (
	"context"
	"log/slog"

	"github.com/callsight/callsight/pkg/broker"
	"github.com/callsight/callsight/pkg/events"
	"github.com/callsight/callsight/pkg/notify"
	"github.com/sony/gobreaker"
)

// Notify consumes the analysis and audit streams, classifies alerts, and
// hands them to the dispatcher. Only row creation is retried; delivery
// failures live on the notification rows and are resolved by resend.
type Notify struct {
	engine     *notify.Engine
	dispatcher *notify.Dispatcher

	store  *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// NewNotify creates the notification stage.
func NewNotify(engine *notify.Engine, dispatcher *notify.Dispatcher) *Notify {
	return &Notify{
		engine:     engine,
		dispatcher: dispatcher,
		store:      broker.NewBreaker("notify-store"),
		logger:     slog.Default().With("stage", "notify"),
	}
}

// Handle classifies one event and dispatches any resulting alerts.
// Dispatch of an event that was already processed enqueues duplicate rows;
// delivery dedup is not attempted here, recipients tolerate repeats under
// at-least-once delivery.
func (s *Notify) Handle(ctx context.Context, env events.Envelope) broker.Result {
	var alerts []notify.Alert

	switch env.EventType {
	case events.EventTypeSentimentAnalyzed:
		var p events.SentimentAnalyzedPayload
		if err := env.DecodePayload(&p); err != nil {
			return broker.Permanent(err)
		}
		alerts = s.engine.EvaluateSentiment(p)
	case events.EventTypeVocAnalyzed:
		var p events.VocAnalyzedPayload
		if err := env.DecodePayload(&p); err != nil {
			return broker.Permanent(err)
		}
		alerts = s.engine.EvaluateVoc(p)
	case events.EventTypeCallAudited:
		var p events.CallAuditedPayload
		if err := env.DecodePayload(&p); err != nil {
			return broker.Permanent(err)
		}
		alerts = s.engine.EvaluateAudit(p)
	default:
		s.logger.Warn("Ignoring unexpected event type", "event_type", env.EventType)
		return broker.Ack()
	}

	if len(alerts) == 0 {
		return broker.Ack()
	}

	err := broker.Guard(ctx, s.store, func(ctx context.Context) error {
		return s.dispatcher.Dispatch(ctx, alerts)
	})
	if err != nil {
		return broker.Retry(err)
	}
	return broker.Ack()
}
