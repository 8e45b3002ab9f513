package stages

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/callsight/callsight/ent/call"
	"github.com/callsight/callsight/pkg/audit"
	"github.com/callsight/callsight/pkg/broker"
	"github.com/callsight/callsight/pkg/correlator"
	"github.com/callsight/callsight/pkg/events"
	"github.com/callsight/callsight/pkg/projector"
	"github.com/sony/gobreaker"
)

// Audit consumes the three analysis streams, correlates them per call, and
// scores completed triples against the active compliance rules. A fragment
// that does not complete its triple is acknowledged immediately; the
// correlator holds it until the siblings arrive or the TTL evicts it.
type Audit struct {
	correlator *correlator.Correlator
	rules      *audit.RuleService
	scorer     *audit.Scorer
	results    *audit.ResultService
	calls      *projector.CallService
	producer   Publisher
	topic      string

	store  *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// NewAudit creates the audit stage.
func NewAudit(corr *correlator.Correlator, rules *audit.RuleService, scorer *audit.Scorer, results *audit.ResultService, calls *projector.CallService, producer Publisher, topic string) *Audit {
	return &Audit{
		correlator: corr,
		rules:      rules,
		scorer:     scorer,
		results:    results,
		calls:      calls,
		producer:   producer,
		topic:      topic,
		store:      broker.NewBreaker("audit-store"),
		logger:     slog.Default().With("stage", "audit"),
	}
}

// Handle routes one analysis fragment into the correlator and, when the
// triple completes, runs the audit. On a transient failure after
// completion the triple is restored to the correlator before reporting
// Retry, so the redelivered fragment completes it again instead of
// stranding a fresh partial.
func (s *Audit) Handle(ctx context.Context, env events.Envelope) broker.Result {
	callID := env.AggregateID

	// A fragment arriving with no pending partial for an already audited
	// call is a redelivery; buffering it would strand a partial that the
	// sweep later miscounts as a pipeline gap. A restored triple still has
	// its entry, so the emission-retry path is unaffected.
	if !s.correlator.Pending(callID) {
		var audited bool
		err := broker.Guard(ctx, s.store, func(ctx context.Context) error {
			var err error
			audited, err = s.results.Exists(ctx, callID)
			return err
		})
		if err != nil {
			return broker.Retry(err)
		}
		if audited {
			s.logger.Debug("Fragment for an already audited call, ignoring",
				"call_id", callID, "event_id", env.EventID)
			return broker.Ack()
		}
	}

	var (
		triple *correlator.Complete
		done   bool
	)

	switch env.EventType {
	case events.EventTypeCallTranscribed:
		var p events.CallTranscribedPayload
		if err := env.DecodePayload(&p); err != nil {
			return broker.Permanent(err)
		}
		triple, done = s.correlator.OfferTranscription(env, p)
	case events.EventTypeSentimentAnalyzed:
		var p events.SentimentAnalyzedPayload
		if err := env.DecodePayload(&p); err != nil {
			return broker.Permanent(err)
		}
		triple, done = s.correlator.OfferSentiment(env, p)
	case events.EventTypeVocAnalyzed:
		var p events.VocAnalyzedPayload
		if err := env.DecodePayload(&p); err != nil {
			return broker.Permanent(err)
		}
		triple, done = s.correlator.OfferVoc(env, p)
	default:
		s.logger.Warn("Ignoring unexpected event type", "event_type", env.EventType)
		return broker.Ack()
	}

	if !done {
		return broker.Ack()
	}

	result := s.auditCall(ctx, triple)
	if result.IsRetry() {
		s.correlator.Restore(triple)
	}
	return result
}

// auditCall scores one completed triple, persists the result, and emits
// CallAudited. Scoring is pure, so a replay recomputes the identical
// outcome, skips the existing row, and retries only the emission.
func (s *Audit) auditCall(ctx context.Context, triple *correlator.Complete) broker.Result {
	start := time.Now()

	var rules []audit.Rule
	err := broker.Guard(ctx, s.store, func(ctx context.Context) error {
		var err error
		rules, err = s.rules.ActiveRules(ctx)
		return err
	})
	if err != nil {
		return broker.Retry(err)
	}

	outcome := s.scorer.Score(rules, audit.Input{
		Transcription: triple.Transcription,
		Sentiment:     triple.Sentiment,
		Voc:           triple.Voc,
	})
	elapsed := time.Since(start).Milliseconds()

	var created bool
	err = broker.Guard(ctx, s.store, func(ctx context.Context) error {
		var err error
		created, err = s.results.Persist(ctx, triple.CallID, triple.Completing.EventID, outcome, elapsed)
		return err
	})
	if err != nil {
		return broker.Retry(err)
	}
	if !created {
		s.logger.Info("Audit result already persisted, re-emitting",
			"call_id", triple.CallID, "event_id", triple.Completing.EventID)
	}

	if err := s.calls.AdvanceStatus(ctx, triple.CallID, call.StatusAudited); err != nil {
		return broker.Retry(err)
	}

	payload := events.CallAuditedPayload{
		CallID:                  triple.CallID,
		OverallScore:            outcome.OverallScore,
		ComplianceStatus:        outcome.ComplianceStatus,
		ScriptAdherence:         outcome.ScriptAdherence,
		CustomerService:         outcome.CustomerService,
		ResolutionEffectiveness: outcome.ResolutionEffectiveness,
		FlagsForReview:          outcome.FlagsForReview,
		ReviewReason:            outcome.ReviewReason,
		Violations:              outcome.Violations,
		ProcessingTimeMs:        elapsed,
	}
	out, err := events.Derive(triple.Completing, events.EventTypeCallAudited, payload)
	if err != nil {
		return broker.Permanent(err)
	}
	out = out.WithMetadata(events.MetaService, "audit").
		WithMetadata(events.MetaProcessingTimeMs, strconv.FormatInt(elapsed, 10))

	if err := s.producer.Publish(ctx, s.topic, out); err != nil {
		return broker.Retry(err)
	}

	s.logger.Info("Call audited",
		"call_id", triple.CallID, "overall_score", outcome.OverallScore,
		"status", outcome.ComplianceStatus, "violations", len(outcome.Violations))
	return broker.Ack()
}
