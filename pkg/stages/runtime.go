package stages

import (
	"context"
	"log/slog"

	"github.com/callsight/callsight/pkg/analytics"
	"github.com/callsight/callsight/pkg/broker"
	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/correlator"
)

// Runtime owns all stage consumers of one process plus the background
// components they depend on (correlator sweep, aggregator flush loop).
type Runtime struct {
	consumers  []*broker.Consumer
	correlator *correlator.Correlator
	aggregator *analytics.Aggregator
	logger     *slog.Logger
}

// Handlers bundles the constructed stage handlers for the runtime.
type Handlers struct {
	Transcribe *Transcribe
	Sentiment  *Sentiment
	Voc        *Voc
	Audit      *Audit
	Analytics  *Analytics
	Notify     *Notify
}

// NewRuntime builds the consumer set: one subscription per (stage, topic)
// pair, with group ids and topic names from the pipeline configuration.
// The audit, analytics, and notify stages each fan in from several topics
// and get one consumer per topic under a shared group id.
func NewRuntime(brokers []string, cfg *config.Config, producer *broker.Producer, corr *correlator.Correlator, agg *analytics.Aggregator, h Handlers) *Runtime {
	pipeline := cfg.Pipeline
	topics := pipeline.Topics
	groups := pipeline.Groups

	sub := func(topic, group, stage string, handler broker.Handler) *broker.Consumer {
		return broker.NewConsumer(brokers, topic, group, stage, pipeline, producer, handler)
	}

	consumers := []*broker.Consumer{
		sub(topics.Received, groups.Transcribe, "transcribe", h.Transcribe.Handle),
		sub(topics.Transcribed, groups.Sentiment, "sentiment", h.Sentiment.Handle),
		sub(topics.Transcribed, groups.Voc, "voc", h.Voc.Handle),

		sub(topics.Transcribed, groups.Audit, "audit", h.Audit.Handle),
		sub(topics.SentimentAnalyzed, groups.Audit, "audit", h.Audit.Handle),
		sub(topics.VocAnalyzed, groups.Audit, "audit", h.Audit.Handle),

		sub(topics.SentimentAnalyzed, groups.Analytics, "analytics", h.Analytics.Handle),
		sub(topics.VocAnalyzed, groups.Analytics, "analytics", h.Analytics.Handle),
		sub(topics.Audited, groups.Analytics, "analytics", h.Analytics.Handle),

		sub(topics.SentimentAnalyzed, groups.Notify, "notify", h.Notify.Handle),
		sub(topics.VocAnalyzed, groups.Notify, "notify", h.Notify.Handle),
		sub(topics.Audited, groups.Notify, "notify", h.Notify.Handle),
	}

	return &Runtime{
		consumers:  consumers,
		correlator: corr,
		aggregator: agg,
		logger:     slog.Default().With("component", "runtime"),
	}
}

// Start launches the background loops and then the consumers.
func (r *Runtime) Start(ctx context.Context) {
	r.correlator.Start(ctx)
	r.aggregator.Start(ctx)
	for _, c := range r.consumers {
		c.Start(ctx)
	}
	r.logger.Info("All stages started", "consumers", len(r.consumers))
}

// Stop shuts down in dependency order: consumers drain first so nothing
// feeds the correlator or aggregator while they wind down; the aggregator
// then takes its final flush.
func (r *Runtime) Stop() {
	for _, c := range r.consumers {
		c.Stop()
	}
	r.correlator.Stop()
	r.aggregator.Stop()
	r.logger.Info("All stages stopped")
}
