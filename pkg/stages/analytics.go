package stages

import (
	"context"

	"github.com/callsight/callsight/pkg/analytics"
	"github.com/callsight/callsight/pkg/broker"
	"github.com/callsight/callsight/pkg/events"
	"github.com/sony/gobreaker"
)

// Analytics consumes the analysis and audit streams and feeds the metrics
// aggregator. Events the aggregator cannot use (no agent id, unknown type,
// duplicate) are acknowledged without effect.
type Analytics struct {
	aggregator *analytics.Aggregator
	cache      *gobreaker.CircuitBreaker
}

// NewAnalytics creates the analytics stage.
func NewAnalytics(aggregator *analytics.Aggregator) *Analytics {
	return &Analytics{
		aggregator: aggregator,
		cache:      broker.NewBreaker("analytics-cache"),
	}
}

// Handle buffers one observation. Cache failures are transient: the event
// is redelivered and the dedup set absorbs any half-applied attempt.
func (s *Analytics) Handle(ctx context.Context, env events.Envelope) broker.Result {
	err := broker.Guard(ctx, s.cache, func(ctx context.Context) error {
		return s.aggregator.Observe(ctx, env)
	})
	if err != nil {
		return broker.Retry(err)
	}
	return broker.Ack()
}
