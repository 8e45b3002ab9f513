// Package stages holds the per-stage message handlers and the runtime that
// runs them. A handler glues one subscription to the ML boundary, the
// projections, and the downstream emitter; the consumer runtime supplies
// retry, dead-lettering, and offset discipline around it.
package stages

import (
	"context"

	"github.com/callsight/callsight/pkg/events"
)

// Publisher is the emitting half of the broker the stages need.
type Publisher interface {
	Publish(ctx context.Context, topic string, env events.Envelope) error
}
