// Package broker provides the Kafka-backed stage runtime: an envelope
// producer and a consumer loop with manual acknowledgement, bounded retry,
// and dead-letter routing.
//
// Delivery is at-least-once: a message is committed only after its handler
// reports a terminal outcome. Exactly-once effect is the handler's job, via
// idempotent projections. Within one consumer, messages are processed one
// at a time, so per-partition (and therefore per-call) order is preserved.
package broker

import (
	"context"

	"github.com/callsight/callsight/pkg/events"
)

// Handler processes one decoded envelope and reports the outcome. Handlers
// never panic past the runtime and never block beyond their context.
type Handler func(ctx context.Context, env events.Envelope) Result

type resultKind int

const (
	kindAck resultKind = iota
	kindRetry
	kindPermanent
)

// Result is a handler outcome. The runtime maps it to one of
// {commit, backoff-and-redeliver, dead-letter-and-commit}.
type Result struct {
	kind resultKind
	err  error
}

// Ack reports success (or an idempotency hit): commit the offset.
func Ack() Result {
	return Result{kind: kindAck}
}

// Retry reports a transient failure (store unavailable, RPC deadline,
// downstream produce timeout): redeliver after backoff, bounded by
// PipelineConfig.MaxAttempts.
func Retry(err error) Result {
	return Result{kind: kindRetry, err: err}
}

// Permanent reports an unrecoverable failure (malformed payload,
// unsupported schema): route to the DLQ and commit.
func Permanent(err error) Result {
	return Result{kind: kindPermanent, err: err}
}

// IsAck reports whether the result is a success.
func (r Result) IsAck() bool { return r.kind == kindAck }

// IsRetry reports whether the result requests redelivery.
func (r Result) IsRetry() bool { return r.kind == kindRetry }

// Err returns the failure carried by a retry or permanent result.
func (r Result) Err() error { return r.err }
