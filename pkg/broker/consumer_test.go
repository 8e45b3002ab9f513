package broker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPipelineConfig() *config.PipelineConfig {
	cfg := config.DefaultPipelineConfig()
	cfg.MaxAttempts = 3
	cfg.InitialBackoff = time.Millisecond
	cfg.MaxBackoff = 5 * time.Millisecond
	cfg.DrainTimeout = time.Second
	return cfg
}

func newTestConsumer(t *testing.T, handler Handler) *Consumer {
	t.Helper()
	// The reader never fetches in these tests; only the retry policy runs.
	return NewConsumer([]string{"localhost:9092"}, "calls.test", "test-group", "test", testPipelineConfig(), NewProducer([]string{"localhost:9092"}), handler)
}

func testEnvelope(t *testing.T) events.Envelope {
	t.Helper()
	env, err := events.New(events.EventTypeCallReceived, "call-1", events.CallReceivedPayload{CallID: "call-1"})
	require.NoError(t, err)
	return env
}

func TestInvokeWithRetry(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("ack passes through", func(t *testing.T) {
		calls := 0
		c := newTestConsumer(t, func(ctx context.Context, env events.Envelope) Result {
			calls++
			return Ack()
		})

		res := c.invokeWithRetry(ctx, testEnvelope(t), log)
		assert.True(t, res.IsAck())
		assert.Equal(t, 1, calls)
	})

	t.Run("permanent failure does not retry", func(t *testing.T) {
		calls := 0
		c := newTestConsumer(t, func(ctx context.Context, env events.Envelope) Result {
			calls++
			return Permanent(errors.New("bad payload"))
		})

		res := c.invokeWithRetry(ctx, testEnvelope(t), log)
		assert.False(t, res.IsAck())
		assert.Equal(t, 1, calls)
	})

	t.Run("transient failure retries until success", func(t *testing.T) {
		calls := 0
		c := newTestConsumer(t, func(ctx context.Context, env events.Envelope) Result {
			calls++
			if calls < 3 {
				return Retry(errors.New("db unavailable"))
			}
			return Ack()
		})

		res := c.invokeWithRetry(ctx, testEnvelope(t), log)
		assert.True(t, res.IsAck())
		assert.Equal(t, 3, calls)
	})

	t.Run("retries exhaust to permanent", func(t *testing.T) {
		calls := 0
		cause := errors.New("db unavailable")
		c := newTestConsumer(t, func(ctx context.Context, env events.Envelope) Result {
			calls++
			return Retry(cause)
		})

		res := c.invokeWithRetry(ctx, testEnvelope(t), log)
		assert.False(t, res.IsAck())
		assert.False(t, res.IsRetry())
		assert.ErrorIs(t, res.Err(), cause)
		assert.Equal(t, 3, calls)
	})

	t.Run("breaker-open failure rides the retry path", func(t *testing.T) {
		calls := 0
		c := newTestConsumer(t, func(ctx context.Context, env events.Envelope) Result {
			calls++
			if calls == 1 {
				return Retry(fmt.Errorf("ml service: %w", gobreaker.ErrOpenState))
			}
			return Ack()
		})

		res := c.invokeWithRetry(ctx, testEnvelope(t), log)
		assert.True(t, res.IsAck())
		assert.Equal(t, 2, calls)
	})

	t.Run("cancellation stops retrying", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(ctx)
		c := newTestConsumer(t, func(ctx context.Context, env events.Envelope) Result {
			cancel()
			return Retry(errors.New("transient"))
		})

		res := c.invokeWithRetry(cancelCtx, testEnvelope(t), log)
		assert.False(t, res.IsAck())
		assert.ErrorIs(t, res.Err(), context.Canceled)
	})
}

// failingDLQ rejects every produce until fail is cleared.
type failingDLQ struct {
	fail      bool
	published int
}

func (f *failingDLQ) Publish(_ context.Context, _ string, _ events.Envelope) error {
	if f.fail {
		return errors.New("not enough replicas")
	}
	f.published++
	return nil
}

func (f *failingDLQ) publishRaw(_ context.Context, _ string, _, _ []byte, _ []kafka.Header) error {
	if f.fail {
		return errors.New("not enough replicas")
	}
	f.published++
	return nil
}

func TestDeadLetter(t *testing.T) {
	ctx := context.Background()
	newConsumer := func(dlq *failingDLQ) *Consumer {
		return &Consumer{
			stage:    "test",
			producer: dlq,
			cfg:      testPipelineConfig(),
			dlqTopic: "calls.test.dlq",
			logger:   slog.Default(),
		}
	}

	t.Run("successful produce reports committable", func(t *testing.T) {
		dlq := &failingDLQ{}
		c := newConsumer(dlq)
		assert.True(t, c.deadLetter(ctx, testEnvelope(t), kafka.Message{}, errors.New("bad payload")))
		assert.Equal(t, 1, dlq.published)
	})

	t.Run("failed produce keeps the offset uncommitted", func(t *testing.T) {
		dlq := &failingDLQ{fail: true}
		c := newConsumer(dlq)
		assert.False(t, c.deadLetter(ctx, testEnvelope(t), kafka.Message{}, errors.New("bad payload")))
		assert.Equal(t, 0, dlq.published)
	})

	t.Run("raw path behaves the same", func(t *testing.T) {
		dlq := &failingDLQ{fail: true}
		c := newConsumer(dlq)
		msg := kafka.Message{Key: []byte("call-1"), Value: []byte("not json")}
		assert.False(t, c.deadLetterRaw(ctx, msg, errors.New("malformed")))

		dlq.fail = false
		assert.True(t, c.deadLetterRaw(ctx, msg, errors.New("malformed")))
		assert.Equal(t, 1, dlq.published)
	})
}

func TestIsBreakerOpen(t *testing.T) {
	assert.True(t, IsBreakerOpen(gobreaker.ErrOpenState))
	assert.True(t, IsBreakerOpen(fmt.Errorf("projection store: %w", gobreaker.ErrTooManyRequests)))
	assert.False(t, IsBreakerOpen(errors.New("db unavailable")))
	assert.False(t, IsBreakerOpen(nil))
}

func TestResultClassification(t *testing.T) {
	assert.True(t, Ack().IsAck())
	assert.False(t, Ack().IsRetry())
	assert.Nil(t, Ack().Err())

	err := errors.New("boom")
	assert.True(t, Retry(err).IsRetry())
	assert.Equal(t, err, Retry(err).Err())
	assert.False(t, Permanent(err).IsRetry())
	assert.False(t, Permanent(err).IsAck())
}
