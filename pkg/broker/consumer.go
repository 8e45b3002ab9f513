package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

// Consumer runs one stage's subscription to one topic within a consumer
// group. The broker assigns partitions to group members; within this
// consumer, messages are fetched and handled one at a time, which preserves
// per-partition order. Parallelism comes from partitions and replicas, not
// from concurrency inside a consumer.
// dlqPublisher is the slice of Producer the consumer needs for
// dead-lettering.
type dlqPublisher interface {
	Publish(ctx context.Context, topic string, env events.Envelope) error
	publishRaw(ctx context.Context, topic string, key, value []byte, headers []kafka.Header) error
}

type Consumer struct {
	stage    string
	reader   *kafka.Reader
	producer dlqPublisher
	handler  Handler
	cfg      *config.PipelineConfig
	dlqTopic string
	logger   *slog.Logger

	cancel   context.CancelFunc
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewConsumer creates a consumer for one stage. stage names the consumer
// for logs and metrics; the DLQ topic is topic + cfg.DLQSuffix.
func NewConsumer(brokers []string, topic, group, stage string, cfg *config.PipelineConfig, producer *Producer, handler Handler) *Consumer {
	return &Consumer{
		stage: stage,
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     brokers,
			Topic:       topic,
			GroupID:     group,
			MinBytes:    1,
			MaxBytes:    10 << 20,
			StartOffset: kafka.FirstOffset,
		}),
		producer: producer,
		handler:  handler,
		cfg:      cfg,
		dlqTopic: topic + cfg.DLQSuffix,
		logger:   slog.Default().With("stage", stage, "topic", topic),
	}
}

// Start launches the fetch loop. The loop stops when Stop is called or the
// parent context is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(runCtx)
	}()
	c.logger.Info("Consumer started")
}

// Stop cancels the fetch loop, waits for the in-flight handler bounded by
// DrainTimeout, and closes the reader. An unacknowledged in-flight message
// is redelivered on restart; handler idempotency absorbs it.
func (c *Consumer) Stop() {
	c.stopOnce.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}

		done := make(chan struct{})
		go func() {
			c.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(c.cfg.DrainTimeout):
			c.logger.Warn("Drain timeout exceeded, in-flight message will be redelivered")
		}

		if err := c.reader.Close(); err != nil {
			c.logger.Error("Failed to close reader", "error", err)
		}
		c.logger.Info("Consumer stopped")
	})
}

func (c *Consumer) run(ctx context.Context) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			c.logger.Error("Fetch failed, backing off", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		c.handleMessage(ctx, msg)
	}
}

// handleMessage runs the handler protocol for one message:
//
//  1. Decode the envelope; parse and schema-version errors are permanent
//     and go straight to the DLQ.
//  2. Invoke the handler with bounded exponential backoff on transient
//     failures; exhaustion dead-letters with the failure reason.
//  3. Commit the offset only after the terminal outcome is durable.
func (c *Consumer) handleMessage(ctx context.Context, msg kafka.Message) {
	env, err := events.Decode(msg.Value)
	if err != nil {
		c.logger.Warn("Undecodable message routed to DLQ",
			"offset", msg.Offset, "partition", msg.Partition, "error", err)
		if c.deadLetterRaw(ctx, msg, err) {
			c.commit(ctx, msg)
		}
		return
	}

	log := c.logger.With("event_id", env.EventID, "event_type", env.EventType,
		"call_id", env.AggregateID, "correlation_id", env.CorrelationID)

	result := c.invokeWithRetry(ctx, env, log)
	switch {
	case result.IsAck():
		messagesProcessed.WithLabelValues(c.stage, OutcomeAck).Inc()
	default:
		log.Error("Message routed to DLQ", "error", result.Err())
		if !c.deadLetter(ctx, env, msg, result.Err()) {
			// The offset stays uncommitted: the broker redelivers and the
			// dead-lettering is retried instead of the message being lost.
			return
		}
	}

	c.commit(ctx, msg)
}

// invokeWithRetry runs the handler until it acks, fails permanently, or
// exhausts the attempt bound. The returned result is terminal: retry
// results surviving the bound are converted to permanent.
func (c *Consumer) invokeWithRetry(ctx context.Context, env events.Envelope, log *slog.Logger) Result {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.InitialBackoff
	bo.MaxInterval = c.cfg.MaxBackoff
	bo.Reset()

	var last Result
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		last = c.handler(ctx, env)
		if !last.IsRetry() {
			return last
		}

		handlerRetries.WithLabelValues(c.stage).Inc()
		wait := bo.NextBackOff()
		reason := "Transient handler failure, retrying"
		if IsBreakerOpen(last.Err()) {
			reason = "Downstream circuit open, retrying"
		}
		log.Warn(reason,
			"attempt", attempt, "max_attempts", c.cfg.MaxAttempts,
			"backoff", wait, "error", last.Err())

		select {
		case <-ctx.Done():
			// Shutdown mid-retry: leave the offset uncommitted so the
			// message is redelivered. Report permanent so the caller does
			// not dead-letter; commit below is a no-op on cancelled ctx.
			return Permanent(ctx.Err())
		case <-time.After(wait):
		}
	}
	return Permanent(fmt.Errorf("retries exhausted after %d attempts: %w", c.cfg.MaxAttempts, last.Err()))
}

// deadLetter publishes a decoded-but-unprocessable envelope to the DLQ,
// annotated with the failure reason. Reports whether the DLQ produce
// succeeded; on failure the caller must leave the offset uncommitted so
// the broker redelivers.
func (c *Consumer) deadLetter(ctx context.Context, env events.Envelope, msg kafka.Message, cause error) bool {
	annotated := env.WithMetadata(events.MetaFailureReason, errString(cause))
	if err := c.producer.Publish(ctx, c.dlqTopic, annotated); err != nil {
		c.logger.Error("DLQ produce failed, leaving offset uncommitted",
			"event_id", env.EventID, "offset", msg.Offset, "error", err)
		return false
	}
	messagesProcessed.WithLabelValues(c.stage, OutcomeDeadLetter).Inc()
	return true
}

// deadLetterRaw publishes undecodable bytes to the DLQ as-is.
func (c *Consumer) deadLetterRaw(ctx context.Context, msg kafka.Message, cause error) bool {
	headers := []kafka.Header{{Key: "failureReason", Value: []byte(errString(cause))}}
	if err := c.producer.publishRaw(ctx, c.dlqTopic, msg.Key, msg.Value, headers); err != nil {
		c.logger.Error("DLQ produce failed for undecodable message, leaving offset uncommitted",
			"offset", msg.Offset, "error", err)
		return false
	}
	messagesProcessed.WithLabelValues(c.stage, OutcomeDeadLetter).Inc()
	return true
}

func (c *Consumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Offset commit failed, message may be redelivered",
			"offset", msg.Offset, "partition", msg.Partition, "error", err)
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
