package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/callsight/callsight/pkg/events"
	"github.com/segmentio/kafka-go"
)

// Producer publishes envelopes to pipeline topics, keyed by callId so all
// events for one call land on the same partition (invariant E2).
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a producer for the given broker addresses.
// RequiredAcks is all replicas: an event is not "produced" until the broker
// has durably accepted it.
func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		},
	}
}

// Publish serializes the envelope and writes it to topic. The correlation
// id rides in a header for broker-side tooling; the envelope remains the
// canonical source.
func (p *Producer) Publish(ctx context.Context, topic string, env events.Envelope) error {
	value, err := env.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal envelope %s: %w", env.EventID, err)
	}
	msg := kafka.Message{
		Topic: topic,
		Key:   env.PartitionKey(),
		Value: value,
		Headers: []kafka.Header{
			{Key: "correlationId", Value: []byte(env.CorrelationID)},
			{Key: "eventType", Value: []byte(env.EventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to produce %s to %s: %w", env.EventType, topic, err)
	}
	return nil
}

// publishRaw writes pre-serialized bytes, used for dead-lettering messages
// that could not be decoded.
func (p *Producer) publishRaw(ctx context.Context, topic string, key, value []byte, headers []kafka.Header) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic:   topic,
		Key:     key,
		Value:   value,
		Headers: headers,
	})
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
