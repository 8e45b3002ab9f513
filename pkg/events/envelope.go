// Package events defines the wire contract of the pipeline: the envelope
// every message travels in, the topic map, and the typed payloads. The
// envelope is the canonical source of identity and tracing fields; broker
// headers only mirror it for tooling.
package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is the envelope schema this build writes and the newest it
// accepts. Messages with a higher version are dead-lettered, not guessed at.
const SchemaVersion = 1

// AggregateTypeCall is the only aggregate type in the pipeline.
const AggregateTypeCall = "call"

// Well-known metadata keys.
const (
	MetaAgentID          = "agent_id"
	MetaService          = "service"
	MetaModelVersion     = "model_version"
	MetaProcessingTimeMs = "processing_time_ms"
	MetaFailureReason    = "failure_reason"
)

var (
	// ErrMalformedEnvelope marks messages that cannot be parsed into a
	// valid envelope. Permanent: route to the DLQ.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrUnsupportedVersion marks envelopes written by a newer schema.
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
)

// Envelope wraps every event on the broker. AggregateID is the call id and
// doubles as the partition key, so all events of one call stay ordered on
// one partition. CorrelationID is stamped once at ingestion and inherited
// by every derived event; CausationID is the eventId of the direct parent.
type Envelope struct {
	EventID       string            `json:"eventId"`
	EventType     string            `json:"eventType"`
	AggregateID   string            `json:"aggregateId"`
	AggregateType string            `json:"aggregateType"`
	Timestamp     time.Time         `json:"timestamp"`
	Version       int               `json:"version"`
	CausationID   string            `json:"causationId,omitempty"`
	CorrelationID string            `json:"correlationId"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Payload       json.RawMessage   `json:"payload"`
}

// New creates a root envelope with fresh event and correlation ids. Used
// only at ingestion; every downstream event derives from its input.
func New(eventType, callID string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return Envelope{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		AggregateID:   callID,
		AggregateType: AggregateTypeCall,
		Timestamp:     time.Now().UTC(),
		Version:       SchemaVersion,
		CorrelationID: uuid.New().String(),
		Payload:       data,
	}, nil
}

// deriveNamespace scopes the v5 event ids minted by Derive.
var deriveNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://callsight.io/events"))

// Derive creates a child envelope: same aggregate and correlation id, with
// the parent's eventId as causation. The event id is a v5 UUID over
// (parent eventId, event type): a stage re-emitting its result after a
// redelivery produces the same event id both times, so eventId-keyed
// duplicate suppression downstream recognizes the second emission.
// The agent id metadata rides along: it is call-scoped, not stage-scoped,
// and consumers far downstream key on it. Stage-scoped metadata (service,
// model version, timings) does not inherit.
func Derive(parent Envelope, eventType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	var meta map[string]string
	if agent := parent.Metadata[MetaAgentID]; agent != "" {
		meta = map[string]string{MetaAgentID: agent}
	}
	return Envelope{
		EventID:       uuid.NewSHA1(deriveNamespace, []byte(parent.EventID+"/"+eventType)).String(),
		EventType:     eventType,
		AggregateID:   parent.AggregateID,
		AggregateType: parent.AggregateType,
		Timestamp:     time.Now().UTC(),
		Version:       SchemaVersion,
		CausationID:   parent.EventID,
		CorrelationID: parent.CorrelationID,
		Metadata:      meta,
		Payload:       data,
	}, nil
}

// WithMetadata returns a copy of the envelope with one metadata entry set.
func (e Envelope) WithMetadata(key, value string) Envelope {
	meta := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		meta[k] = v
	}
	meta[key] = value
	e.Metadata = meta
	return e
}

// PartitionKey returns the broker message key: the call id.
func (e Envelope) PartitionKey() []byte {
	return []byte(e.AggregateID)
}

// Marshal serializes the envelope for the wire.
func (e Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Decode parses and validates an envelope. Unknown JSON fields are
// tolerated so older consumers survive additive schema changes; missing
// identity fields and newer schema versions are not.
func Decode(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if env.EventID == "" || env.EventType == "" || env.AggregateID == "" {
		return Envelope{}, fmt.Errorf("%w: missing identity fields", ErrMalformedEnvelope)
	}
	if env.Version > SchemaVersion {
		return Envelope{}, fmt.Errorf("%w: version %d, this build understands <= %d",
			ErrUnsupportedVersion, env.Version, SchemaVersion)
	}
	return env, nil
}

// DecodePayload unmarshals the payload into target.
func (e Envelope) DecodePayload(target any) error {
	if err := json.Unmarshal(e.Payload, target); err != nil {
		return fmt.Errorf("%w: %s payload: %v", ErrMalformedEnvelope, e.EventType, err)
	}
	return nil
}
