package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Call holds the schema definition for the Call entity: one row per
// ingested call recording. Stage read models reference it by call id only;
// there are no cross-stage foreign keys.
type Call struct {
	ent.Schema
}

// Fields of the Call.
func (Call) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("call_id").
			Unique().
			Immutable(),
		field.String("caller_id"),
		field.String("agent_id"),
		field.String("channel").
			Comment("Inbound line identifier (e.g. 'support', 'sales')"),
		field.String("audio_key").
			Comment("Object-storage key of the audio blob"),
		field.String("file_format"),
		field.Int64("file_size_bytes"),
		field.Float("duration").
			Optional().
			Nillable().
			Comment("Call duration in seconds, when known at ingest"),
		field.Time("start_time"),
		field.Enum("status").
			Values("received", "transcribed", "analyzed", "audited").
			Default("received").
			Comment("Best-effort pipeline progress marker"),
		field.String("correlation_id").
			Comment("Stamped at ingestion, shared by all events for this call"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Call.
func (Call) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("status"),
		index.Fields("agent_id", "start_time"),
	}
}
