package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Transcription holds the schema definition for the Transcription entity:
// the once-per-call projection of a CallTranscribed event.
type Transcription struct {
	ent.Schema
}

// Fields of the Transcription.
func (Transcription) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transcription_id").
			Unique().
			Immutable(),
		field.String("call_id").
			Unique().
			Comment("Once-per-call idempotency key"),
		field.Text("full_text"),
		field.String("language"),
		field.Float("confidence"),
		field.Int("word_count"),
		field.String("event_id").
			Comment("Envelope eventId that produced this row"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Transcription.
func (Transcription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("segments", TranscriptSegment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Transcription.
func (Transcription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("call_id"),
	}
}
