package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TranscriptSegment is one speaker-separated stretch of a transcription.
// Times are seconds from call start with millisecond resolution.
type TranscriptSegment struct {
	ent.Schema
}

// Fields of the TranscriptSegment.
func (TranscriptSegment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("segment_id").
			Unique().
			Immutable(),
		field.String("transcription_id"),
		field.Int("position").
			Comment("Zero-based order within the transcription"),
		field.Enum("speaker").
			Values("agent", "customer", "unknown"),
		field.Float("start_time"),
		field.Float("end_time"),
		field.Text("text"),
		field.Float("confidence").
			Optional().
			Nillable(),
	}
}

// Edges of the TranscriptSegment.
func (TranscriptSegment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("transcription", Transcription.Type).
			Ref("segments").
			Field("transcription_id").
			Unique().
			Required(),
	}
}

// Indexes of the TranscriptSegment.
func (TranscriptSegment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("transcription_id", "position"),
	}
}
