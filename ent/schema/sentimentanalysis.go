package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SentimentAnalysis holds the once-per-call projection of a
// SentimentAnalyzed event. Per-segment sentiments are stored inline as
// JSON; they are read back whole, never queried individually.
type SentimentAnalysis struct {
	ent.Schema
}

// Fields of the SentimentAnalysis.
func (SentimentAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sentiment_id").
			Unique().
			Immutable(),
		field.String("call_id").
			Unique(),
		field.Enum("overall_sentiment").
			Values("positive", "neutral", "negative"),
		field.Float("sentiment_score").
			Comment("Weighted overall score in [-1,1]"),
		field.Bool("escalation_detected").
			Default(false),
		field.JSON("escalation_details", map[string]float64{}).
			Optional(),
		field.JSON("segment_sentiments", []map[string]interface{}{}).
			Optional(),
		field.Int64("processing_time_ms"),
		field.String("event_id"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the SentimentAnalysis.
func (SentimentAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("call_id"),
		index.Fields("escalation_detected"),
	}
}
