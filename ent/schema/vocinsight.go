package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VocInsight holds the once-per-call projection of a VocAnalyzed event.
type VocInsight struct {
	ent.Schema
}

// Fields of the VocInsight.
func (VocInsight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("insight_id").
			Unique().
			Immutable(),
		field.String("call_id").
			Unique(),
		field.Enum("primary_intent").
			Values("complaint", "inquiry", "compliment", "request", "other"),
		field.JSON("topics", []string{}).
			Optional(),
		field.JSON("keywords", []string{}).
			Optional(),
		field.Enum("customer_satisfaction").
			Values("low", "medium", "high"),
		field.Float("predicted_churn_risk").
			Comment("In [0,1]"),
		field.JSON("actionable_items", []string{}).
			Optional(),
		field.Text("summary"),
		field.String("event_id"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the VocInsight.
func (VocInsight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("call_id"),
		index.Fields("primary_intent"),
	}
}
