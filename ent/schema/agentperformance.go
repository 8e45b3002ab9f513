package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentPerformance is one time bucket of the rolling agent metrics series,
// keyed by (agent_id, time_slot) at hour granularity. A running average and
// its count always update together; merges use
// (avg1*n1 + avg2*n2) / (n1+n2) with null-safe identity for empty buckets.
type AgentPerformance struct {
	ent.Schema
}

// Fields of the AgentPerformance.
func (AgentPerformance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("performance_id").
			Unique().
			Immutable(),
		field.String("agent_id"),
		field.Time("time_slot").
			Comment("Bucket start, truncated to the hour, UTC"),
		field.Int("count").
			Default(0).
			Comment("Unique observations folded into this bucket"),
		field.Float("avg_quality").
			Optional().
			Nillable(),
		field.Float("avg_sentiment").
			Optional().
			Nillable(),
		field.Float("avg_satisfaction").
			Optional().
			Nillable(),
		field.Float("avg_compliance_pass_rate").
			Optional().
			Nillable(),
		field.Float("avg_churn_risk").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Indexes of the AgentPerformance.
func (AgentPerformance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "time_slot").
			Unique(),
		index.Fields("time_slot"),
	}
}
