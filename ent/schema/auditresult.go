package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditResult holds the once-per-call projection of a compliance audit.
// Violations are child rows linked by audit_result_id.
type AuditResult struct {
	ent.Schema
}

// Fields of the AuditResult.
func (AuditResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_result_id").
			Unique().
			Immutable(),
		field.String("call_id").
			Unique(),
		field.Int("overall_score").
			Comment("0..100"),
		field.Enum("compliance_status").
			Values("passed", "review_required", "failed"),
		field.Int("script_adherence"),
		field.Int("customer_service"),
		field.Int("resolution_effectiveness"),
		field.Bool("flags_for_review").
			Default(false),
		field.String("review_reason").
			Optional().
			Nillable(),
		field.Int64("processing_time_ms"),
		field.String("event_id"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the AuditResult.
func (AuditResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("violations", ComplianceViolation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AuditResult.
func (AuditResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("call_id"),
		index.Fields("compliance_status"),
		index.Fields("flags_for_review"),
	}
}
