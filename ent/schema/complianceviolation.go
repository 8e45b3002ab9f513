package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ComplianceViolation is one rule violation found during an audit.
type ComplianceViolation struct {
	ent.Schema
}

// Fields of the ComplianceViolation.
func (ComplianceViolation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("violation_id").
			Unique().
			Immutable(),
		field.String("audit_result_id"),
		field.String("rule_id"),
		field.String("rule_name"),
		field.Enum("severity").
			Values("low", "medium", "high", "critical"),
		field.Text("description"),
		field.Float("timestamp_in_call").
			Optional().
			Nillable().
			Comment("Seconds from call start, when the evidence is positional"),
		field.Text("evidence").
			Optional().
			Nillable(),
	}
}

// Edges of the ComplianceViolation.
func (ComplianceViolation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit_result", AuditResult.Type).
			Ref("violations").
			Field("audit_result_id").
			Unique().
			Required(),
	}
}

// Indexes of the ComplianceViolation.
func (ComplianceViolation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_result_id"),
		index.Fields("severity"),
	}
}
