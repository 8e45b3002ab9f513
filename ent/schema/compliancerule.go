package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ComplianceRule is one configurable audit rule. The definition is a tagged
// JSON variant ({"type": "keyword_check" | "prohibited_words" |
// "sentiment_response", ...}); unknown types evaluate to no violation.
type ComplianceRule struct {
	ent.Schema
}

// Fields of the ComplianceRule.
func (ComplianceRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("category"),
		field.Enum("severity").
			Values("low", "medium", "high", "critical"),
		field.Bool("is_active").
			Default(true),
		field.JSON("definition", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Indexes of the ComplianceRule.
func (ComplianceRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
		index.Fields("category"),
	}
}
