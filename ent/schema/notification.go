package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification is one alert delivery attempt record. Lifecycle:
// pending -> sent | failed; a resend resets the row to pending and
// re-attempts delivery.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.String("call_id"),
		field.String("notification_type").
			Comment("Alert kind: escalation, high_churn, compliance_violation, review_required, voc_alert"),
		field.String("recipient"),
		field.Enum("channel").
			Values("email", "chat", "webhook"),
		field.String("subject"),
		field.Text("body"),
		field.Enum("priority").
			Values("normal", "high", "urgent").
			Default("normal"),
		field.Enum("status").
			Values("pending", "sent", "failed").
			Default("pending"),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("call_id"),
		index.Fields("status"),
		index.Fields("status", "created_at"),
	}
}
