// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/agentperformance"
)

// AgentPerformance is the model entity for the AgentPerformance schema.
type AgentPerformance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Bucket start, truncated to the hour, UTC
	TimeSlot time.Time `json:"time_slot,omitempty"`
	// Unique observations folded into this bucket
	Count int `json:"count,omitempty"`
	// AvgQuality holds the value of the "avg_quality" field.
	AvgQuality *float64 `json:"avg_quality,omitempty"`
	// AvgSentiment holds the value of the "avg_sentiment" field.
	AvgSentiment *float64 `json:"avg_sentiment,omitempty"`
	// AvgSatisfaction holds the value of the "avg_satisfaction" field.
	AvgSatisfaction *float64 `json:"avg_satisfaction,omitempty"`
	// AvgCompliancePassRate holds the value of the "avg_compliance_pass_rate" field.
	AvgCompliancePassRate *float64 `json:"avg_compliance_pass_rate,omitempty"`
	// AvgChurnRisk holds the value of the "avg_churn_risk" field.
	AvgChurnRisk *float64 `json:"avg_churn_risk,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentPerformance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentperformance.FieldAvgQuality, agentperformance.FieldAvgSentiment, agentperformance.FieldAvgSatisfaction, agentperformance.FieldAvgCompliancePassRate, agentperformance.FieldAvgChurnRisk:
			values[i] = new(sql.NullFloat64)
		case agentperformance.FieldCount:
			values[i] = new(sql.NullInt64)
		case agentperformance.FieldID, agentperformance.FieldAgentID:
			values[i] = new(sql.NullString)
		case agentperformance.FieldTimeSlot, agentperformance.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentPerformance fields.
func (_m *AgentPerformance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentperformance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentperformance.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case agentperformance.FieldTimeSlot:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field time_slot", values[i])
			} else if value.Valid {
				_m.TimeSlot = value.Time
			}
		case agentperformance.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = int(value.Int64)
			}
		case agentperformance.FieldAvgQuality:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_quality", values[i])
			} else if value.Valid {
				_m.AvgQuality = new(float64)
				*_m.AvgQuality = value.Float64
			}
		case agentperformance.FieldAvgSentiment:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_sentiment", values[i])
			} else if value.Valid {
				_m.AvgSentiment = new(float64)
				*_m.AvgSentiment = value.Float64
			}
		case agentperformance.FieldAvgSatisfaction:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_satisfaction", values[i])
			} else if value.Valid {
				_m.AvgSatisfaction = new(float64)
				*_m.AvgSatisfaction = value.Float64
			}
		case agentperformance.FieldAvgCompliancePassRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_compliance_pass_rate", values[i])
			} else if value.Valid {
				_m.AvgCompliancePassRate = new(float64)
				*_m.AvgCompliancePassRate = value.Float64
			}
		case agentperformance.FieldAvgChurnRisk:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_churn_risk", values[i])
			} else if value.Valid {
				_m.AvgChurnRisk = new(float64)
				*_m.AvgChurnRisk = value.Float64
			}
		case agentperformance.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentPerformance.
// This includes values selected through modifiers, order, etc.
func (_m *AgentPerformance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentPerformance.
// Note that you need to call AgentPerformance.Unwrap() before calling this method if this AgentPerformance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentPerformance) Update() *AgentPerformanceUpdateOne {
	return NewAgentPerformanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentPerformance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentPerformance) Unwrap() *AgentPerformance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentPerformance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentPerformance) String() string {
	var builder strings.Builder
	builder.WriteString("AgentPerformance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("time_slot=")
	builder.WriteString(_m.TimeSlot.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteString(", ")
	if v := _m.AvgQuality; v != nil {
		builder.WriteString("avg_quality=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AvgSentiment; v != nil {
		builder.WriteString("avg_sentiment=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AvgSatisfaction; v != nil {
		builder.WriteString("avg_satisfaction=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AvgCompliancePassRate; v != nil {
		builder.WriteString("avg_compliance_pass_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AvgChurnRisk; v != nil {
		builder.WriteString("avg_churn_risk=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentPerformances is a parsable slice of AgentPerformance.
type AgentPerformances []*AgentPerformance
