// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/vocinsight"
)

// VocInsight is the model entity for the VocInsight schema.
type VocInsight struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CallID holds the value of the "call_id" field.
	CallID string `json:"call_id,omitempty"`
	// PrimaryIntent holds the value of the "primary_intent" field.
	PrimaryIntent vocinsight.PrimaryIntent `json:"primary_intent,omitempty"`
	// Topics holds the value of the "topics" field.
	Topics []string `json:"topics,omitempty"`
	// Keywords holds the value of the "keywords" field.
	Keywords []string `json:"keywords,omitempty"`
	// CustomerSatisfaction holds the value of the "customer_satisfaction" field.
	CustomerSatisfaction vocinsight.CustomerSatisfaction `json:"customer_satisfaction,omitempty"`
	// In [0,1]
	PredictedChurnRisk float64 `json:"predicted_churn_risk,omitempty"`
	// ActionableItems holds the value of the "actionable_items" field.
	ActionableItems []string `json:"actionable_items,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VocInsight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vocinsight.FieldTopics, vocinsight.FieldKeywords, vocinsight.FieldActionableItems:
			values[i] = new([]byte)
		case vocinsight.FieldPredictedChurnRisk:
			values[i] = new(sql.NullFloat64)
		case vocinsight.FieldID, vocinsight.FieldCallID, vocinsight.FieldPrimaryIntent, vocinsight.FieldCustomerSatisfaction, vocinsight.FieldSummary, vocinsight.FieldEventID:
			values[i] = new(sql.NullString)
		case vocinsight.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VocInsight fields.
func (_m *VocInsight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vocinsight.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case vocinsight.FieldCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field call_id", values[i])
			} else if value.Valid {
				_m.CallID = value.String
			}
		case vocinsight.FieldPrimaryIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_intent", values[i])
			} else if value.Valid {
				_m.PrimaryIntent = vocinsight.PrimaryIntent(value.String)
			}
		case vocinsight.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case vocinsight.FieldKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Keywords); err != nil {
					return fmt.Errorf("unmarshal field keywords: %w", err)
				}
			}
		case vocinsight.FieldCustomerSatisfaction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_satisfaction", values[i])
			} else if value.Valid {
				_m.CustomerSatisfaction = vocinsight.CustomerSatisfaction(value.String)
			}
		case vocinsight.FieldPredictedChurnRisk:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field predicted_churn_risk", values[i])
			} else if value.Valid {
				_m.PredictedChurnRisk = value.Float64
			}
		case vocinsight.FieldActionableItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field actionable_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionableItems); err != nil {
					return fmt.Errorf("unmarshal field actionable_items: %w", err)
				}
			}
		case vocinsight.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case vocinsight.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case vocinsight.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VocInsight.
// This includes values selected through modifiers, order, etc.
func (_m *VocInsight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VocInsight.
// Note that you need to call VocInsight.Unwrap() before calling this method if this VocInsight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VocInsight) Update() *VocInsightUpdateOne {
	return NewVocInsightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VocInsight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VocInsight) Unwrap() *VocInsight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VocInsight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VocInsight) String() string {
	var builder strings.Builder
	builder.WriteString("VocInsight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("call_id=")
	builder.WriteString(_m.CallID)
	builder.WriteString(", ")
	builder.WriteString("primary_intent=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrimaryIntent))
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.Keywords))
	builder.WriteString(", ")
	builder.WriteString("customer_satisfaction=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomerSatisfaction))
	builder.WriteString(", ")
	builder.WriteString("predicted_churn_risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.PredictedChurnRisk))
	builder.WriteString(", ")
	builder.WriteString("actionable_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionableItems))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VocInsights is a parsable slice of VocInsight.
type VocInsights []*VocInsight
