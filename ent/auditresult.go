// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/auditresult"
)

// AuditResult is the model entity for the AuditResult schema.
type AuditResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CallID holds the value of the "call_id" field.
	CallID string `json:"call_id,omitempty"`
	// 0..100
	OverallScore int `json:"overall_score,omitempty"`
	// ComplianceStatus holds the value of the "compliance_status" field.
	ComplianceStatus auditresult.ComplianceStatus `json:"compliance_status,omitempty"`
	// ScriptAdherence holds the value of the "script_adherence" field.
	ScriptAdherence int `json:"script_adherence,omitempty"`
	// CustomerService holds the value of the "customer_service" field.
	CustomerService int `json:"customer_service,omitempty"`
	// ResolutionEffectiveness holds the value of the "resolution_effectiveness" field.
	ResolutionEffectiveness int `json:"resolution_effectiveness,omitempty"`
	// FlagsForReview holds the value of the "flags_for_review" field.
	FlagsForReview bool `json:"flags_for_review,omitempty"`
	// ReviewReason holds the value of the "review_reason" field.
	ReviewReason *string `json:"review_reason,omitempty"`
	// ProcessingTimeMs holds the value of the "processing_time_ms" field.
	ProcessingTimeMs int64 `json:"processing_time_ms,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditResultQuery when eager-loading is set.
	Edges        AuditResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditResultEdges holds the relations/edges for other nodes in the graph.
type AuditResultEdges struct {
	// Violations holds the value of the violations edge.
	Violations []*ComplianceViolation `json:"violations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ViolationsOrErr returns the Violations value or an error if the edge
// was not loaded in eager-loading.
func (e AuditResultEdges) ViolationsOrErr() ([]*ComplianceViolation, error) {
	if e.loadedTypes[0] {
		return e.Violations, nil
	}
	return nil, &NotLoadedError{edge: "violations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditresult.FieldFlagsForReview:
			values[i] = new(sql.NullBool)
		case auditresult.FieldOverallScore, auditresult.FieldScriptAdherence, auditresult.FieldCustomerService, auditresult.FieldResolutionEffectiveness, auditresult.FieldProcessingTimeMs:
			values[i] = new(sql.NullInt64)
		case auditresult.FieldID, auditresult.FieldCallID, auditresult.FieldComplianceStatus, auditresult.FieldReviewReason, auditresult.FieldEventID:
			values[i] = new(sql.NullString)
		case auditresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditResult fields.
func (_m *AuditResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditresult.FieldCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field call_id", values[i])
			} else if value.Valid {
				_m.CallID = value.String
			}
		case auditresult.FieldOverallScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = int(value.Int64)
			}
		case auditresult.FieldComplianceStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field compliance_status", values[i])
			} else if value.Valid {
				_m.ComplianceStatus = auditresult.ComplianceStatus(value.String)
			}
		case auditresult.FieldScriptAdherence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field script_adherence", values[i])
			} else if value.Valid {
				_m.ScriptAdherence = int(value.Int64)
			}
		case auditresult.FieldCustomerService:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field customer_service", values[i])
			} else if value.Valid {
				_m.CustomerService = int(value.Int64)
			}
		case auditresult.FieldResolutionEffectiveness:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_effectiveness", values[i])
			} else if value.Valid {
				_m.ResolutionEffectiveness = int(value.Int64)
			}
		case auditresult.FieldFlagsForReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field flags_for_review", values[i])
			} else if value.Valid {
				_m.FlagsForReview = value.Bool
			}
		case auditresult.FieldReviewReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_reason", values[i])
			} else if value.Valid {
				_m.ReviewReason = new(string)
				*_m.ReviewReason = value.String
			}
		case auditresult.FieldProcessingTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_ms", values[i])
			} else if value.Valid {
				_m.ProcessingTimeMs = value.Int64
			}
		case auditresult.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case auditresult.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AuditResult.
// This includes values selected through modifiers, order, etc.
func (_m *AuditResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryViolations queries the "violations" edge of the AuditResult entity.
func (_m *AuditResult) QueryViolations() *ComplianceViolationQuery {
	return NewAuditResultClient(_m.config).QueryViolations(_m)
}

// Update returns a builder for updating this AuditResult.
// Note that you need to call AuditResult.Unwrap() before calling this method if this AuditResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditResult) Update() *AuditResultUpdateOne {
	return NewAuditResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditResult) Unwrap() *AuditResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditResult) String() string {
	var builder strings.Builder
	builder.WriteString("AuditResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("call_id=")
	builder.WriteString(_m.CallID)
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("compliance_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ComplianceStatus))
	builder.WriteString(", ")
	builder.WriteString("script_adherence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScriptAdherence))
	builder.WriteString(", ")
	builder.WriteString("customer_service=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomerService))
	builder.WriteString(", ")
	builder.WriteString("resolution_effectiveness=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResolutionEffectiveness))
	builder.WriteString(", ")
	builder.WriteString("flags_for_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlagsForReview))
	builder.WriteString(", ")
	if v := _m.ReviewReason; v != nil {
		builder.WriteString("review_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processing_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingTimeMs))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AuditResults is a parsable slice of AuditResult.
type AuditResults []*AuditResult
