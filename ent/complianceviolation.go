// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/ent/complianceviolation"
)

// ComplianceViolation is the model entity for the ComplianceViolation schema.
type ComplianceViolation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AuditResultID holds the value of the "audit_result_id" field.
	AuditResultID string `json:"audit_result_id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID string `json:"rule_id,omitempty"`
	// RuleName holds the value of the "rule_name" field.
	RuleName string `json:"rule_name,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity complianceviolation.Severity `json:"severity,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Seconds from call start, when the evidence is positional
	TimestampInCall *float64 `json:"timestamp_in_call,omitempty"`
	// Evidence holds the value of the "evidence" field.
	Evidence *string `json:"evidence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ComplianceViolationQuery when eager-loading is set.
	Edges        ComplianceViolationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ComplianceViolationEdges holds the relations/edges for other nodes in the graph.
type ComplianceViolationEdges struct {
	// AuditResult holds the value of the audit_result edge.
	AuditResult *AuditResult `json:"audit_result,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditResultOrErr returns the AuditResult value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ComplianceViolationEdges) AuditResultOrErr() (*AuditResult, error) {
	if e.AuditResult != nil {
		return e.AuditResult, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: auditresult.Label}
	}
	return nil, &NotLoadedError{edge: "audit_result"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ComplianceViolation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case complianceviolation.FieldTimestampInCall:
			values[i] = new(sql.NullFloat64)
		case complianceviolation.FieldID, complianceviolation.FieldAuditResultID, complianceviolation.FieldRuleID, complianceviolation.FieldRuleName, complianceviolation.FieldSeverity, complianceviolation.FieldDescription, complianceviolation.FieldEvidence:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ComplianceViolation fields.
func (_m *ComplianceViolation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case complianceviolation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case complianceviolation.FieldAuditResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_result_id", values[i])
			} else if value.Valid {
				_m.AuditResultID = value.String
			}
		case complianceviolation.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = value.String
			}
		case complianceviolation.FieldRuleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_name", values[i])
			} else if value.Valid {
				_m.RuleName = value.String
			}
		case complianceviolation.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = complianceviolation.Severity(value.String)
			}
		case complianceviolation.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case complianceviolation.FieldTimestampInCall:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp_in_call", values[i])
			} else if value.Valid {
				_m.TimestampInCall = new(float64)
				*_m.TimestampInCall = value.Float64
			}
		case complianceviolation.FieldEvidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value.Valid {
				_m.Evidence = new(string)
				*_m.Evidence = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ComplianceViolation.
// This includes values selected through modifiers, order, etc.
func (_m *ComplianceViolation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAuditResult queries the "audit_result" edge of the ComplianceViolation entity.
func (_m *ComplianceViolation) QueryAuditResult() *AuditResultQuery {
	return NewComplianceViolationClient(_m.config).QueryAuditResult(_m)
}

// Update returns a builder for updating this ComplianceViolation.
// Note that you need to call ComplianceViolation.Unwrap() before calling this method if this ComplianceViolation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ComplianceViolation) Update() *ComplianceViolationUpdateOne {
	return NewComplianceViolationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ComplianceViolation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ComplianceViolation) Unwrap() *ComplianceViolation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ComplianceViolation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ComplianceViolation) String() string {
	var builder strings.Builder
	builder.WriteString("ComplianceViolation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_result_id=")
	builder.WriteString(_m.AuditResultID)
	builder.WriteString(", ")
	builder.WriteString("rule_id=")
	builder.WriteString(_m.RuleID)
	builder.WriteString(", ")
	builder.WriteString("rule_name=")
	builder.WriteString(_m.RuleName)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.TimestampInCall; v != nil {
		builder.WriteString("timestamp_in_call=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Evidence; v != nil {
		builder.WriteString("evidence=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ComplianceViolations is a parsable slice of ComplianceViolation.
type ComplianceViolations []*ComplianceViolation
