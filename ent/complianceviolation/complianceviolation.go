// Code generated by ent, DO NOT EDIT.

package complianceviolation

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the complianceviolation type in the database.
	Label = "compliance_violation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "violation_id"
	// FieldAuditResultID holds the string denoting the audit_result_id field in the database.
	FieldAuditResultID = "audit_result_id"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldRuleName holds the string denoting the rule_name field in the database.
	FieldRuleName = "rule_name"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTimestampInCall holds the string denoting the timestamp_in_call field in the database.
	FieldTimestampInCall = "timestamp_in_call"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// EdgeAuditResult holds the string denoting the audit_result edge name in mutations.
	EdgeAuditResult = "audit_result"
	// AuditResultFieldID holds the string denoting the ID field of the AuditResult.
	AuditResultFieldID = "audit_result_id"
	// Table holds the table name of the complianceviolation in the database.
	Table = "compliance_violations"
	// AuditResultTable is the table that holds the audit_result relation/edge.
	AuditResultTable = "compliance_violations"
	// AuditResultInverseTable is the table name for the AuditResult entity.
	// It exists in this package in order to avoid circular dependency with the "auditresult" package.
	AuditResultInverseTable = "audit_results"
	// AuditResultColumn is the table column denoting the audit_result relation/edge.
	AuditResultColumn = "audit_result_id"
)

// Columns holds all SQL columns for complianceviolation fields.
var Columns = []string{
	FieldID,
	FieldAuditResultID,
	FieldRuleID,
	FieldRuleName,
	FieldSeverity,
	FieldDescription,
	FieldTimestampInCall,
	FieldEvidence,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("complianceviolation: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the ComplianceViolation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuditResultID orders the results by the audit_result_id field.
func ByAuditResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditResultID, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByRuleName orders the results by the rule_name field.
func ByRuleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleName, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTimestampInCall orders the results by the timestamp_in_call field.
func ByTimestampInCall(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestampInCall, opts...).ToFunc()
}

// ByEvidence orders the results by the evidence field.
func ByEvidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidence, opts...).ToFunc()
}

// ByAuditResultField orders the results by audit_result field.
func ByAuditResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditResultStep(), sql.OrderByField(field, opts...))
	}
}
func newAuditResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditResultInverseTable, AuditResultFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuditResultTable, AuditResultColumn),
	)
}
