// Code generated by ent, DO NOT EDIT.

package auditresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the auditresult type in the database.
	Label = "audit_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "audit_result_id"
	// FieldCallID holds the string denoting the call_id field in the database.
	FieldCallID = "call_id"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldComplianceStatus holds the string denoting the compliance_status field in the database.
	FieldComplianceStatus = "compliance_status"
	// FieldScriptAdherence holds the string denoting the script_adherence field in the database.
	FieldScriptAdherence = "script_adherence"
	// FieldCustomerService holds the string denoting the customer_service field in the database.
	FieldCustomerService = "customer_service"
	// FieldResolutionEffectiveness holds the string denoting the resolution_effectiveness field in the database.
	FieldResolutionEffectiveness = "resolution_effectiveness"
	// FieldFlagsForReview holds the string denoting the flags_for_review field in the database.
	FieldFlagsForReview = "flags_for_review"
	// FieldReviewReason holds the string denoting the review_reason field in the database.
	FieldReviewReason = "review_reason"
	// FieldProcessingTimeMs holds the string denoting the processing_time_ms field in the database.
	FieldProcessingTimeMs = "processing_time_ms"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeViolations holds the string denoting the violations edge name in mutations.
	EdgeViolations = "violations"
	// ComplianceViolationFieldID holds the string denoting the ID field of the ComplianceViolation.
	ComplianceViolationFieldID = "violation_id"
	// Table holds the table name of the auditresult in the database.
	Table = "audit_results"
	// ViolationsTable is the table that holds the violations relation/edge.
	ViolationsTable = "compliance_violations"
	// ViolationsInverseTable is the table name for the ComplianceViolation entity.
	// It exists in this package in order to avoid circular dependency with the "complianceviolation" package.
	ViolationsInverseTable = "compliance_violations"
	// ViolationsColumn is the table column denoting the violations relation/edge.
	ViolationsColumn = "audit_result_id"
)

// Columns holds all SQL columns for auditresult fields.
var Columns = []string{
	FieldID,
	FieldCallID,
	FieldOverallScore,
	FieldComplianceStatus,
	FieldScriptAdherence,
	FieldCustomerService,
	FieldResolutionEffectiveness,
	FieldFlagsForReview,
	FieldReviewReason,
	FieldProcessingTimeMs,
	FieldEventID,
	FieldCreatedAt,
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

var (
	// DefaultFlagsForReview holds the default value on creation for the "flags_for_review" field.
	DefaultFlagsForReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ComplianceStatus defines the type for the "compliance_status" enum field.
type ComplianceStatus string

// ComplianceStatus values.
const (
	ComplianceStatusPassed         ComplianceStatus = "passed"
	ComplianceStatusReviewRequired ComplianceStatus = "review_required"
	ComplianceStatusFailed         ComplianceStatus = "failed"
)

func (cs ComplianceStatus) String() string {
	return string(cs)
}

// ComplianceStatusValidator is a validator for the "compliance_status" field enum values. It is called by the builders before save.
func ComplianceStatusValidator(cs ComplianceStatus) error {
	switch cs {
	case ComplianceStatusPassed, ComplianceStatusReviewRequired, ComplianceStatusFailed:
		return nil
	default:
		return fmt.Errorf("auditresult: invalid enum value for compliance_status field: %q", cs)
	}
}

// OrderOption defines the ordering options for the AuditResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCallID orders the results by the call_id field.
func ByCallID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallID, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByComplianceStatus orders the results by the compliance_status field.
func ByComplianceStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplianceStatus, opts...).ToFunc()
}

// ByScriptAdherence orders the results by the script_adherence field.
func ByScriptAdherence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScriptAdherence, opts...).ToFunc()
}

// ByCustomerService orders the results by the customer_service field.
func ByCustomerService(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerService, opts...).ToFunc()
}

// ByResolutionEffectiveness orders the results by the resolution_effectiveness field.
func ByResolutionEffectiveness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionEffectiveness, opts...).ToFunc()
}

// ByFlagsForReview orders the results by the flags_for_review field.
func ByFlagsForReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlagsForReview, opts...).ToFunc()
}

// ByReviewReason orders the results by the review_reason field.
func ByReviewReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewReason, opts...).ToFunc()
}

// ByProcessingTimeMs orders the results by the processing_time_ms field.
func ByProcessingTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTimeMs, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByViolationsCount orders the results by violations count.
func ByViolationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newViolationsStep(), opts...)
	}
}

// ByViolations orders the results by violations terms.
func ByViolations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newViolationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newViolationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ViolationsInverseTable, ComplianceViolationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ViolationsTable, ViolationsColumn),
	)
}
