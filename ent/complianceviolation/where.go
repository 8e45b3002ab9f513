// Code generated by ent, DO NOT EDIT.

package complianceviolation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callsight/callsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldContainsFold(FieldID, id))
}

// AuditResultID applies equality check predicate on the "audit_result_id" field. It's identical to AuditResultIDEQ.
func AuditResultID(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldAuditResultID, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldRuleID, v))
}

// RuleName applies equality check predicate on the "rule_name" field. It's identical to RuleNameEQ.
func RuleName(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldRuleName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldDescription, v))
}

// TimestampInCall applies equality check predicate on the "timestamp_in_call" field. It's identical to TimestampInCallEQ.
func TimestampInCall(v float64) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldTimestampInCall, v))
}

// Evidence applies equality check predicate on the "evidence" field. It's identical to EvidenceEQ.
func Evidence(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldEvidence, v))
}

// AuditResultIDEQ applies the EQ predicate on the "audit_result_id" field.
func AuditResultIDEQ(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldAuditResultID, v))
}

// AuditResultIDNEQ applies the NEQ predicate on the "audit_result_id" field.
func AuditResultIDNEQ(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNEQ(FieldAuditResultID, v))
}

// AuditResultIDIn applies the In predicate on the "audit_result_id" field.
func AuditResultIDIn(vs ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldIn(FieldAuditResultID, vs...))
}

// AuditResultIDNotIn applies the NotIn predicate on the "audit_result_id" field.
func AuditResultIDNotIn(vs ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNotIn(FieldAuditResultID, vs...))
}

// AuditResultIDGT applies the GT predicate on the "audit_result_id" field.
func AuditResultIDGT(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGT(FieldAuditResultID, v))
}

// AuditResultIDGTE applies the GTE predicate on the "audit_result_id" field.
func AuditResultIDGTE(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGTE(FieldAuditResultID, v))
}

// AuditResultIDLT applies the LT predicate on the "audit_result_id" field.
func AuditResultIDLT(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLT(FieldAuditResultID, v))
}

// AuditResultIDLTE applies the LTE predicate on the "audit_result_id" field.
func AuditResultIDLTE(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLTE(FieldAuditResultID, v))
}

// AuditResultIDContains applies the Contains predicate on the "audit_result_id" field.
func AuditResultIDContains(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldContains(FieldAuditResultID, v))
}

// AuditResultIDHasPrefix applies the HasPrefix predicate on the "audit_result_id" field.
func AuditResultIDHasPrefix(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldHasPrefix(FieldAuditResultID, v))
}

// AuditResultIDHasSuffix applies the HasSuffix predicate on the "audit_result_id" field.
func AuditResultIDHasSuffix(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldHasSuffix(FieldAuditResultID, v))
}

// AuditResultIDEqualFold applies the EqualFold predicate on the "audit_result_id" field.
func AuditResultIDEqualFold(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEqualFold(FieldAuditResultID, v))
}

// AuditResultIDContainsFold applies the ContainsFold predicate on the "audit_result_id" field.
func AuditResultIDContainsFold(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldContainsFold(FieldAuditResultID, v))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldContainsFold(FieldRuleID, v))
}

// RuleNameEQ applies the EQ predicate on the "rule_name" field.
func RuleNameEQ(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldRuleName, v))
}

// RuleNameNEQ applies the NEQ predicate on the "rule_name" field.
func RuleNameNEQ(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNEQ(FieldRuleName, v))
}

// RuleNameIn applies the In predicate on the "rule_name" field.
func RuleNameIn(vs ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldIn(FieldRuleName, vs...))
}

// RuleNameNotIn applies the NotIn predicate on the "rule_name" field.
func RuleNameNotIn(vs ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNotIn(FieldRuleName, vs...))
}

// RuleNameGT applies the GT predicate on the "rule_name" field.
func RuleNameGT(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGT(FieldRuleName, v))
}

// RuleNameGTE applies the GTE predicate on the "rule_name" field.
func RuleNameGTE(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGTE(FieldRuleName, v))
}

// RuleNameLT applies the LT predicate on the "rule_name" field.
func RuleNameLT(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLT(FieldRuleName, v))
}

// RuleNameLTE applies the LTE predicate on the "rule_name" field.
func RuleNameLTE(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLTE(FieldRuleName, v))
}

// RuleNameContains applies the Contains predicate on the "rule_name" field.
func RuleNameContains(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldContains(FieldRuleName, v))
}

// RuleNameHasPrefix applies the HasPrefix predicate on the "rule_name" field.
func RuleNameHasPrefix(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldHasPrefix(FieldRuleName, v))
}

// RuleNameHasSuffix applies the HasSuffix predicate on the "rule_name" field.
func RuleNameHasSuffix(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldHasSuffix(FieldRuleName, v))
}

// RuleNameEqualFold applies the EqualFold predicate on the "rule_name" field.
func RuleNameEqualFold(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEqualFold(FieldRuleName, v))
}

// RuleNameContainsFold applies the ContainsFold predicate on the "rule_name" field.
func RuleNameContainsFold(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldContainsFold(FieldRuleName, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNotIn(FieldSeverity, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldContainsFold(FieldDescription, v))
}

// TimestampInCallEQ applies the EQ predicate on the "timestamp_in_call" field.
func TimestampInCallEQ(v float64) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldTimestampInCall, v))
}

// TimestampInCallNEQ applies the NEQ predicate on the "timestamp_in_call" field.
func TimestampInCallNEQ(v float64) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNEQ(FieldTimestampInCall, v))
}

// TimestampInCallIn applies the In predicate on the "timestamp_in_call" field.
func TimestampInCallIn(vs ...float64) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldIn(FieldTimestampInCall, vs...))
}

// TimestampInCallNotIn applies the NotIn predicate on the "timestamp_in_call" field.
func TimestampInCallNotIn(vs ...float64) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNotIn(FieldTimestampInCall, vs...))
}

// TimestampInCallGT applies the GT predicate on the "timestamp_in_call" field.
func TimestampInCallGT(v float64) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGT(FieldTimestampInCall, v))
}

// TimestampInCallGTE applies the GTE predicate on the "timestamp_in_call" field.
func TimestampInCallGTE(v float64) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGTE(FieldTimestampInCall, v))
}

// TimestampInCallLT applies the LT predicate on the "timestamp_in_call" field.
func TimestampInCallLT(v float64) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLT(FieldTimestampInCall, v))
}

// TimestampInCallLTE applies the LTE predicate on the "timestamp_in_call" field.
func TimestampInCallLTE(v float64) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLTE(FieldTimestampInCall, v))
}

// TimestampInCallIsNil applies the IsNil predicate on the "timestamp_in_call" field.
func TimestampInCallIsNil() predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldIsNull(FieldTimestampInCall))
}

// TimestampInCallNotNil applies the NotNil predicate on the "timestamp_in_call" field.
func TimestampInCallNotNil() predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNotNull(FieldTimestampInCall))
}

// EvidenceEQ applies the EQ predicate on the "evidence" field.
func EvidenceEQ(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEQ(FieldEvidence, v))
}

// EvidenceNEQ applies the NEQ predicate on the "evidence" field.
func EvidenceNEQ(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNEQ(FieldEvidence, v))
}

// EvidenceIn applies the In predicate on the "evidence" field.
func EvidenceIn(vs ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldIn(FieldEvidence, vs...))
}

// EvidenceNotIn applies the NotIn predicate on the "evidence" field.
func EvidenceNotIn(vs ...string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNotIn(FieldEvidence, vs...))
}

// EvidenceGT applies the GT predicate on the "evidence" field.
func EvidenceGT(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGT(FieldEvidence, v))
}

// EvidenceGTE applies the GTE predicate on the "evidence" field.
func EvidenceGTE(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldGTE(FieldEvidence, v))
}

// EvidenceLT applies the LT predicate on the "evidence" field.
func EvidenceLT(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLT(FieldEvidence, v))
}

// EvidenceLTE applies the LTE predicate on the "evidence" field.
func EvidenceLTE(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldLTE(FieldEvidence, v))
}

// EvidenceContains applies the Contains predicate on the "evidence" field.
func EvidenceContains(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldContains(FieldEvidence, v))
}

// EvidenceHasPrefix applies the HasPrefix predicate on the "evidence" field.
func EvidenceHasPrefix(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldHasPrefix(FieldEvidence, v))
}

// EvidenceHasSuffix applies the HasSuffix predicate on the "evidence" field.
func EvidenceHasSuffix(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldHasSuffix(FieldEvidence, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldNotNull(FieldEvidence))
}

// EvidenceEqualFold applies the EqualFold predicate on the "evidence" field.
func EvidenceEqualFold(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldEqualFold(FieldEvidence, v))
}

// EvidenceContainsFold applies the ContainsFold predicate on the "evidence" field.
func EvidenceContainsFold(v string) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.FieldContainsFold(FieldEvidence, v))
}

// HasAuditResult applies the HasEdge predicate on the "audit_result" edge.
func HasAuditResult() predicate.ComplianceViolation {
	return predicate.ComplianceViolation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditResultTable, AuditResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditResultWith applies the HasEdge predicate on the "audit_result" edge with a given conditions (other predicates).
func HasAuditResultWith(preds ...predicate.AuditResult) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(func(s *sql.Selector) {
		step := newAuditResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ComplianceViolation) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ComplianceViolation) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ComplianceViolation) predicate.ComplianceViolation {
	return predicate.ComplianceViolation(sql.NotPredicates(p))
}
