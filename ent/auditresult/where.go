// Code generated by ent, DO NOT EDIT.

package auditresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callsight/callsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldContainsFold(FieldID, id))
}

// CallID applies equality check predicate on the "call_id" field. It's identical to CallIDEQ.
func CallID(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldCallID, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldOverallScore, v))
}

// ScriptAdherence applies equality check predicate on the "script_adherence" field. It's identical to ScriptAdherenceEQ.
func ScriptAdherence(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldScriptAdherence, v))
}

// CustomerService applies equality check predicate on the "customer_service" field. It's identical to CustomerServiceEQ.
func CustomerService(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldCustomerService, v))
}

// ResolutionEffectiveness applies equality check predicate on the "resolution_effectiveness" field. It's identical to ResolutionEffectivenessEQ.
func ResolutionEffectiveness(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldResolutionEffectiveness, v))
}

// FlagsForReview applies equality check predicate on the "flags_for_review" field. It's identical to FlagsForReviewEQ.
func FlagsForReview(v bool) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldFlagsForReview, v))
}

// ReviewReason applies equality check predicate on the "review_reason" field. It's identical to ReviewReasonEQ.
func ReviewReason(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldReviewReason, v))
}

// ProcessingTimeMs applies equality check predicate on the "processing_time_ms" field. It's identical to ProcessingTimeMsEQ.
func ProcessingTimeMs(v int64) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldEventID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CallIDEQ applies the EQ predicate on the "call_id" field.
func CallIDEQ(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldCallID, v))
}

// CallIDNEQ applies the NEQ predicate on the "call_id" field.
func CallIDNEQ(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldCallID, v))
}

// CallIDIn applies the In predicate on the "call_id" field.
func CallIDIn(vs ...string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIn(FieldCallID, vs...))
}

// CallIDNotIn applies the NotIn predicate on the "call_id" field.
func CallIDNotIn(vs ...string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotIn(FieldCallID, vs...))
}

// CallIDGT applies the GT predicate on the "call_id" field.
func CallIDGT(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGT(FieldCallID, v))
}

// CallIDGTE applies the GTE predicate on the "call_id" field.
func CallIDGTE(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGTE(FieldCallID, v))
}

// CallIDLT applies the LT predicate on the "call_id" field.
func CallIDLT(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLT(FieldCallID, v))
}

// CallIDLTE applies the LTE predicate on the "call_id" field.
func CallIDLTE(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLTE(FieldCallID, v))
}

// CallIDContains applies the Contains predicate on the "call_id" field.
func CallIDContains(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldContains(FieldCallID, v))
}

// CallIDHasPrefix applies the HasPrefix predicate on the "call_id" field.
func CallIDHasPrefix(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldHasPrefix(FieldCallID, v))
}

// CallIDHasSuffix applies the HasSuffix predicate on the "call_id" field.
func CallIDHasSuffix(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldHasSuffix(FieldCallID, v))
}

// CallIDEqualFold applies the EqualFold predicate on the "call_id" field.
func CallIDEqualFold(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEqualFold(FieldCallID, v))
}

// CallIDContainsFold applies the ContainsFold predicate on the "call_id" field.
func CallIDContainsFold(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldContainsFold(FieldCallID, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLTE(FieldOverallScore, v))
}

// ComplianceStatusEQ applies the EQ predicate on the "compliance_status" field.
func ComplianceStatusEQ(v ComplianceStatus) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldComplianceStatus, v))
}

// ComplianceStatusNEQ applies the NEQ predicate on the "compliance_status" field.
func ComplianceStatusNEQ(v ComplianceStatus) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldComplianceStatus, v))
}

// ComplianceStatusIn applies the In predicate on the "compliance_status" field.
func ComplianceStatusIn(vs ...ComplianceStatus) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIn(FieldComplianceStatus, vs...))
}

// ComplianceStatusNotIn applies the NotIn predicate on the "compliance_status" field.
func ComplianceStatusNotIn(vs ...ComplianceStatus) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotIn(FieldComplianceStatus, vs...))
}

// ScriptAdherenceEQ applies the EQ predicate on the "script_adherence" field.
func ScriptAdherenceEQ(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldScriptAdherence, v))
}

// ScriptAdherenceNEQ applies the NEQ predicate on the "script_adherence" field.
func ScriptAdherenceNEQ(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldScriptAdherence, v))
}

// ScriptAdherenceIn applies the In predicate on the "script_adherence" field.
func ScriptAdherenceIn(vs ...int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIn(FieldScriptAdherence, vs...))
}

// ScriptAdherenceNotIn applies the NotIn predicate on the "script_adherence" field.
func ScriptAdherenceNotIn(vs ...int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotIn(FieldScriptAdherence, vs...))
}

// ScriptAdherenceGT applies the GT predicate on the "script_adherence" field.
func ScriptAdherenceGT(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGT(FieldScriptAdherence, v))
}

// ScriptAdherenceGTE applies the GTE predicate on the "script_adherence" field.
func ScriptAdherenceGTE(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGTE(FieldScriptAdherence, v))
}

// ScriptAdherenceLT applies the LT predicate on the "script_adherence" field.
func ScriptAdherenceLT(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLT(FieldScriptAdherence, v))
}

// ScriptAdherenceLTE applies the LTE predicate on the "script_adherence" field.
func ScriptAdherenceLTE(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLTE(FieldScriptAdherence, v))
}

// CustomerServiceEQ applies the EQ predicate on the "customer_service" field.
func CustomerServiceEQ(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldCustomerService, v))
}

// CustomerServiceNEQ applies the NEQ predicate on the "customer_service" field.
func CustomerServiceNEQ(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldCustomerService, v))
}

// CustomerServiceIn applies the In predicate on the "customer_service" field.
func CustomerServiceIn(vs ...int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIn(FieldCustomerService, vs...))
}

// CustomerServiceNotIn applies the NotIn predicate on the "customer_service" field.
func CustomerServiceNotIn(vs ...int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotIn(FieldCustomerService, vs...))
}

// CustomerServiceGT applies the GT predicate on the "customer_service" field.
func CustomerServiceGT(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGT(FieldCustomerService, v))
}

// CustomerServiceGTE applies the GTE predicate on the "customer_service" field.
func CustomerServiceGTE(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGTE(FieldCustomerService, v))
}

// CustomerServiceLT applies the LT predicate on the "customer_service" field.
func CustomerServiceLT(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLT(FieldCustomerService, v))
}

// CustomerServiceLTE applies the LTE predicate on the "customer_service" field.
func CustomerServiceLTE(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLTE(FieldCustomerService, v))
}

// ResolutionEffectivenessEQ applies the EQ predicate on the "resolution_effectiveness" field.
func ResolutionEffectivenessEQ(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldResolutionEffectiveness, v))
}

// ResolutionEffectivenessNEQ applies the NEQ predicate on the "resolution_effectiveness" field.
func ResolutionEffectivenessNEQ(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldResolutionEffectiveness, v))
}

// ResolutionEffectivenessIn applies the In predicate on the "resolution_effectiveness" field.
func ResolutionEffectivenessIn(vs ...int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIn(FieldResolutionEffectiveness, vs...))
}

// ResolutionEffectivenessNotIn applies the NotIn predicate on the "resolution_effectiveness" field.
func ResolutionEffectivenessNotIn(vs ...int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotIn(FieldResolutionEffectiveness, vs...))
}

// ResolutionEffectivenessGT applies the GT predicate on the "resolution_effectiveness" field.
func ResolutionEffectivenessGT(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGT(FieldResolutionEffectiveness, v))
}

// ResolutionEffectivenessGTE applies the GTE predicate on the "resolution_effectiveness" field.
func ResolutionEffectivenessGTE(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGTE(FieldResolutionEffectiveness, v))
}

// ResolutionEffectivenessLT applies the LT predicate on the "resolution_effectiveness" field.
func ResolutionEffectivenessLT(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLT(FieldResolutionEffectiveness, v))
}

// ResolutionEffectivenessLTE applies the LTE predicate on the "resolution_effectiveness" field.
func ResolutionEffectivenessLTE(v int) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLTE(FieldResolutionEffectiveness, v))
}

// FlagsForReviewEQ applies the EQ predicate on the "flags_for_review" field.
func FlagsForReviewEQ(v bool) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldFlagsForReview, v))
}

// FlagsForReviewNEQ applies the NEQ predicate on the "flags_for_review" field.
func FlagsForReviewNEQ(v bool) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldFlagsForReview, v))
}

// ReviewReasonEQ applies the EQ predicate on the "review_reason" field.
func ReviewReasonEQ(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldReviewReason, v))
}

// ReviewReasonNEQ applies the NEQ predicate on the "review_reason" field.
func ReviewReasonNEQ(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldReviewReason, v))
}

// ReviewReasonIn applies the In predicate on the "review_reason" field.
func ReviewReasonIn(vs ...string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIn(FieldReviewReason, vs...))
}

// ReviewReasonNotIn applies the NotIn predicate on the "review_reason" field.
func ReviewReasonNotIn(vs ...string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotIn(FieldReviewReason, vs...))
}

// ReviewReasonGT applies the GT predicate on the "review_reason" field.
func ReviewReasonGT(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGT(FieldReviewReason, v))
}

// ReviewReasonGTE applies the GTE predicate on the "review_reason" field.
func ReviewReasonGTE(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGTE(FieldReviewReason, v))
}

// ReviewReasonLT applies the LT predicate on the "review_reason" field.
func ReviewReasonLT(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLT(FieldReviewReason, v))
}

// ReviewReasonLTE applies the LTE predicate on the "review_reason" field.
func ReviewReasonLTE(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLTE(FieldReviewReason, v))
}

// ReviewReasonContains applies the Contains predicate on the "review_reason" field.
func ReviewReasonContains(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldContains(FieldReviewReason, v))
}

// ReviewReasonHasPrefix applies the HasPrefix predicate on the "review_reason" field.
func ReviewReasonHasPrefix(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldHasPrefix(FieldReviewReason, v))
}

// ReviewReasonHasSuffix applies the HasSuffix predicate on the "review_reason" field.
func ReviewReasonHasSuffix(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldHasSuffix(FieldReviewReason, v))
}

// ReviewReasonIsNil applies the IsNil predicate on the "review_reason" field.
func ReviewReasonIsNil() predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIsNull(FieldReviewReason))
}

// ReviewReasonNotNil applies the NotNil predicate on the "review_reason" field.
func ReviewReasonNotNil() predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotNull(FieldReviewReason))
}

// ReviewReasonEqualFold applies the EqualFold predicate on the "review_reason" field.
func ReviewReasonEqualFold(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEqualFold(FieldReviewReason, v))
}

// ReviewReasonContainsFold applies the ContainsFold predicate on the "review_reason" field.
func ReviewReasonContainsFold(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldContainsFold(FieldReviewReason, v))
}

// ProcessingTimeMsEQ applies the EQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsEQ(v int64) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsNEQ applies the NEQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsNEQ(v int64) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIn applies the In predicate on the "processing_time_ms" field.
func ProcessingTimeMsIn(vs ...int64) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsNotIn applies the NotIn predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotIn(vs ...int64) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsGT applies the GT predicate on the "processing_time_ms" field.
func ProcessingTimeMsGT(v int64) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsGTE applies the GTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsGTE(v int64) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLT applies the LT predicate on the "processing_time_ms" field.
func ProcessingTimeMsLT(v int64) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLTE applies the LTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsLTE(v int64) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLTE(FieldProcessingTimeMs, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldContainsFold(FieldEventID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AuditResult {
	return predicate.AuditResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasViolations applies the HasEdge predicate on the "violations" edge.
func HasViolations() predicate.AuditResult {
	return predicate.AuditResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ViolationsTable, ViolationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasViolationsWith applies the HasEdge predicate on the "violations" edge with a given conditions (other predicates).
func HasViolationsWith(preds ...predicate.ComplianceViolation) predicate.AuditResult {
	return predicate.AuditResult(func(s *sql.Selector) {
		step := newViolationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditResult) predicate.AuditResult {
	return predicate.AuditResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditResult) predicate.AuditResult {
	return predicate.AuditResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditResult) predicate.AuditResult {
	return predicate.AuditResult(sql.NotPredicates(p))
}
