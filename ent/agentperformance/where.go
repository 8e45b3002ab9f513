// Code generated by ent, DO NOT EDIT.

package agentperformance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAgentID, v))
}

// TimeSlot applies equality check predicate on the "time_slot" field. It's identical to TimeSlotEQ.
func TimeSlot(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldTimeSlot, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldCount, v))
}

// AvgQuality applies equality check predicate on the "avg_quality" field. It's identical to AvgQualityEQ.
func AvgQuality(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgQuality, v))
}

// AvgSentiment applies equality check predicate on the "avg_sentiment" field. It's identical to AvgSentimentEQ.
func AvgSentiment(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgSentiment, v))
}

// AvgSatisfaction applies equality check predicate on the "avg_satisfaction" field. It's identical to AvgSatisfactionEQ.
func AvgSatisfaction(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgSatisfaction, v))
}

// AvgCompliancePassRate applies equality check predicate on the "avg_compliance_pass_rate" field. It's identical to AvgCompliancePassRateEQ.
func AvgCompliancePassRate(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgCompliancePassRate, v))
}

// AvgChurnRisk applies equality check predicate on the "avg_churn_risk" field. It's identical to AvgChurnRiskEQ.
func AvgChurnRisk(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgChurnRisk, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContainsFold(FieldAgentID, v))
}

// TimeSlotEQ applies the EQ predicate on the "time_slot" field.
func TimeSlotEQ(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldTimeSlot, v))
}

// TimeSlotNEQ applies the NEQ predicate on the "time_slot" field.
func TimeSlotNEQ(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldTimeSlot, v))
}

// TimeSlotIn applies the In predicate on the "time_slot" field.
func TimeSlotIn(vs ...time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldTimeSlot, vs...))
}

// TimeSlotNotIn applies the NotIn predicate on the "time_slot" field.
func TimeSlotNotIn(vs ...time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldTimeSlot, vs...))
}

// TimeSlotGT applies the GT predicate on the "time_slot" field.
func TimeSlotGT(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldTimeSlot, v))
}

// TimeSlotGTE applies the GTE predicate on the "time_slot" field.
func TimeSlotGTE(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldTimeSlot, v))
}

// TimeSlotLT applies the LT predicate on the "time_slot" field.
func TimeSlotLT(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldTimeSlot, v))
}

// TimeSlotLTE applies the LTE predicate on the "time_slot" field.
func TimeSlotLTE(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldTimeSlot, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldCount, v))
}

// AvgQualityEQ applies the EQ predicate on the "avg_quality" field.
func AvgQualityEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgQuality, v))
}

// AvgQualityNEQ applies the NEQ predicate on the "avg_quality" field.
func AvgQualityNEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldAvgQuality, v))
}

// AvgQualityIn applies the In predicate on the "avg_quality" field.
func AvgQualityIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldAvgQuality, vs...))
}

// AvgQualityNotIn applies the NotIn predicate on the "avg_quality" field.
func AvgQualityNotIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldAvgQuality, vs...))
}

// AvgQualityGT applies the GT predicate on the "avg_quality" field.
func AvgQualityGT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldAvgQuality, v))
}

// AvgQualityGTE applies the GTE predicate on the "avg_quality" field.
func AvgQualityGTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldAvgQuality, v))
}

// AvgQualityLT applies the LT predicate on the "avg_quality" field.
func AvgQualityLT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldAvgQuality, v))
}

// AvgQualityLTE applies the LTE predicate on the "avg_quality" field.
func AvgQualityLTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldAvgQuality, v))
}

// AvgQualityIsNil applies the IsNil predicate on the "avg_quality" field.
func AvgQualityIsNil() predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIsNull(FieldAvgQuality))
}

// AvgQualityNotNil applies the NotNil predicate on the "avg_quality" field.
func AvgQualityNotNil() predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotNull(FieldAvgQuality))
}

// AvgSentimentEQ applies the EQ predicate on the "avg_sentiment" field.
func AvgSentimentEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgSentiment, v))
}

// AvgSentimentNEQ applies the NEQ predicate on the "avg_sentiment" field.
func AvgSentimentNEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldAvgSentiment, v))
}

// AvgSentimentIn applies the In predicate on the "avg_sentiment" field.
func AvgSentimentIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldAvgSentiment, vs...))
}

// AvgSentimentNotIn applies the NotIn predicate on the "avg_sentiment" field.
func AvgSentimentNotIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldAvgSentiment, vs...))
}

// AvgSentimentGT applies the GT predicate on the "avg_sentiment" field.
func AvgSentimentGT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldAvgSentiment, v))
}

// AvgSentimentGTE applies the GTE predicate on the "avg_sentiment" field.
func AvgSentimentGTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldAvgSentiment, v))
}

// AvgSentimentLT applies the LT predicate on the "avg_sentiment" field.
func AvgSentimentLT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldAvgSentiment, v))
}

// AvgSentimentLTE applies the LTE predicate on the "avg_sentiment" field.
func AvgSentimentLTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldAvgSentiment, v))
}

// AvgSentimentIsNil applies the IsNil predicate on the "avg_sentiment" field.
func AvgSentimentIsNil() predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIsNull(FieldAvgSentiment))
}

// AvgSentimentNotNil applies the NotNil predicate on the "avg_sentiment" field.
func AvgSentimentNotNil() predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotNull(FieldAvgSentiment))
}

// AvgSatisfactionEQ applies the EQ predicate on the "avg_satisfaction" field.
func AvgSatisfactionEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgSatisfaction, v))
}

// AvgSatisfactionNEQ applies the NEQ predicate on the "avg_satisfaction" field.
func AvgSatisfactionNEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldAvgSatisfaction, v))
}

// AvgSatisfactionIn applies the In predicate on the "avg_satisfaction" field.
func AvgSatisfactionIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldAvgSatisfaction, vs...))
}

// AvgSatisfactionNotIn applies the NotIn predicate on the "avg_satisfaction" field.
func AvgSatisfactionNotIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldAvgSatisfaction, vs...))
}

// AvgSatisfactionGT applies the GT predicate on the "avg_satisfaction" field.
func AvgSatisfactionGT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldAvgSatisfaction, v))
}

// AvgSatisfactionGTE applies the GTE predicate on the "avg_satisfaction" field.
func AvgSatisfactionGTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldAvgSatisfaction, v))
}

// AvgSatisfactionLT applies the LT predicate on the "avg_satisfaction" field.
func AvgSatisfactionLT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldAvgSatisfaction, v))
}

// AvgSatisfactionLTE applies the LTE predicate on the "avg_satisfaction" field.
func AvgSatisfactionLTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldAvgSatisfaction, v))
}

// AvgSatisfactionIsNil applies the IsNil predicate on the "avg_satisfaction" field.
func AvgSatisfactionIsNil() predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIsNull(FieldAvgSatisfaction))
}

// AvgSatisfactionNotNil applies the NotNil predicate on the "avg_satisfaction" field.
func AvgSatisfactionNotNil() predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotNull(FieldAvgSatisfaction))
}

// AvgCompliancePassRateEQ applies the EQ predicate on the "avg_compliance_pass_rate" field.
func AvgCompliancePassRateEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgCompliancePassRate, v))
}

// AvgCompliancePassRateNEQ applies the NEQ predicate on the "avg_compliance_pass_rate" field.
func AvgCompliancePassRateNEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldAvgCompliancePassRate, v))
}

// AvgCompliancePassRateIn applies the In predicate on the "avg_compliance_pass_rate" field.
func AvgCompliancePassRateIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldAvgCompliancePassRate, vs...))
}

// AvgCompliancePassRateNotIn applies the NotIn predicate on the "avg_compliance_pass_rate" field.
func AvgCompliancePassRateNotIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldAvgCompliancePassRate, vs...))
}

// AvgCompliancePassRateGT applies the GT predicate on the "avg_compliance_pass_rate" field.
func AvgCompliancePassRateGT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldAvgCompliancePassRate, v))
}

// AvgCompliancePassRateGTE applies the GTE predicate on the "avg_compliance_pass_rate" field.
func AvgCompliancePassRateGTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldAvgCompliancePassRate, v))
}

// AvgCompliancePassRateLT applies the LT predicate on the "avg_compliance_pass_rate" field.
func AvgCompliancePassRateLT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldAvgCompliancePassRate, v))
}

// AvgCompliancePassRateLTE applies the LTE predicate on the "avg_compliance_pass_rate" field.
func AvgCompliancePassRateLTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldAvgCompliancePassRate, v))
}

// AvgCompliancePassRateIsNil applies the IsNil predicate on the "avg_compliance_pass_rate" field.
func AvgCompliancePassRateIsNil() predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIsNull(FieldAvgCompliancePassRate))
}

// AvgCompliancePassRateNotNil applies the NotNil predicate on the "avg_compliance_pass_rate" field.
func AvgCompliancePassRateNotNil() predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotNull(FieldAvgCompliancePassRate))
}

// AvgChurnRiskEQ applies the EQ predicate on the "avg_churn_risk" field.
func AvgChurnRiskEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgChurnRisk, v))
}

// AvgChurnRiskNEQ applies the NEQ predicate on the "avg_churn_risk" field.
func AvgChurnRiskNEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldAvgChurnRisk, v))
}

// AvgChurnRiskIn applies the In predicate on the "avg_churn_risk" field.
func AvgChurnRiskIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldAvgChurnRisk, vs...))
}

// AvgChurnRiskNotIn applies the NotIn predicate on the "avg_churn_risk" field.
func AvgChurnRiskNotIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldAvgChurnRisk, vs...))
}

// AvgChurnRiskGT applies the GT predicate on the "avg_churn_risk" field.
func AvgChurnRiskGT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldAvgChurnRisk, v))
}

// AvgChurnRiskGTE applies the GTE predicate on the "avg_churn_risk" field.
func AvgChurnRiskGTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldAvgChurnRisk, v))
}

// AvgChurnRiskLT applies the LT predicate on the "avg_churn_risk" field.
func AvgChurnRiskLT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldAvgChurnRisk, v))
}

// AvgChurnRiskLTE applies the LTE predicate on the "avg_churn_risk" field.
func AvgChurnRiskLTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldAvgChurnRisk, v))
}

// AvgChurnRiskIsNil applies the IsNil predicate on the "avg_churn_risk" field.
func AvgChurnRiskIsNil() predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIsNull(FieldAvgChurnRisk))
}

// AvgChurnRiskNotNil applies the NotNil predicate on the "avg_churn_risk" field.
func AvgChurnRiskNotNil() predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotNull(FieldAvgChurnRisk))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentPerformance) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentPerformance) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentPerformance) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.NotPredicates(p))
}
