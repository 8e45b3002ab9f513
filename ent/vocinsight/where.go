// Code generated by ent, DO NOT EDIT.

package vocinsight

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldContainsFold(FieldID, id))
}

// CallID applies equality check predicate on the "call_id" field. It's identical to CallIDEQ.
func CallID(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldCallID, v))
}

// PredictedChurnRisk applies equality check predicate on the "predicted_churn_risk" field. It's identical to PredictedChurnRiskEQ.
func PredictedChurnRisk(v float64) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldPredictedChurnRisk, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldSummary, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldEventID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldCreatedAt, v))
}

// CallIDEQ applies the EQ predicate on the "call_id" field.
func CallIDEQ(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldCallID, v))
}

// CallIDNEQ applies the NEQ predicate on the "call_id" field.
func CallIDNEQ(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNEQ(FieldCallID, v))
}

// CallIDIn applies the In predicate on the "call_id" field.
func CallIDIn(vs ...string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldIn(FieldCallID, vs...))
}

// CallIDNotIn applies the NotIn predicate on the "call_id" field.
func CallIDNotIn(vs ...string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNotIn(FieldCallID, vs...))
}

// CallIDGT applies the GT predicate on the "call_id" field.
func CallIDGT(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGT(FieldCallID, v))
}

// CallIDGTE applies the GTE predicate on the "call_id" field.
func CallIDGTE(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGTE(FieldCallID, v))
}

// CallIDLT applies the LT predicate on the "call_id" field.
func CallIDLT(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLT(FieldCallID, v))
}

// CallIDLTE applies the LTE predicate on the "call_id" field.
func CallIDLTE(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLTE(FieldCallID, v))
}

// CallIDContains applies the Contains predicate on the "call_id" field.
func CallIDContains(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldContains(FieldCallID, v))
}

// CallIDHasPrefix applies the HasPrefix predicate on the "call_id" field.
func CallIDHasPrefix(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldHasPrefix(FieldCallID, v))
}

// CallIDHasSuffix applies the HasSuffix predicate on the "call_id" field.
func CallIDHasSuffix(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldHasSuffix(FieldCallID, v))
}

// CallIDEqualFold applies the EqualFold predicate on the "call_id" field.
func CallIDEqualFold(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEqualFold(FieldCallID, v))
}

// CallIDContainsFold applies the ContainsFold predicate on the "call_id" field.
func CallIDContainsFold(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldContainsFold(FieldCallID, v))
}

// PrimaryIntentEQ applies the EQ predicate on the "primary_intent" field.
func PrimaryIntentEQ(v PrimaryIntent) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldPrimaryIntent, v))
}

// PrimaryIntentNEQ applies the NEQ predicate on the "primary_intent" field.
func PrimaryIntentNEQ(v PrimaryIntent) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNEQ(FieldPrimaryIntent, v))
}

// PrimaryIntentIn applies the In predicate on the "primary_intent" field.
func PrimaryIntentIn(vs ...PrimaryIntent) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldIn(FieldPrimaryIntent, vs...))
}

// PrimaryIntentNotIn applies the NotIn predicate on the "primary_intent" field.
func PrimaryIntentNotIn(vs ...PrimaryIntent) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNotIn(FieldPrimaryIntent, vs...))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.VocInsight {
	return predicate.VocInsight(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNotNull(FieldTopics))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.VocInsight {
	return predicate.VocInsight(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNotNull(FieldKeywords))
}

// CustomerSatisfactionEQ applies the EQ predicate on the "customer_satisfaction" field.
func CustomerSatisfactionEQ(v CustomerSatisfaction) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldCustomerSatisfaction, v))
}

// CustomerSatisfactionNEQ applies the NEQ predicate on the "customer_satisfaction" field.
func CustomerSatisfactionNEQ(v CustomerSatisfaction) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNEQ(FieldCustomerSatisfaction, v))
}

// CustomerSatisfactionIn applies the In predicate on the "customer_satisfaction" field.
func CustomerSatisfactionIn(vs ...CustomerSatisfaction) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldIn(FieldCustomerSatisfaction, vs...))
}

// CustomerSatisfactionNotIn applies the NotIn predicate on the "customer_satisfaction" field.
func CustomerSatisfactionNotIn(vs ...CustomerSatisfaction) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNotIn(FieldCustomerSatisfaction, vs...))
}

// PredictedChurnRiskEQ applies the EQ predicate on the "predicted_churn_risk" field.
func PredictedChurnRiskEQ(v float64) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldPredictedChurnRisk, v))
}

// PredictedChurnRiskNEQ applies the NEQ predicate on the "predicted_churn_risk" field.
func PredictedChurnRiskNEQ(v float64) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNEQ(FieldPredictedChurnRisk, v))
}

// PredictedChurnRiskIn applies the In predicate on the "predicted_churn_risk" field.
func PredictedChurnRiskIn(vs ...float64) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldIn(FieldPredictedChurnRisk, vs...))
}

// PredictedChurnRiskNotIn applies the NotIn predicate on the "predicted_churn_risk" field.
func PredictedChurnRiskNotIn(vs ...float64) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNotIn(FieldPredictedChurnRisk, vs...))
}

// PredictedChurnRiskGT applies the GT predicate on the "predicted_churn_risk" field.
func PredictedChurnRiskGT(v float64) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGT(FieldPredictedChurnRisk, v))
}

// PredictedChurnRiskGTE applies the GTE predicate on the "predicted_churn_risk" field.
func PredictedChurnRiskGTE(v float64) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGTE(FieldPredictedChurnRisk, v))
}

// PredictedChurnRiskLT applies the LT predicate on the "predicted_churn_risk" field.
func PredictedChurnRiskLT(v float64) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLT(FieldPredictedChurnRisk, v))
}

// PredictedChurnRiskLTE applies the LTE predicate on the "predicted_churn_risk" field.
func PredictedChurnRiskLTE(v float64) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLTE(FieldPredictedChurnRisk, v))
}

// ActionableItemsIsNil applies the IsNil predicate on the "actionable_items" field.
func ActionableItemsIsNil() predicate.VocInsight {
	return predicate.VocInsight(sql.FieldIsNull(FieldActionableItems))
}

// ActionableItemsNotNil applies the NotNil predicate on the "actionable_items" field.
func ActionableItemsNotNil() predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNotNull(FieldActionableItems))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldContainsFold(FieldSummary, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldContainsFold(FieldEventID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VocInsight {
	return predicate.VocInsight(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VocInsight) predicate.VocInsight {
	return predicate.VocInsight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VocInsight) predicate.VocInsight {
	return predicate.VocInsight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VocInsight) predicate.VocInsight {
	return predicate.VocInsight(sql.NotPredicates(p))
}
