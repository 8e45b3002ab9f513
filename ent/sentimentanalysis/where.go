// Code generated by ent, DO NOT EDIT.

package sentimentanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldContainsFold(FieldID, id))
}

// CallID applies equality check predicate on the "call_id" field. It's identical to CallIDEQ.
func CallID(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldCallID, v))
}

// SentimentScore applies equality check predicate on the "sentiment_score" field. It's identical to SentimentScoreEQ.
func SentimentScore(v float64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldSentimentScore, v))
}

// EscalationDetected applies equality check predicate on the "escalation_detected" field. It's identical to EscalationDetectedEQ.
func EscalationDetected(v bool) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldEscalationDetected, v))
}

// ProcessingTimeMs applies equality check predicate on the "processing_time_ms" field. It's identical to ProcessingTimeMsEQ.
func ProcessingTimeMs(v int64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldEventID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CallIDEQ applies the EQ predicate on the "call_id" field.
func CallIDEQ(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldCallID, v))
}

// CallIDNEQ applies the NEQ predicate on the "call_id" field.
func CallIDNEQ(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNEQ(FieldCallID, v))
}

// CallIDIn applies the In predicate on the "call_id" field.
func CallIDIn(vs ...string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldIn(FieldCallID, vs...))
}

// CallIDNotIn applies the NotIn predicate on the "call_id" field.
func CallIDNotIn(vs ...string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNotIn(FieldCallID, vs...))
}

// CallIDGT applies the GT predicate on the "call_id" field.
func CallIDGT(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGT(FieldCallID, v))
}

// CallIDGTE applies the GTE predicate on the "call_id" field.
func CallIDGTE(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGTE(FieldCallID, v))
}

// CallIDLT applies the LT predicate on the "call_id" field.
func CallIDLT(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLT(FieldCallID, v))
}

// CallIDLTE applies the LTE predicate on the "call_id" field.
func CallIDLTE(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLTE(FieldCallID, v))
}

// CallIDContains applies the Contains predicate on the "call_id" field.
func CallIDContains(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldContains(FieldCallID, v))
}

// CallIDHasPrefix applies the HasPrefix predicate on the "call_id" field.
func CallIDHasPrefix(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldHasPrefix(FieldCallID, v))
}

// CallIDHasSuffix applies the HasSuffix predicate on the "call_id" field.
func CallIDHasSuffix(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldHasSuffix(FieldCallID, v))
}

// CallIDEqualFold applies the EqualFold predicate on the "call_id" field.
func CallIDEqualFold(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEqualFold(FieldCallID, v))
}

// CallIDContainsFold applies the ContainsFold predicate on the "call_id" field.
func CallIDContainsFold(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldContainsFold(FieldCallID, v))
}

// OverallSentimentEQ applies the EQ predicate on the "overall_sentiment" field.
func OverallSentimentEQ(v OverallSentiment) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldOverallSentiment, v))
}

// OverallSentimentNEQ applies the NEQ predicate on the "overall_sentiment" field.
func OverallSentimentNEQ(v OverallSentiment) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNEQ(FieldOverallSentiment, v))
}

// OverallSentimentIn applies the In predicate on the "overall_sentiment" field.
func OverallSentimentIn(vs ...OverallSentiment) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldIn(FieldOverallSentiment, vs...))
}

// OverallSentimentNotIn applies the NotIn predicate on the "overall_sentiment" field.
func OverallSentimentNotIn(vs ...OverallSentiment) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNotIn(FieldOverallSentiment, vs...))
}

// SentimentScoreEQ applies the EQ predicate on the "sentiment_score" field.
func SentimentScoreEQ(v float64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldSentimentScore, v))
}

// SentimentScoreNEQ applies the NEQ predicate on the "sentiment_score" field.
func SentimentScoreNEQ(v float64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNEQ(FieldSentimentScore, v))
}

// SentimentScoreIn applies the In predicate on the "sentiment_score" field.
func SentimentScoreIn(vs ...float64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldIn(FieldSentimentScore, vs...))
}

// SentimentScoreNotIn applies the NotIn predicate on the "sentiment_score" field.
func SentimentScoreNotIn(vs ...float64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNotIn(FieldSentimentScore, vs...))
}

// SentimentScoreGT applies the GT predicate on the "sentiment_score" field.
func SentimentScoreGT(v float64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGT(FieldSentimentScore, v))
}

// SentimentScoreGTE applies the GTE predicate on the "sentiment_score" field.
func SentimentScoreGTE(v float64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGTE(FieldSentimentScore, v))
}

// SentimentScoreLT applies the LT predicate on the "sentiment_score" field.
func SentimentScoreLT(v float64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLT(FieldSentimentScore, v))
}

// SentimentScoreLTE applies the LTE predicate on the "sentiment_score" field.
func SentimentScoreLTE(v float64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLTE(FieldSentimentScore, v))
}

// EscalationDetectedEQ applies the EQ predicate on the "escalation_detected" field.
func EscalationDetectedEQ(v bool) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldEscalationDetected, v))
}

// EscalationDetectedNEQ applies the NEQ predicate on the "escalation_detected" field.
func EscalationDetectedNEQ(v bool) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNEQ(FieldEscalationDetected, v))
}

// EscalationDetailsIsNil applies the IsNil predicate on the "escalation_details" field.
func EscalationDetailsIsNil() predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldIsNull(FieldEscalationDetails))
}

// EscalationDetailsNotNil applies the NotNil predicate on the "escalation_details" field.
func EscalationDetailsNotNil() predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNotNull(FieldEscalationDetails))
}

// SegmentSentimentsIsNil applies the IsNil predicate on the "segment_sentiments" field.
func SegmentSentimentsIsNil() predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldIsNull(FieldSegmentSentiments))
}

// SegmentSentimentsNotNil applies the NotNil predicate on the "segment_sentiments" field.
func SegmentSentimentsNotNil() predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNotNull(FieldSegmentSentiments))
}

// ProcessingTimeMsEQ applies the EQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsEQ(v int64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsNEQ applies the NEQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsNEQ(v int64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIn applies the In predicate on the "processing_time_ms" field.
func ProcessingTimeMsIn(vs ...int64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsNotIn applies the NotIn predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotIn(vs ...int64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNotIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsGT applies the GT predicate on the "processing_time_ms" field.
func ProcessingTimeMsGT(v int64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsGTE applies the GTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsGTE(v int64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLT applies the LT predicate on the "processing_time_ms" field.
func ProcessingTimeMsLT(v int64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLTE applies the LTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsLTE(v int64) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLTE(FieldProcessingTimeMs, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldContainsFold(FieldEventID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SentimentAnalysis) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SentimentAnalysis) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SentimentAnalysis) predicate.SentimentAnalysis {
	return predicate.SentimentAnalysis(sql.NotPredicates(p))
}
