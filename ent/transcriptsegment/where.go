// Code generated by ent, DO NOT EDIT.

package transcriptsegment

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callsight/callsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContainsFold(FieldID, id))
}

// TranscriptionID applies equality check predicate on the "transcription_id" field. It's identical to TranscriptionIDEQ.
func TranscriptionID(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldTranscriptionID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldPosition, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldEndTime, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldText, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldConfidence, v))
}

// TranscriptionIDEQ applies the EQ predicate on the "transcription_id" field.
func TranscriptionIDEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldTranscriptionID, v))
}

// TranscriptionIDNEQ applies the NEQ predicate on the "transcription_id" field.
func TranscriptionIDNEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldTranscriptionID, v))
}

// TranscriptionIDIn applies the In predicate on the "transcription_id" field.
func TranscriptionIDIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldTranscriptionID, vs...))
}

// TranscriptionIDNotIn applies the NotIn predicate on the "transcription_id" field.
func TranscriptionIDNotIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldTranscriptionID, vs...))
}

// TranscriptionIDGT applies the GT predicate on the "transcription_id" field.
func TranscriptionIDGT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldTranscriptionID, v))
}

// TranscriptionIDGTE applies the GTE predicate on the "transcription_id" field.
func TranscriptionIDGTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldTranscriptionID, v))
}

// TranscriptionIDLT applies the LT predicate on the "transcription_id" field.
func TranscriptionIDLT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldTranscriptionID, v))
}

// TranscriptionIDLTE applies the LTE predicate on the "transcription_id" field.
func TranscriptionIDLTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldTranscriptionID, v))
}

// TranscriptionIDContains applies the Contains predicate on the "transcription_id" field.
func TranscriptionIDContains(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContains(FieldTranscriptionID, v))
}

// TranscriptionIDHasPrefix applies the HasPrefix predicate on the "transcription_id" field.
func TranscriptionIDHasPrefix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasPrefix(FieldTranscriptionID, v))
}

// TranscriptionIDHasSuffix applies the HasSuffix predicate on the "transcription_id" field.
func TranscriptionIDHasSuffix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasSuffix(FieldTranscriptionID, v))
}

// TranscriptionIDEqualFold applies the EqualFold predicate on the "transcription_id" field.
func TranscriptionIDEqualFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEqualFold(FieldTranscriptionID, v))
}

// TranscriptionIDContainsFold applies the ContainsFold predicate on the "transcription_id" field.
func TranscriptionIDContainsFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContainsFold(FieldTranscriptionID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldPosition, v))
}

// SpeakerEQ applies the EQ predicate on the "speaker" field.
func SpeakerEQ(v Speaker) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldSpeaker, v))
}

// SpeakerNEQ applies the NEQ predicate on the "speaker" field.
func SpeakerNEQ(v Speaker) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldSpeaker, v))
}

// SpeakerIn applies the In predicate on the "speaker" field.
func SpeakerIn(vs ...Speaker) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldSpeaker, vs...))
}

// SpeakerNotIn applies the NotIn predicate on the "speaker" field.
func SpeakerNotIn(vs ...Speaker) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldSpeaker, vs...))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldEndTime, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContainsFold(FieldText, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotNull(FieldConfidence))
}

// HasTranscription applies the HasEdge predicate on the "transcription" edge.
func HasTranscription() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TranscriptionTable, TranscriptionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptionWith applies the HasEdge predicate on the "transcription" edge with a given conditions (other predicates).
func HasTranscriptionWith(preds ...predicate.Transcription) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(func(s *sql.Selector) {
		step := newTranscriptionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TranscriptSegment) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TranscriptSegment) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TranscriptSegment) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.NotPredicates(p))
}
