// Code generated by ent, DO NOT EDIT.

package transcription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callsight/callsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldID, id))
}

// CallID applies equality check predicate on the "call_id" field. It's identical to CallIDEQ.
func CallID(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldCallID, v))
}

// FullText applies equality check predicate on the "full_text" field. It's identical to FullTextEQ.
func FullText(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldFullText, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldLanguage, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldConfidence, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldWordCount, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldEventID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldCreatedAt, v))
}

// CallIDEQ applies the EQ predicate on the "call_id" field.
func CallIDEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldCallID, v))
}

// CallIDNEQ applies the NEQ predicate on the "call_id" field.
func CallIDNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldCallID, v))
}

// CallIDIn applies the In predicate on the "call_id" field.
func CallIDIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldCallID, vs...))
}

// CallIDNotIn applies the NotIn predicate on the "call_id" field.
func CallIDNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldCallID, vs...))
}

// CallIDGT applies the GT predicate on the "call_id" field.
func CallIDGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldCallID, v))
}

// CallIDGTE applies the GTE predicate on the "call_id" field.
func CallIDGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldCallID, v))
}

// CallIDLT applies the LT predicate on the "call_id" field.
func CallIDLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldCallID, v))
}

// CallIDLTE applies the LTE predicate on the "call_id" field.
func CallIDLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldCallID, v))
}

// CallIDContains applies the Contains predicate on the "call_id" field.
func CallIDContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldCallID, v))
}

// CallIDHasPrefix applies the HasPrefix predicate on the "call_id" field.
func CallIDHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldCallID, v))
}

// CallIDHasSuffix applies the HasSuffix predicate on the "call_id" field.
func CallIDHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldCallID, v))
}

// CallIDEqualFold applies the EqualFold predicate on the "call_id" field.
func CallIDEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldCallID, v))
}

// CallIDContainsFold applies the ContainsFold predicate on the "call_id" field.
func CallIDContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldCallID, v))
}

// FullTextEQ applies the EQ predicate on the "full_text" field.
func FullTextEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldFullText, v))
}

// FullTextNEQ applies the NEQ predicate on the "full_text" field.
func FullTextNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldFullText, v))
}

// FullTextIn applies the In predicate on the "full_text" field.
func FullTextIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldFullText, vs...))
}

// FullTextNotIn applies the NotIn predicate on the "full_text" field.
func FullTextNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldFullText, vs...))
}

// FullTextGT applies the GT predicate on the "full_text" field.
func FullTextGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldFullText, v))
}

// FullTextGTE applies the GTE predicate on the "full_text" field.
func FullTextGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldFullText, v))
}

// FullTextLT applies the LT predicate on the "full_text" field.
func FullTextLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldFullText, v))
}

// FullTextLTE applies the LTE predicate on the "full_text" field.
func FullTextLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldFullText, v))
}

// FullTextContains applies the Contains predicate on the "full_text" field.
func FullTextContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldFullText, v))
}

// FullTextHasPrefix applies the HasPrefix predicate on the "full_text" field.
func FullTextHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldFullText, v))
}

// FullTextHasSuffix applies the HasSuffix predicate on the "full_text" field.
func FullTextHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldFullText, v))
}

// FullTextEqualFold applies the EqualFold predicate on the "full_text" field.
func FullTextEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldFullText, v))
}

// FullTextContainsFold applies the ContainsFold predicate on the "full_text" field.
func FullTextContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldFullText, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldLanguage, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldConfidence, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldWordCount, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.Transcription {
	return predicate.Transcription(sql.FieldContainsFold(FieldEventID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transcription {
	return predicate.Transcription(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSegments applies the HasEdge predicate on the "segments" edge.
func HasSegments() predicate.Transcription {
	return predicate.Transcription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SegmentsTable, SegmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSegmentsWith applies the HasEdge predicate on the "segments" edge with a given conditions (other predicates).
func HasSegmentsWith(preds ...predicate.TranscriptSegment) predicate.Transcription {
	return predicate.Transcription(func(s *sql.Selector) {
		step := newSegmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transcription) predicate.Transcription {
	return predicate.Transcription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transcription) predicate.Transcription {
	return predicate.Transcription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transcription) predicate.Transcription {
	return predicate.Transcription(sql.NotPredicates(p))
}
