// Code generated by ent, DO NOT EDIT.

package transcription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the transcription type in the database.
	Label = "transcription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "transcription_id"
	// FieldCallID holds the string denoting the call_id field in the database.
	FieldCallID = "call_id"
	// FieldFullText holds the string denoting the full_text field in the database.
	FieldFullText = "full_text"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSegments holds the string denoting the segments edge name in mutations.
	EdgeSegments = "segments"
	// TranscriptSegmentFieldID holds the string denoting the ID field of the TranscriptSegment.
	TranscriptSegmentFieldID = "segment_id"
	// Table holds the table name of the transcription in the database.
	Table = "transcriptions"
	// SegmentsTable is the table that holds the segments relation/edge.
	SegmentsTable = "transcript_segments"
	// SegmentsInverseTable is the table name for the TranscriptSegment entity.
	// It exists in this package in order to avoid circular dependency with the "transcriptsegment" package.
	SegmentsInverseTable = "transcript_segments"
	// SegmentsColumn is the table column denoting the segments relation/edge.
	SegmentsColumn = "transcription_id"
)

// Columns holds all SQL columns for transcription fields.
var Columns = []string{
	FieldID,
	FieldCallID,
	FieldFullText,
	FieldLanguage,
	FieldConfidence,
	FieldWordCount,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Transcription queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCallID orders the results by the call_id field.
func ByCallID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallID, opts...).ToFunc()
}

// ByFullText orders the results by the full_text field.
func ByFullText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullText, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySegmentsCount orders the results by segments count.
func BySegmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSegmentsStep(), opts...)
	}
}

// BySegments orders the results by segments terms.
func BySegments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSegmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSegmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SegmentsInverseTable, TranscriptSegmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SegmentsTable, SegmentsColumn),
	)
}
