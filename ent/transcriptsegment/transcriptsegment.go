// Code generated by ent, DO NOT EDIT.

package transcriptsegment

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the transcriptsegment type in the database.
	Label = "transcript_segment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "segment_id"
	// FieldTranscriptionID holds the string denoting the transcription_id field in the database.
	FieldTranscriptionID = "transcription_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldSpeaker holds the string denoting the speaker field in the database.
	FieldSpeaker = "speaker"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// EdgeTranscription holds the string denoting the transcription edge name in mutations.
	EdgeTranscription = "transcription"
	// TranscriptionFieldID holds the string denoting the ID field of the Transcription.
	TranscriptionFieldID = "transcription_id"
	// Table holds the table name of the transcriptsegment in the database.
	Table = "transcript_segments"
	// TranscriptionTable is the table that holds the transcription relation/edge.
	TranscriptionTable = "transcript_segments"
	// TranscriptionInverseTable is the table name for the Transcription entity.
	// It exists in this package in order to avoid circular dependency with the "transcription" package.
	TranscriptionInverseTable = "transcriptions"
	// TranscriptionColumn is the table column denoting the transcription relation/edge.
	TranscriptionColumn = "transcription_id"
)

// Columns holds all SQL columns for transcriptsegment fields.
var Columns = []string{
	FieldID,
	FieldTranscriptionID,
	FieldPosition,
	FieldSpeaker,
	FieldStartTime,
	FieldEndTime,
	FieldText,
	FieldConfidence,
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

// Speaker defines the type for the "speaker" enum field.
type Speaker string

// Speaker values.
const (
	SpeakerAgent    Speaker = "agent"
	SpeakerCustomer Speaker = "customer"
	SpeakerUnknown  Speaker = "unknown"
)

func (s Speaker) String() string {
	return string(s)
}

// SpeakerValidator is a validator for the "speaker" field enum values. It is called by the builders before save.
func SpeakerValidator(s Speaker) error {
	switch s {
	case SpeakerAgent, SpeakerCustomer, SpeakerUnknown:
		return nil
	default:
		return fmt.Errorf("transcriptsegment: invalid enum value for speaker field: %q", s)
	}
}

// OrderOption defines the ordering options for the TranscriptSegment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTranscriptionID orders the results by the transcription_id field.
func ByTranscriptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptionID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// BySpeaker orders the results by the speaker field.
func BySpeaker(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeaker, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTranscriptionField orders the results by transcription field.
func ByTranscriptionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTranscriptionStep(), sql.OrderByField(field, opts...))
	}
}
func newTranscriptionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranscriptionInverseTable, TranscriptionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TranscriptionTable, TranscriptionColumn),
	)
}
