// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/transcription"
	"github.com/callsight/callsight/ent/transcriptsegment"
)

// TranscriptSegment is the model entity for the TranscriptSegment schema.
type TranscriptSegment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TranscriptionID holds the value of the "transcription_id" field.
	TranscriptionID string `json:"transcription_id,omitempty"`
	// Zero-based order within the transcription
	Position int `json:"position,omitempty"`
	// Speaker holds the value of the "speaker" field.
	Speaker transcriptsegment.Speaker `json:"speaker,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime float64 `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime float64 `json:"end_time,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptSegmentQuery when eager-loading is set.
	Edges        TranscriptSegmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranscriptSegmentEdges holds the relations/edges for other nodes in the graph.
type TranscriptSegmentEdges struct {
	// Transcription holds the value of the transcription edge.
	Transcription *Transcription `json:"transcription,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TranscriptionOrErr returns the Transcription value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TranscriptSegmentEdges) TranscriptionOrErr() (*Transcription, error) {
	if e.Transcription != nil {
		return e.Transcription, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: transcription.Label}
	}
	return nil, &NotLoadedError{edge: "transcription"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TranscriptSegment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcriptsegment.FieldStartTime, transcriptsegment.FieldEndTime, transcriptsegment.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case transcriptsegment.FieldPosition:
			values[i] = new(sql.NullInt64)
		case transcriptsegment.FieldID, transcriptsegment.FieldTranscriptionID, transcriptsegment.FieldSpeaker, transcriptsegment.FieldText:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TranscriptSegment fields.
func (_m *TranscriptSegment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcriptsegment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case transcriptsegment.FieldTranscriptionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcription_id", values[i])
			} else if value.Valid {
				_m.TranscriptionID = value.String
			}
		case transcriptsegment.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case transcriptsegment.FieldSpeaker:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field speaker", values[i])
			} else if value.Valid {
				_m.Speaker = transcriptsegment.Speaker(value.String)
			}
		case transcriptsegment.FieldStartTime:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Float64
			}
		case transcriptsegment.FieldEndTime:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Float64
			}
		case transcriptsegment.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case transcriptsegment.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TranscriptSegment.
// This includes values selected through modifiers, order, etc.
func (_m *TranscriptSegment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTranscription queries the "transcription" edge of the TranscriptSegment entity.
func (_m *TranscriptSegment) QueryTranscription() *TranscriptionQuery {
	return NewTranscriptSegmentClient(_m.config).QueryTranscription(_m)
}

// Update returns a builder for updating this TranscriptSegment.
// Note that you need to call TranscriptSegment.Unwrap() before calling this method if this TranscriptSegment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TranscriptSegment) Update() *TranscriptSegmentUpdateOne {
	return NewTranscriptSegmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TranscriptSegment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TranscriptSegment) Unwrap() *TranscriptSegment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TranscriptSegment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TranscriptSegment) String() string {
	var builder strings.Builder
	builder.WriteString("TranscriptSegment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("transcription_id=")
	builder.WriteString(_m.TranscriptionID)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("speaker=")
	builder.WriteString(fmt.Sprintf("%v", _m.Speaker))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartTime))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndTime))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TranscriptSegments is a parsable slice of TranscriptSegment.
type TranscriptSegments []*TranscriptSegment
