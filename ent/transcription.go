// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/transcription"
)

// Transcription is the model entity for the Transcription schema.
type Transcription struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Once-per-call idempotency key
	CallID string `json:"call_id,omitempty"`
	// FullText holds the value of the "full_text" field.
	FullText string `json:"full_text,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// WordCount holds the value of the "word_count" field.
	WordCount int `json:"word_count,omitempty"`
	// Envelope eventId that produced this row
	EventID string `json:"event_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptionQuery when eager-loading is set.
	Edges        TranscriptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranscriptionEdges holds the relations/edges for other nodes in the graph.
type TranscriptionEdges struct {
	// Segments holds the value of the segments edge.
	Segments []*TranscriptSegment `json:"segments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SegmentsOrErr returns the Segments value or an error if the edge
// was not loaded in eager-loading.
func (e TranscriptionEdges) SegmentsOrErr() ([]*TranscriptSegment, error) {
	if e.loadedTypes[0] {
		return e.Segments, nil
	}
	return nil, &NotLoadedError{edge: "segments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Transcription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcription.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case transcription.FieldWordCount:
			values[i] = new(sql.NullInt64)
		case transcription.FieldID, transcription.FieldCallID, transcription.FieldFullText, transcription.FieldLanguage, transcription.FieldEventID:
			values[i] = new(sql.NullString)
		case transcription.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Transcription fields.
func (_m *Transcription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcription.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case transcription.FieldCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field call_id", values[i])
			} else if value.Valid {
				_m.CallID = value.String
			}
		case transcription.FieldFullText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_text", values[i])
			} else if value.Valid {
				_m.FullText = value.String
			}
		case transcription.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case transcription.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case transcription.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				_m.WordCount = int(value.Int64)
			}
		case transcription.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case transcription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Transcription.
// This includes values selected through modifiers, order, etc.
func (_m *Transcription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySegments queries the "segments" edge of the Transcription entity.
func (_m *Transcription) QuerySegments() *TranscriptSegmentQuery {
	return NewTranscriptionClient(_m.config).QuerySegments(_m)
}

// Update returns a builder for updating this Transcription.
// Note that you need to call Transcription.Unwrap() before calling this method if this Transcription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Transcription) Update() *TranscriptionUpdateOne {
	return NewTranscriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Transcription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Transcription) Unwrap() *Transcription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Transcription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Transcription) String() string {
	var builder strings.Builder
	builder.WriteString("Transcription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("call_id=")
	builder.WriteString(_m.CallID)
	builder.WriteString(", ")
	builder.WriteString("full_text=")
	builder.WriteString(_m.FullText)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("word_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordCount))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Transcriptions is a parsable slice of Transcription.
type Transcriptions []*Transcription
