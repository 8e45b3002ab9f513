// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/sentimentanalysis"
)

// SentimentAnalysis is the model entity for the SentimentAnalysis schema.
type SentimentAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CallID holds the value of the "call_id" field.
	CallID string `json:"call_id,omitempty"`
	// OverallSentiment holds the value of the "overall_sentiment" field.
	OverallSentiment sentimentanalysis.OverallSentiment `json:"overall_sentiment,omitempty"`
	// Weighted overall score in [-1,1]
	SentimentScore float64 `json:"sentiment_score,omitempty"`
	// EscalationDetected holds the value of the "escalation_detected" field.
	EscalationDetected bool `json:"escalation_detected,omitempty"`
	// EscalationDetails holds the value of the "escalation_details" field.
	EscalationDetails map[string]float64 `json:"escalation_details,omitempty"`
	// SegmentSentiments holds the value of the "segment_sentiments" field.
	SegmentSentiments []map[string]interface{} `json:"segment_sentiments,omitempty"`
	// ProcessingTimeMs holds the value of the "processing_time_ms" field.
	ProcessingTimeMs int64 `json:"processing_time_ms,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SentimentAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sentimentanalysis.FieldEscalationDetails, sentimentanalysis.FieldSegmentSentiments:
			values[i] = new([]byte)
		case sentimentanalysis.FieldEscalationDetected:
			values[i] = new(sql.NullBool)
		case sentimentanalysis.FieldSentimentScore:
			values[i] = new(sql.NullFloat64)
		case sentimentanalysis.FieldProcessingTimeMs:
			values[i] = new(sql.NullInt64)
		case sentimentanalysis.FieldID, sentimentanalysis.FieldCallID, sentimentanalysis.FieldOverallSentiment, sentimentanalysis.FieldEventID:
			values[i] = new(sql.NullString)
		case sentimentanalysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SentimentAnalysis fields.
func (_m *SentimentAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sentimentanalysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sentimentanalysis.FieldCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field call_id", values[i])
			} else if value.Valid {
				_m.CallID = value.String
			}
		case sentimentanalysis.FieldOverallSentiment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field overall_sentiment", values[i])
			} else if value.Valid {
				_m.OverallSentiment = sentimentanalysis.OverallSentiment(value.String)
			}
		case sentimentanalysis.FieldSentimentScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment_score", values[i])
			} else if value.Valid {
				_m.SentimentScore = value.Float64
			}
		case sentimentanalysis.FieldEscalationDetected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_detected", values[i])
			} else if value.Valid {
				_m.EscalationDetected = value.Bool
			}
		case sentimentanalysis.FieldEscalationDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EscalationDetails); err != nil {
					return fmt.Errorf("unmarshal field escalation_details: %w", err)
				}
			}
		case sentimentanalysis.FieldSegmentSentiments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field segment_sentiments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SegmentSentiments); err != nil {
					return fmt.Errorf("unmarshal field segment_sentiments: %w", err)
				}
			}
		case sentimentanalysis.FieldProcessingTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_ms", values[i])
			} else if value.Valid {
				_m.ProcessingTimeMs = value.Int64
			}
		case sentimentanalysis.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case sentimentanalysis.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SentimentAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *SentimentAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SentimentAnalysis.
// Note that you need to call SentimentAnalysis.Unwrap() before calling this method if this SentimentAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SentimentAnalysis) Update() *SentimentAnalysisUpdateOne {
	return NewSentimentAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SentimentAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SentimentAnalysis) Unwrap() *SentimentAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SentimentAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SentimentAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("SentimentAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("call_id=")
	builder.WriteString(_m.CallID)
	builder.WriteString(", ")
	builder.WriteString("overall_sentiment=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallSentiment))
	builder.WriteString(", ")
	builder.WriteString("sentiment_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentimentScore))
	builder.WriteString(", ")
	builder.WriteString("escalation_detected=")
	builder.WriteString(fmt.Sprintf("%v", _m.EscalationDetected))
	builder.WriteString(", ")
	builder.WriteString("escalation_details=")
	builder.WriteString(fmt.Sprintf("%v", _m.EscalationDetails))
	builder.WriteString(", ")
	builder.WriteString("segment_sentiments=")
	builder.WriteString(fmt.Sprintf("%v", _m.SegmentSentiments))
	builder.WriteString(", ")
	builder.WriteString("processing_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingTimeMs))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SentimentAnalyses is a parsable slice of SentimentAnalysis.
type SentimentAnalyses []*SentimentAnalysis
