// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/call"
)

// Call is the model entity for the Call schema.
type Call struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CallerID holds the value of the "caller_id" field.
	CallerID string `json:"caller_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Inbound line identifier (e.g. 'support', 'sales')
	Channel string `json:"channel,omitempty"`
	// Object-storage key of the audio blob
	AudioKey string `json:"audio_key,omitempty"`
	// FileFormat holds the value of the "file_format" field.
	FileFormat string `json:"file_format,omitempty"`
	// FileSizeBytes holds the value of the "file_size_bytes" field.
	FileSizeBytes int64 `json:"file_size_bytes,omitempty"`
	// Call duration in seconds, when known at ingest
	Duration *float64 `json:"duration,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// Best-effort pipeline progress marker
	Status call.Status `json:"status,omitempty"`
	// Stamped at ingestion, shared by all events for this call
	CorrelationID string `json:"correlation_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Call) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case call.FieldDuration:
			values[i] = new(sql.NullFloat64)
		case call.FieldFileSizeBytes:
			values[i] = new(sql.NullInt64)
		case call.FieldID, call.FieldCallerID, call.FieldAgentID, call.FieldChannel, call.FieldAudioKey, call.FieldFileFormat, call.FieldStatus, call.FieldCorrelationID:
			values[i] = new(sql.NullString)
		case call.FieldStartTime, call.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Call fields.
func (_m *Call) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case call.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case call.FieldCallerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field caller_id", values[i])
			} else if value.Valid {
				_m.CallerID = value.String
			}
		case call.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case call.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = value.String
			}
		case call.FieldAudioKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_key", values[i])
			} else if value.Valid {
				_m.AudioKey = value.String
			}
		case call.FieldFileFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_format", values[i])
			} else if value.Valid {
				_m.FileFormat = value.String
			}
		case call.FieldFileSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size_bytes", values[i])
			} else if value.Valid {
				_m.FileSizeBytes = value.Int64
			}
		case call.FieldDuration:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = new(float64)
				*_m.Duration = value.Float64
			}
		case call.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case call.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = call.Status(value.String)
			}
		case call.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		case call.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Call.
// This includes values selected through modifiers, order, etc.
func (_m *Call) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Call.
// Note that you need to call Call.Unwrap() before calling this method if this Call
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Call) Update() *CallUpdateOne {
	return NewCallClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Call entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Call) Unwrap() *Call {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Call is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Call) String() string {
	var builder strings.Builder
	builder.WriteString("Call(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("caller_id=")
	builder.WriteString(_m.CallerID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(_m.Channel)
	builder.WriteString(", ")
	builder.WriteString("audio_key=")
	builder.WriteString(_m.AudioKey)
	builder.WriteString(", ")
	builder.WriteString("file_format=")
	builder.WriteString(_m.FileFormat)
	builder.WriteString(", ")
	builder.WriteString("file_size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSizeBytes))
	builder.WriteString(", ")
	if v := _m.Duration; v != nil {
		builder.WriteString("duration=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Calls is a parsable slice of Call.
type Calls []*Call
