// Code generated by ent, DO NOT EDIT.

package call

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the call type in the database.
	Label = "call"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "call_id"
	// FieldCallerID holds the string denoting the caller_id field in the database.
	FieldCallerID = "caller_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldAudioKey holds the string denoting the audio_key field in the database.
	FieldAudioKey = "audio_key"
	// FieldFileFormat holds the string denoting the file_format field in the database.
	FieldFileFormat = "file_format"
	// FieldFileSizeBytes holds the string denoting the file_size_bytes field in the database.
	FieldFileSizeBytes = "file_size_bytes"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the call in the database.
	Table = "calls"
)

// Columns holds all SQL columns for call fields.
var Columns = []string{
	FieldID,
	FieldCallerID,
	FieldAgentID,
	FieldChannel,
	FieldAudioKey,
	FieldFileFormat,
	FieldFileSizeBytes,
	FieldDuration,
	FieldStartTime,
	FieldStatus,
	FieldCorrelationID,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusReceived is the default value of the Status enum.
const DefaultStatus = StatusReceived

// Status values.
const (
	StatusReceived    Status = "received"
	StatusTranscribed Status = "transcribed"
	StatusAnalyzed    Status = "analyzed"
	StatusAudited     Status = "audited"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusReceived, StatusTranscribed, StatusAnalyzed, StatusAudited:
		return nil
	default:
		return fmt.Errorf("call: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Call queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCallerID orders the results by the caller_id field.
func ByCallerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallerID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByAudioKey orders the results by the audio_key field.
func ByAudioKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioKey, opts...).ToFunc()
}

// ByFileFormat orders the results by the file_format field.
func ByFileFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileFormat, opts...).ToFunc()
}

// ByFileSizeBytes orders the results by the file_size_bytes field.
func ByFileSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSizeBytes, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
