// Code generated by ent, DO NOT EDIT.

package sentimentanalysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sentimentanalysis type in the database.
	Label = "sentiment_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sentiment_id"
	// FieldCallID holds the string denoting the call_id field in the database.
	FieldCallID = "call_id"
	// FieldOverallSentiment holds the string denoting the overall_sentiment field in the database.
	FieldOverallSentiment = "overall_sentiment"
	// FieldSentimentScore holds the string denoting the sentiment_score field in the database.
	FieldSentimentScore = "sentiment_score"
	// FieldEscalationDetected holds the string denoting the escalation_detected field in the database.
	FieldEscalationDetected = "escalation_detected"
	// FieldEscalationDetails holds the string denoting the escalation_details field in the database.
	FieldEscalationDetails = "escalation_details"
	// FieldSegmentSentiments holds the string denoting the segment_sentiments field in the database.
	FieldSegmentSentiments = "segment_sentiments"
	// FieldProcessingTimeMs holds the string denoting the processing_time_ms field in the database.
	FieldProcessingTimeMs = "processing_time_ms"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the sentimentanalysis in the database.
	Table = "sentiment_analyses"
)

// Columns holds all SQL columns for sentimentanalysis fields.
var Columns = []string{
	FieldID,
	FieldCallID,
	FieldOverallSentiment,
	FieldSentimentScore,
	FieldEscalationDetected,
	FieldEscalationDetails,
	FieldSegmentSentiments,
	FieldProcessingTimeMs,
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
	// DefaultEscalationDetected holds the default value on creation for the "escalation_detected" field.
	DefaultEscalationDetected bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OverallSentiment defines the type for the "overall_sentiment" enum field.
type OverallSentiment string

// OverallSentiment values.
const (
	OverallSentimentPositive OverallSentiment = "positive"
	OverallSentimentNeutral  OverallSentiment = "neutral"
	OverallSentimentNegative OverallSentiment = "negative"
)

func (os OverallSentiment) String() string {
	return string(os)
}

// OverallSentimentValidator is a validator for the "overall_sentiment" field enum values. It is called by the builders before save.
func OverallSentimentValidator(os OverallSentiment) error {
	switch os {
	case OverallSentimentPositive, OverallSentimentNeutral, OverallSentimentNegative:
		return nil
	default:
		return fmt.Errorf("sentimentanalysis: invalid enum value for overall_sentiment field: %q", os)
	}
}

// OrderOption defines the ordering options for the SentimentAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCallID orders the results by the call_id field.
func ByCallID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallID, opts...).ToFunc()
}

// ByOverallSentiment orders the results by the overall_sentiment field.
func ByOverallSentiment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallSentiment, opts...).ToFunc()
}

// BySentimentScore orders the results by the sentiment_score field.
func BySentimentScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentimentScore, opts...).ToFunc()
}

// ByEscalationDetected orders the results by the escalation_detected field.
func ByEscalationDetected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationDetected, opts...).ToFunc()
}

// ByProcessingTimeMs orders the results by the processing_time_ms field.
func ByProcessingTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTimeMs, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
