// Code generated by ent, DO NOT EDIT.

package vocinsight

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vocinsight type in the database.
	Label = "voc_insight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "insight_id"
	// FieldCallID holds the string denoting the call_id field in the database.
	FieldCallID = "call_id"
	// FieldPrimaryIntent holds the string denoting the primary_intent field in the database.
	FieldPrimaryIntent = "primary_intent"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldCustomerSatisfaction holds the string denoting the customer_satisfaction field in the database.
	FieldCustomerSatisfaction = "customer_satisfaction"
	// FieldPredictedChurnRisk holds the string denoting the predicted_churn_risk field in the database.
	FieldPredictedChurnRisk = "predicted_churn_risk"
	// FieldActionableItems holds the string denoting the actionable_items field in the database.
	FieldActionableItems = "actionable_items"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the vocinsight in the database.
	Table = "voc_insights"
)

// Columns holds all SQL columns for vocinsight fields.
var Columns = []string{
	FieldID,
	FieldCallID,
	FieldPrimaryIntent,
	FieldTopics,
	FieldKeywords,
	FieldCustomerSatisfaction,
	FieldPredictedChurnRisk,
	FieldActionableItems,
	FieldSummary,
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

// PrimaryIntent defines the type for the "primary_intent" enum field.
type PrimaryIntent string

// PrimaryIntent values.
const (
	PrimaryIntentComplaint  PrimaryIntent = "complaint"
	PrimaryIntentInquiry    PrimaryIntent = "inquiry"
	PrimaryIntentCompliment PrimaryIntent = "compliment"
	PrimaryIntentRequest    PrimaryIntent = "request"
	PrimaryIntentOther      PrimaryIntent = "other"
)

func (pi PrimaryIntent) String() string {
	return string(pi)
}

// PrimaryIntentValidator is a validator for the "primary_intent" field enum values. It is called by the builders before save.
func PrimaryIntentValidator(pi PrimaryIntent) error {
	switch pi {
	case PrimaryIntentComplaint, PrimaryIntentInquiry, PrimaryIntentCompliment, PrimaryIntentRequest, PrimaryIntentOther:
		return nil
	default:
		return fmt.Errorf("vocinsight: invalid enum value for primary_intent field: %q", pi)
	}
}

// CustomerSatisfaction defines the type for the "customer_satisfaction" enum field.
type CustomerSatisfaction string

// CustomerSatisfaction values.
const (
	CustomerSatisfactionLow    CustomerSatisfaction = "low"
	CustomerSatisfactionMedium CustomerSatisfaction = "medium"
	CustomerSatisfactionHigh   CustomerSatisfaction = "high"
)

func (cs CustomerSatisfaction) String() string {
	return string(cs)
}

// CustomerSatisfactionValidator is a validator for the "customer_satisfaction" field enum values. It is called by the builders before save.
func CustomerSatisfactionValidator(cs CustomerSatisfaction) error {
	switch cs {
	case CustomerSatisfactionLow, CustomerSatisfactionMedium, CustomerSatisfactionHigh:
		return nil
	default:
		return fmt.Errorf("vocinsight: invalid enum value for customer_satisfaction field: %q", cs)
	}
}

// OrderOption defines the ordering options for the VocInsight queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCallID orders the results by the call_id field.
func ByCallID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallID, opts...).ToFunc()
}

// ByPrimaryIntent orders the results by the primary_intent field.
func ByPrimaryIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryIntent, opts...).ToFunc()
}

// ByCustomerSatisfaction orders the results by the customer_satisfaction field.
func ByCustomerSatisfaction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerSatisfaction, opts...).ToFunc()
}

// ByPredictedChurnRisk orders the results by the predicted_churn_risk field.
func ByPredictedChurnRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictedChurnRisk, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
