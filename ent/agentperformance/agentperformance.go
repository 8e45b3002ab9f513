// Code generated by ent, DO NOT EDIT.

package agentperformance

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentperformance type in the database.
	Label = "agent_performance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "performance_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldTimeSlot holds the string denoting the time_slot field in the database.
	FieldTimeSlot = "time_slot"
	// FieldCount holds the string denoting the count field in the database.
	FieldCount = "count"
	// FieldAvgQuality holds the string denoting the avg_quality field in the database.
	FieldAvgQuality = "avg_quality"
	// FieldAvgSentiment holds the string denoting the avg_sentiment field in the database.
	FieldAvgSentiment = "avg_sentiment"
	// FieldAvgSatisfaction holds the string denoting the avg_satisfaction field in the database.
	FieldAvgSatisfaction = "avg_satisfaction"
	// FieldAvgCompliancePassRate holds the string denoting the avg_compliance_pass_rate field in the database.
	FieldAvgCompliancePassRate = "avg_compliance_pass_rate"
	// FieldAvgChurnRisk holds the string denoting the avg_churn_risk field in the database.
	FieldAvgChurnRisk = "avg_churn_risk"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agentperformance in the database.
	Table = "agent_performances"
)

// Columns holds all SQL columns for agentperformance fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldTimeSlot,
	FieldCount,
	FieldAvgQuality,
	FieldAvgSentiment,
	FieldAvgSatisfaction,
	FieldAvgCompliancePassRate,
	FieldAvgChurnRisk,
	FieldUpdatedAt,
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
	// DefaultCount holds the default value on creation for the "count" field.
	DefaultCount int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentPerformance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByTimeSlot orders the results by the time_slot field.
func ByTimeSlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSlot, opts...).ToFunc()
}

// ByCount orders the results by the count field.
func ByCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCount, opts...).ToFunc()
}

// ByAvgQuality orders the results by the avg_quality field.
func ByAvgQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgQuality, opts...).ToFunc()
}

// ByAvgSentiment orders the results by the avg_sentiment field.
func ByAvgSentiment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgSentiment, opts...).ToFunc()
}

// ByAvgSatisfaction orders the results by the avg_satisfaction field.
func ByAvgSatisfaction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgSatisfaction, opts...).ToFunc()
}

// ByAvgCompliancePassRate orders the results by the avg_compliance_pass_rate field.
func ByAvgCompliancePassRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgCompliancePassRate, opts...).ToFunc()
}

// ByAvgChurnRisk orders the results by the avg_churn_risk field.
func ByAvgChurnRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgChurnRisk, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
