// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentPerformancesColumns holds the columns for the "agent_performances" table.
	AgentPerformancesColumns = []*schema.Column{
		{Name: "performance_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "time_slot", Type: field.TypeTime},
		{Name: "count", Type: field.TypeInt, Default: 0},
		{Name: "avg_quality", Type: field.TypeFloat64, Nullable: true},
		{Name: "avg_sentiment", Type: field.TypeFloat64, Nullable: true},
		{Name: "avg_satisfaction", Type: field.TypeFloat64, Nullable: true},
		{Name: "avg_compliance_pass_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "avg_churn_risk", Type: field.TypeFloat64, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentPerformancesTable holds the schema information for the "agent_performances" table.
	AgentPerformancesTable = &schema.Table{
		Name:       "agent_performances",
		Columns:    AgentPerformancesColumns,
		PrimaryKey: []*schema.Column{AgentPerformancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentperformance_agent_id_time_slot",
				Unique:  true,
				Columns: []*schema.Column{AgentPerformancesColumns[1], AgentPerformancesColumns[2]},
			},
			{
				Name:    "agentperformance_time_slot",
				Unique:  false,
				Columns: []*schema.Column{AgentPerformancesColumns[2]},
			},
		},
	}
	// AuditResultsColumns holds the columns for the "audit_results" table.
	AuditResultsColumns = []*schema.Column{
		{Name: "audit_result_id", Type: field.TypeString, Unique: true},
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "overall_score", Type: field.TypeInt},
		{Name: "compliance_status", Type: field.TypeEnum, Enums: []string{"passed", "review_required", "failed"}},
		{Name: "script_adherence", Type: field.TypeInt},
		{Name: "customer_service", Type: field.TypeInt},
		{Name: "resolution_effectiveness", Type: field.TypeInt},
		{Name: "flags_for_review", Type: field.TypeBool, Default: false},
		{Name: "review_reason", Type: field.TypeString, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt64},
		{Name: "event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditResultsTable holds the schema information for the "audit_results" table.
	AuditResultsTable = &schema.Table{
		Name:       "audit_results",
		Columns:    AuditResultsColumns,
		PrimaryKey: []*schema.Column{AuditResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditresult_call_id",
				Unique:  false,
				Columns: []*schema.Column{AuditResultsColumns[1]},
			},
			{
				Name:    "auditresult_compliance_status",
				Unique:  false,
				Columns: []*schema.Column{AuditResultsColumns[3]},
			},
			{
				Name:    "auditresult_flags_for_review",
				Unique:  false,
				Columns: []*schema.Column{AuditResultsColumns[7]},
			},
		},
	}
	// CallsColumns holds the columns for the "calls" table.
	CallsColumns = []*schema.Column{
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "caller_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "audio_key", Type: field.TypeString},
		{Name: "file_format", Type: field.TypeString},
		{Name: "file_size_bytes", Type: field.TypeInt64},
		{Name: "duration", Type: field.TypeFloat64, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"received", "transcribed", "analyzed", "audited"}, Default: "received"},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CallsTable holds the schema information for the "calls" table.
	CallsTable = &schema.Table{
		Name:       "calls",
		Columns:    CallsColumns,
		PrimaryKey: []*schema.Column{CallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "call_agent_id",
				Unique:  false,
				Columns: []*schema.Column{CallsColumns[2]},
			},
			{
				Name:    "call_status",
				Unique:  false,
				Columns: []*schema.Column{CallsColumns[9]},
			},
			{
				Name:    "call_agent_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{CallsColumns[2], CallsColumns[8]},
			},
		},
	}
	// ComplianceRulesColumns holds the columns for the "compliance_rules" table.
	ComplianceRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "definition", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ComplianceRulesTable holds the schema information for the "compliance_rules" table.
	ComplianceRulesTable = &schema.Table{
		Name:       "compliance_rules",
		Columns:    ComplianceRulesColumns,
		PrimaryKey: []*schema.Column{ComplianceRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "compliancerule_is_active",
				Unique:  false,
				Columns: []*schema.Column{ComplianceRulesColumns[4]},
			},
			{
				Name:    "compliancerule_category",
				Unique:  false,
				Columns: []*schema.Column{ComplianceRulesColumns[2]},
			},
		},
	}
	// ComplianceViolationsColumns holds the columns for the "compliance_violations" table.
	ComplianceViolationsColumns = []*schema.Column{
		{Name: "violation_id", Type: field.TypeString, Unique: true},
		{Name: "rule_id", Type: field.TypeString},
		{Name: "rule_name", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp_in_call", Type: field.TypeFloat64, Nullable: true},
		{Name: "evidence", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "audit_result_id", Type: field.TypeString},
	}
	// ComplianceViolationsTable holds the schema information for the "compliance_violations" table.
	ComplianceViolationsTable = &schema.Table{
		Name:       "compliance_violations",
		Columns:    ComplianceViolationsColumns,
		PrimaryKey: []*schema.Column{ComplianceViolationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "compliance_violations_audit_results_violations",
				Columns:    []*schema.Column{ComplianceViolationsColumns[7]},
				RefColumns: []*schema.Column{AuditResultsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "complianceviolation_audit_result_id",
				Unique:  false,
				Columns: []*schema.Column{ComplianceViolationsColumns[7]},
			},
			{
				Name:    "complianceviolation_severity",
				Unique:  false,
				Columns: []*schema.Column{ComplianceViolationsColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "call_id", Type: field.TypeString},
		{Name: "notification_type", Type: field.TypeString},
		{Name: "recipient", Type: field.TypeString},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"email", "chat", "webhook"}},
		{Name: "subject", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"normal", "high", "urgent"}, Default: "normal"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed"}, Default: "pending"},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_call_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
			{
				Name:    "notification_status",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[8]},
			},
			{
				Name:    "notification_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[8], NotificationsColumns[11]},
			},
		},
	}
	// SentimentAnalysesColumns holds the columns for the "sentiment_analyses" table.
	SentimentAnalysesColumns = []*schema.Column{
		{Name: "sentiment_id", Type: field.TypeString, Unique: true},
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "overall_sentiment", Type: field.TypeEnum, Enums: []string{"positive", "neutral", "negative"}},
		{Name: "sentiment_score", Type: field.TypeFloat64},
		{Name: "escalation_detected", Type: field.TypeBool, Default: false},
		{Name: "escalation_details", Type: field.TypeJSON, Nullable: true},
		{Name: "segment_sentiments", Type: field.TypeJSON, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt64},
		{Name: "event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SentimentAnalysesTable holds the schema information for the "sentiment_analyses" table.
	SentimentAnalysesTable = &schema.Table{
		Name:       "sentiment_analyses",
		Columns:    SentimentAnalysesColumns,
		PrimaryKey: []*schema.Column{SentimentAnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sentimentanalysis_call_id",
				Unique:  false,
				Columns: []*schema.Column{SentimentAnalysesColumns[1]},
			},
			{
				Name:    "sentimentanalysis_escalation_detected",
				Unique:  false,
				Columns: []*schema.Column{SentimentAnalysesColumns[4]},
			},
		},
	}
	// TranscriptSegmentsColumns holds the columns for the "transcript_segments" table.
	TranscriptSegmentsColumns = []*schema.Column{
		{Name: "segment_id", Type: field.TypeString, Unique: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "speaker", Type: field.TypeEnum, Enums: []string{"agent", "customer", "unknown"}},
		{Name: "start_time", Type: field.TypeFloat64},
		{Name: "end_time", Type: field.TypeFloat64},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "transcription_id", Type: field.TypeString},
	}
	// TranscriptSegmentsTable holds the schema information for the "transcript_segments" table.
	TranscriptSegmentsTable = &schema.Table{
		Name:       "transcript_segments",
		Columns:    TranscriptSegmentsColumns,
		PrimaryKey: []*schema.Column{TranscriptSegmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcript_segments_transcriptions_segments",
				Columns:    []*schema.Column{TranscriptSegmentsColumns[7]},
				RefColumns: []*schema.Column{TranscriptionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transcriptsegment_transcription_id_position",
				Unique:  false,
				Columns: []*schema.Column{TranscriptSegmentsColumns[7], TranscriptSegmentsColumns[1]},
			},
		},
	}
	// TranscriptionsColumns holds the columns for the "transcriptions" table.
	TranscriptionsColumns = []*schema.Column{
		{Name: "transcription_id", Type: field.TypeString, Unique: true},
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "full_text", Type: field.TypeString, Size: 2147483647},
		{Name: "language", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "word_count", Type: field.TypeInt},
		{Name: "event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TranscriptionsTable holds the schema information for the "transcriptions" table.
	TranscriptionsTable = &schema.Table{
		Name:       "transcriptions",
		Columns:    TranscriptionsColumns,
		PrimaryKey: []*schema.Column{TranscriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transcription_call_id",
				Unique:  false,
				Columns: []*schema.Column{TranscriptionsColumns[1]},
			},
		},
	}
	// VocInsightsColumns holds the columns for the "voc_insights" table.
	VocInsightsColumns = []*schema.Column{
		{Name: "insight_id", Type: field.TypeString, Unique: true},
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "primary_intent", Type: field.TypeEnum, Enums: []string{"complaint", "inquiry", "compliment", "request", "other"}},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "customer_satisfaction", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}},
		{Name: "predicted_churn_risk", Type: field.TypeFloat64},
		{Name: "actionable_items", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "event_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VocInsightsTable holds the schema information for the "voc_insights" table.
	VocInsightsTable = &schema.Table{
		Name:       "voc_insights",
		Columns:    VocInsightsColumns,
		PrimaryKey: []*schema.Column{VocInsightsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vocinsight_call_id",
				Unique:  false,
				Columns: []*schema.Column{VocInsightsColumns[1]},
			},
			{
				Name:    "vocinsight_primary_intent",
				Unique:  false,
				Columns: []*schema.Column{VocInsightsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentPerformancesTable,
		AuditResultsTable,
		CallsTable,
		ComplianceRulesTable,
		ComplianceViolationsTable,
		NotificationsTable,
		SentimentAnalysesTable,
		TranscriptSegmentsTable,
		TranscriptionsTable,
		VocInsightsTable,
	}
)

func init() {
	ComplianceViolationsTable.ForeignKeys[0].RefTable = AuditResultsTable
	TranscriptSegmentsTable.ForeignKeys[0].RefTable = TranscriptionsTable
}
