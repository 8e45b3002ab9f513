// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentPerformance is the predicate function for agentperformance builders.
type AgentPerformance func(*sql.Selector)

// AuditResult is the predicate function for auditresult builders.
type AuditResult func(*sql.Selector)

// Call is the predicate function for call builders.
type Call func(*sql.Selector)

// ComplianceRule is the predicate function for compliancerule builders.
type ComplianceRule func(*sql.Selector)

// ComplianceViolation is the predicate function for complianceviolation builders.
type ComplianceViolation func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// SentimentAnalysis is the predicate function for sentimentanalysis builders.
type SentimentAnalysis func(*sql.Selector)

// TranscriptSegment is the predicate function for transcriptsegment builders.
type TranscriptSegment func(*sql.Selector)

// Transcription is the predicate function for transcription builders.
type Transcription func(*sql.Selector)

// VocInsight is the predicate function for vocinsight builders.
type VocInsight func(*sql.Selector)
