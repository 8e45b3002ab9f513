// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/callsight/callsight/ent/agentperformance"
	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/ent/call"
	"github.com/callsight/callsight/ent/compliancerule"
	"github.com/callsight/callsight/ent/notification"
	"github.com/callsight/callsight/ent/schema"
	"github.com/callsight/callsight/ent/sentimentanalysis"
	"github.com/callsight/callsight/ent/transcription"
	"github.com/callsight/callsight/ent/vocinsight"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentperformanceFields := schema.AgentPerformance{}.Fields()
	_ = agentperformanceFields
	// agentperformanceDescCount is the schema descriptor for count field.
	agentperformanceDescCount := agentperformanceFields[3].Descriptor()
	// agentperformance.DefaultCount holds the default value on creation for the count field.
	agentperformance.DefaultCount = agentperformanceDescCount.Default.(int)
	// agentperformanceDescUpdatedAt is the schema descriptor for updated_at field.
	agentperformanceDescUpdatedAt := agentperformanceFields[9].Descriptor()
	// agentperformance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentperformance.DefaultUpdatedAt = agentperformanceDescUpdatedAt.Default.(func() time.Time)
	auditresultFields := schema.AuditResult{}.Fields()
	_ = auditresultFields
	// auditresultDescFlagsForReview is the schema descriptor for flags_for_review field.
	auditresultDescFlagsForReview := auditresultFields[7].Descriptor()
	// auditresult.DefaultFlagsForReview holds the default value on creation for the flags_for_review field.
	auditresult.DefaultFlagsForReview = auditresultDescFlagsForReview.Default.(bool)
	// auditresultDescCreatedAt is the schema descriptor for created_at field.
	auditresultDescCreatedAt := auditresultFields[11].Descriptor()
	// auditresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditresult.DefaultCreatedAt = auditresultDescCreatedAt.Default.(func() time.Time)
	callFields := schema.Call{}.Fields()
	_ = callFields
	// callDescCreatedAt is the schema descriptor for created_at field.
	callDescCreatedAt := callFields[11].Descriptor()
	// call.DefaultCreatedAt holds the default value on creation for the created_at field.
	call.DefaultCreatedAt = callDescCreatedAt.Default.(func() time.Time)
	complianceruleFields := schema.ComplianceRule{}.Fields()
	_ = complianceruleFields
	// complianceruleDescIsActive is the schema descriptor for is_active field.
	complianceruleDescIsActive := complianceruleFields[4].Descriptor()
	// compliancerule.DefaultIsActive holds the default value on creation for the is_active field.
	compliancerule.DefaultIsActive = complianceruleDescIsActive.Default.(bool)
	// complianceruleDescCreatedAt is the schema descriptor for created_at field.
	complianceruleDescCreatedAt := complianceruleFields[6].Descriptor()
	// compliancerule.DefaultCreatedAt holds the default value on creation for the created_at field.
	compliancerule.DefaultCreatedAt = complianceruleDescCreatedAt.Default.(func() time.Time)
	// complianceruleDescUpdatedAt is the schema descriptor for updated_at field.
	complianceruleDescUpdatedAt := complianceruleFields[7].Descriptor()
	// compliancerule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	compliancerule.DefaultUpdatedAt = complianceruleDescUpdatedAt.Default.(func() time.Time)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[11].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	sentimentanalysisFields := schema.SentimentAnalysis{}.Fields()
	_ = sentimentanalysisFields
	// sentimentanalysisDescEscalationDetected is the schema descriptor for escalation_detected field.
	sentimentanalysisDescEscalationDetected := sentimentanalysisFields[4].Descriptor()
	// sentimentanalysis.DefaultEscalationDetected holds the default value on creation for the escalation_detected field.
	sentimentanalysis.DefaultEscalationDetected = sentimentanalysisDescEscalationDetected.Default.(bool)
	// sentimentanalysisDescCreatedAt is the schema descriptor for created_at field.
	sentimentanalysisDescCreatedAt := sentimentanalysisFields[9].Descriptor()
	// sentimentanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	sentimentanalysis.DefaultCreatedAt = sentimentanalysisDescCreatedAt.Default.(func() time.Time)
	transcriptionFields := schema.Transcription{}.Fields()
	_ = transcriptionFields
	// transcriptionDescCreatedAt is the schema descriptor for created_at field.
	transcriptionDescCreatedAt := transcriptionFields[7].Descriptor()
	// transcription.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcription.DefaultCreatedAt = transcriptionDescCreatedAt.Default.(func() time.Time)
	vocinsightFields := schema.VocInsight{}.Fields()
	_ = vocinsightFields
	// vocinsightDescCreatedAt is the schema descriptor for created_at field.
	vocinsightDescCreatedAt := vocinsightFields[10].Descriptor()
	// vocinsight.DefaultCreatedAt holds the default value on creation for the created_at field.
	vocinsight.DefaultCreatedAt = vocinsightDescCreatedAt.Default.(func() time.Time)
}
