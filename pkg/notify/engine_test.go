package notify

import (
	"testing"

	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_EvaluateSentiment(t *testing.T) {
	engine := NewEngine(config.DefaultAlertConfig())

	t.Run("escalation raises an urgent chat alert", func(t *testing.T) {
		alerts := engine.EvaluateSentiment(events.SentimentAnalyzedPayload{
			CallID:             "c1",
			OverallSentiment:   events.SentimentNegative,
			SentimentScore:     -0.4,
			EscalationDetected: true,
		})
		require.Len(t, alerts, 1)
		assert.Equal(t, TypeEscalation, alerts[0].Type)
		assert.Equal(t, PriorityUrgent, alerts[0].Priority)
		assert.Equal(t, ChannelChat, alerts[0].Channel)
	})

	t.Run("no escalation means no alert", func(t *testing.T) {
		alerts := engine.EvaluateSentiment(events.SentimentAnalyzedPayload{
			CallID: "c1", OverallSentiment: events.SentimentNegative, SentimentScore: -0.9,
		})
		assert.Empty(t, alerts)
	})

	t.Run("escalation alerts can be disabled", func(t *testing.T) {
		cfg := config.DefaultAlertConfig()
		cfg.EscalationEnabled = false
		muted := NewEngine(cfg)
		alerts := muted.EvaluateSentiment(events.SentimentAnalyzedPayload{
			CallID: "c1", EscalationDetected: true,
		})
		assert.Empty(t, alerts)
	})
}

func TestEngine_EvaluateVoc(t *testing.T) {
	engine := NewEngine(config.DefaultAlertConfig())

	t.Run("churn at the high threshold is high priority email", func(t *testing.T) {
		alerts := engine.EvaluateVoc(events.VocAnalyzedPayload{
			CallID: "c1", PredictedChurnRisk: 0.85,
		})
		require.Len(t, alerts, 1)
		assert.Equal(t, TypeHighChurn, alerts[0].Type)
		assert.Equal(t, PriorityHigh, alerts[0].Priority)
		assert.Equal(t, ChannelEmail, alerts[0].Channel)
	})

	t.Run("churn between thresholds is normal priority", func(t *testing.T) {
		alerts := engine.EvaluateVoc(events.VocAnalyzedPayload{
			CallID: "c1", PredictedChurnRisk: 0.75,
		})
		require.Len(t, alerts, 1)
		assert.Equal(t, PriorityNormal, alerts[0].Priority)
	})

	t.Run("critical themes raise a voc alert", func(t *testing.T) {
		alerts := engine.EvaluateVoc(events.VocAnalyzedPayload{
			CallID: "c1", Topics: []string{"billing", "Cancellation"},
		})
		require.Len(t, alerts, 1)
		assert.Equal(t, TypeVocAlert, alerts[0].Type)
		assert.Equal(t, PriorityNormal, alerts[0].Priority)
	})

	t.Run("many critical themes raise priority to high", func(t *testing.T) {
		alerts := engine.EvaluateVoc(events.VocAnalyzedPayload{
			CallID: "c1", Topics: []string{"cancellation", "legal", "fraud"},
		})
		require.Len(t, alerts, 1)
		assert.Equal(t, PriorityHigh, alerts[0].Priority)
	})

	t.Run("churn and critical themes both fire for one event", func(t *testing.T) {
		alerts := engine.EvaluateVoc(events.VocAnalyzedPayload{
			CallID: "c1", PredictedChurnRisk: 0.85, Topics: []string{"cancellation"},
		})
		require.Len(t, alerts, 2)
		assert.Equal(t, TypeHighChurn, alerts[0].Type)
		assert.Equal(t, TypeVocAlert, alerts[1].Type)
	})

	t.Run("quiet call raises nothing", func(t *testing.T) {
		alerts := engine.EvaluateVoc(events.VocAnalyzedPayload{
			CallID: "c1", PredictedChurnRisk: 0.1, Topics: []string{"billing"},
		})
		assert.Empty(t, alerts)
	})
}

// One escalated, churn-risky call produces both an urgent chat escalation
// and a high-priority email churn alert across its analysis events.
func TestEngine_EscalationAndChurnPair(t *testing.T) {
	engine := NewEngine(config.DefaultAlertConfig())

	sentiment := engine.EvaluateSentiment(events.SentimentAnalyzedPayload{
		CallID: "c1", EscalationDetected: true,
	})
	voc := engine.EvaluateVoc(events.VocAnalyzedPayload{
		CallID: "c1", PredictedChurnRisk: 0.85,
	})

	all := append(sentiment, voc...)
	require.Len(t, all, 2)
	assert.Equal(t, TypeEscalation, all[0].Type)
	assert.Equal(t, PriorityUrgent, all[0].Priority)
	assert.Equal(t, ChannelChat, all[0].Channel)
	assert.Equal(t, TypeHighChurn, all[1].Type)
	assert.Equal(t, PriorityHigh, all[1].Priority)
	assert.Equal(t, ChannelEmail, all[1].Channel)
}

func TestEngine_EvaluateAudit(t *testing.T) {
	engine := NewEngine(config.DefaultAlertConfig())

	t.Run("critical violation is urgent", func(t *testing.T) {
		alerts := engine.EvaluateAudit(events.CallAuditedPayload{
			CallID: "c1", OverallScore: 85, ComplianceStatus: events.ComplianceStatusFailed,
			FlagsForReview: true,
			Violations:     []events.Violation{{RuleID: "r1", Severity: events.SeverityCritical}},
		})
		require.Len(t, alerts, 1)
		assert.Equal(t, TypeComplianceViolation, alerts[0].Type)
		assert.Equal(t, PriorityUrgent, alerts[0].Priority)
		assert.Equal(t, ChannelEmail, alerts[0].Channel)
	})

	t.Run("very low score is urgent", func(t *testing.T) {
		alerts := engine.EvaluateAudit(events.CallAuditedPayload{
			CallID: "c1", OverallScore: 45, ComplianceStatus: events.ComplianceStatusFailed, FlagsForReview: true,
		})
		require.Len(t, alerts, 1)
		assert.Equal(t, TypeComplianceViolation, alerts[0].Type)
		assert.Equal(t, PriorityUrgent, alerts[0].Priority)
	})

	t.Run("low score is high priority", func(t *testing.T) {
		alerts := engine.EvaluateAudit(events.CallAuditedPayload{
			CallID: "c1", OverallScore: 55, ComplianceStatus: events.ComplianceStatusReviewRequired, FlagsForReview: true,
		})
		require.Len(t, alerts, 1)
		assert.Equal(t, PriorityHigh, alerts[0].Priority)
	})

	t.Run("flagged review without serious findings is normal email", func(t *testing.T) {
		alerts := engine.EvaluateAudit(events.CallAuditedPayload{
			CallID: "c1", OverallScore: 65, ComplianceStatus: events.ComplianceStatusReviewRequired,
			FlagsForReview: true, ReviewReason: "overall score in review band",
		})
		require.Len(t, alerts, 1)
		assert.Equal(t, TypeReviewRequired, alerts[0].Type)
		assert.Equal(t, PriorityNormal, alerts[0].Priority)
	})

	t.Run("clean pass raises nothing", func(t *testing.T) {
		alerts := engine.EvaluateAudit(events.CallAuditedPayload{
			CallID: "c1", OverallScore: 92, ComplianceStatus: events.ComplianceStatusPassed,
		})
		assert.Empty(t, alerts)
	})
}

func TestEngine_Recipients(t *testing.T) {
	cfg := config.DefaultAlertConfig()
	engine := NewEngine(cfg)

	t.Run("normal priority goes to the supervisor only", func(t *testing.T) {
		recipients := engine.Recipients(Alert{Type: TypeReviewRequired, Priority: PriorityNormal, Channel: ChannelEmail})
		assert.Equal(t, []string{cfg.Supervisor.Email}, recipients)
	})

	t.Run("high priority adds the manager", func(t *testing.T) {
		recipients := engine.Recipients(Alert{Type: TypeHighChurn, Priority: PriorityHigh, Channel: ChannelEmail})
		assert.Equal(t, []string{cfg.Supervisor.Email, cfg.Manager.Email}, recipients)
	})

	t.Run("chat alerts resolve chat channels", func(t *testing.T) {
		recipients := engine.Recipients(Alert{Type: TypeEscalation, Priority: PriorityUrgent, Channel: ChannelChat})
		assert.Equal(t, []string{cfg.Supervisor.ChatChannel, cfg.Manager.ChatChannel}, recipients)
	})
}
