package audit

import (
	"testing"

	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// happyInput is a clean call: full script, empathy cue, positive sentiment,
// satisfied customer, low churn.
func happyInput() Input {
	fullText := "thank you for calling how can i help i understand your question is there anything else have a great day"
	return Input{
		Transcription: events.CallTranscribedPayload{
			CallID:   "call-1",
			FullText: fullText,
			Language: "en",
			Segments: []events.Segment{
				{Speaker: events.SpeakerAgent, StartTime: 0, EndTime: 3, Text: "thank you for calling how can i help"},
				{Speaker: events.SpeakerCustomer, StartTime: 3, EndTime: 5, Text: "i have a question about my plan"},
				{Speaker: events.SpeakerAgent, StartTime: 5, EndTime: 9, Text: "i understand your question is there anything else"},
				{Speaker: events.SpeakerAgent, StartTime: 9, EndTime: 11, Text: "have a great day"},
			},
		},
		Sentiment: events.SentimentAnalyzedPayload{
			CallID:           "call-1",
			OverallSentiment: events.SentimentPositive,
			SentimentScore:   0.8,
		},
		Voc: events.VocAnalyzedPayload{
			CallID:               "call-1",
			PrimaryIntent:        events.IntentInquiry,
			CustomerSatisfaction: events.SatisfactionHigh,
			PredictedChurnRisk:   0.2,
		},
	}
}

func TestScorer_HappyPath(t *testing.T) {
	scorer := NewScorer(config.DefaultScoringConfig())

	out := scorer.Score(nil, happyInput())

	assert.Equal(t, 100, out.ScriptAdherence)
	assert.Equal(t, 90, out.CustomerService)
	assert.Equal(t, 90, out.ResolutionEffectiveness)
	assert.GreaterOrEqual(t, out.OverallScore, 80)
	assert.LessOrEqual(t, out.OverallScore, 100)
	assert.Equal(t, events.ComplianceStatusPassed, out.ComplianceStatus)
	assert.False(t, out.FlagsForReview)
	assert.Empty(t, out.Violations)
}

func TestScorer_CriticalViolationForcesFailed(t *testing.T) {
	scorer := NewScorer(config.DefaultScoringConfig())
	rule := Rule{
		ID:       "r-prohibited",
		Name:     "no insults",
		Severity: events.SeverityCritical,
		IsActive: true,
		Definition: map[string]interface{}{
			"type":    KindProhibitedWords,
			"words":   []interface{}{"stupid"},
			"speaker": "agent",
		},
	}

	in := happyInput()
	in.Transcription.Segments = append(in.Transcription.Segments, events.Segment{
		Speaker: events.SpeakerAgent, StartTime: 11, EndTime: 13, Text: "That's a stupid question.",
	})

	out := scorer.Score([]Rule{rule}, in)
	require.Len(t, out.Violations, 1)
	assert.Equal(t, "r-prohibited", out.Violations[0].RuleID)
	require.NotNil(t, out.Violations[0].TimestampInCall)
	assert.InDelta(t, 11, *out.Violations[0].TimestampInCall, 1e-9)
	assert.Equal(t, "That's a stupid question.", out.Violations[0].Evidence)

	// The score itself is still high; the critical violation overrides it.
	assert.GreaterOrEqual(t, out.OverallScore, 80)
	assert.Equal(t, events.ComplianceStatusFailed, out.ComplianceStatus)
	assert.True(t, out.FlagsForReview)
}

func TestScorer_SubscoreFormulas(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	scorer := NewScorer(cfg)

	t.Run("script adherence penalizes each missing phrase", func(t *testing.T) {
		in := happyInput()
		in.Transcription.FullText = "how can i help you today"
		in.Transcription.Segments = nil
		out := scorer.Score(nil, in)
		// Three of the four expected phrases missing at 15 each.
		assert.Equal(t, 55, out.ScriptAdherence)
	})

	t.Run("negative sentiment and escalation reduce service", func(t *testing.T) {
		in := happyInput()
		in.Sentiment.SentimentScore = -0.5
		in.Sentiment.EscalationDetected = true
		out := scorer.Score(nil, in)
		// base 80 + empathy 10 - 20*0.5 - escalation 15
		assert.Equal(t, 65, out.CustomerService)
	})

	t.Run("unresolved complaint with high churn", func(t *testing.T) {
		in := happyInput()
		in.Voc.CustomerSatisfaction = events.SatisfactionLow
		in.Voc.PrimaryIntent = events.IntentComplaint
		in.Voc.ActionableItems = nil
		in.Voc.PredictedChurnRisk = 0.9
		out := scorer.Score(nil, in)
		// baseline 40 - complaint 15 - 50*(0.9-0.7)
		assert.Equal(t, 15, out.ResolutionEffectiveness)
	})

	t.Run("complaint with actionable items keeps baseline", func(t *testing.T) {
		in := happyInput()
		in.Voc.PrimaryIntent = events.IntentComplaint
		in.Voc.ActionableItems = []string{"refund review"}
		out := scorer.Score(nil, in)
		assert.Equal(t, 90, out.ResolutionEffectiveness)
	})

	t.Run("compliment earns bonus", func(t *testing.T) {
		in := happyInput()
		in.Voc.PrimaryIntent = events.IntentCompliment
		out := scorer.Score(nil, in)
		assert.Equal(t, 100, out.ResolutionEffectiveness)
	})
}

func TestScorer_Clamping(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	scorer := NewScorer(cfg)

	in := happyInput()
	in.Transcription.FullText = "nothing from the script"
	in.Transcription.Segments = nil
	in.Sentiment.SentimentScore = -1
	in.Sentiment.EscalationDetected = true
	in.Voc.CustomerSatisfaction = events.SatisfactionLow
	in.Voc.PrimaryIntent = events.IntentComplaint
	in.Voc.PredictedChurnRisk = 1

	out := scorer.Score(nil, in)
	assert.GreaterOrEqual(t, out.ScriptAdherence, 0)
	assert.GreaterOrEqual(t, out.CustomerService, 0)
	assert.GreaterOrEqual(t, out.ResolutionEffectiveness, 0)
	assert.Equal(t, events.ComplianceStatusFailed, out.ComplianceStatus)
}

func TestScorer_ThresholdBoundaries(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	scorer := NewScorer(cfg)

	// A score exactly on a threshold maps to the stricter status.
	status, _ := scorer.status(cfg.PassThreshold, nil)
	assert.Equal(t, events.ComplianceStatusReviewRequired, status)
	status, _ = scorer.status(cfg.PassThreshold+1, nil)
	assert.Equal(t, events.ComplianceStatusPassed, status)
	status, _ = scorer.status(cfg.FailThreshold, nil)
	assert.Equal(t, events.ComplianceStatusFailed, status)
	status, _ = scorer.status(cfg.FailThreshold+1, nil)
	assert.Equal(t, events.ComplianceStatusReviewRequired, status)
}

func TestScorer_EmptySegmentsStillScores(t *testing.T) {
	scorer := NewScorer(config.DefaultScoringConfig())
	in := happyInput()
	in.Transcription.Segments = nil

	out := scorer.Score(nil, in)
	assert.Equal(t, 100, out.ScriptAdherence)
	// The empathy cue is found in the full text fallback.
	assert.Equal(t, 90, out.CustomerService)
	assert.Equal(t, events.ComplianceStatusPassed, out.ComplianceStatus)
}

func TestScorer_IsPure(t *testing.T) {
	scorer := NewScorer(config.DefaultScoringConfig())
	rule := Rule{
		ID:       "r-greeting",
		Name:     "greeting required",
		Severity: events.SeverityMedium,
		IsActive: true,
		Definition: map[string]interface{}{
			"type":     KindKeywordCheck,
			"keywords": []interface{}{"thank you for calling"},
			"speaker":  "agent",
		},
	}

	in := happyInput()
	first := scorer.Score([]Rule{rule}, in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, scorer.Score([]Rule{rule}, in))
	}
}
