package audit

import (
	"math"
	"strings"

	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
)

const customerServiceBase = 80

// Satisfaction baselines for the resolutionEffectiveness subscore.
var satisfactionBaseline = map[string]int{
	events.SatisfactionHigh:   90,
	events.SatisfactionMedium: 70,
	events.SatisfactionLow:    40,
}

// Outcome is the complete scoring result for one call.
type Outcome struct {
	OverallScore            int
	ComplianceStatus        string
	ScriptAdherence         int
	CustomerService         int
	ResolutionEffectiveness int
	FlagsForReview          bool
	ReviewReason            string
	Violations              []events.Violation
}

// Scorer computes the three compliance subscores and the overall status.
// Scoring is pure: the same fused context and rules always produce the same
// outcome, which is what makes audit replay idempotent.
type Scorer struct {
	cfg *config.ScoringConfig
}

// NewScorer creates a scorer with the given tunables.
func NewScorer(cfg *config.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score evaluates the rules and computes the audit outcome for one call.
func (s *Scorer) Score(rules []Rule, in Input) Outcome {
	violations := Evaluate(rules, in)

	script := s.scriptAdherence(in)
	service := s.customerService(in)
	resolution := s.resolutionEffectiveness(in)

	overall := int(math.Round(
		float64(script)*s.cfg.ScriptWeight +
			float64(service)*s.cfg.ServiceWeight +
			float64(resolution)*s.cfg.ResolutionWeight))
	overall = clamp(overall)

	status, reason := s.status(overall, violations)

	return Outcome{
		OverallScore:            overall,
		ComplianceStatus:        status,
		ScriptAdherence:         script,
		CustomerService:         service,
		ResolutionEffectiveness: resolution,
		FlagsForReview:          status != events.ComplianceStatusPassed,
		ReviewReason:            reason,
		Violations:              violations,
	}
}

// scriptAdherence starts at 100 and subtracts each expected phrase's
// penalty when the phrase is absent from the full text.
func (s *Scorer) scriptAdherence(in Input) int {
	score := 100
	text := strings.ToLower(in.Transcription.FullText)
	for _, expected := range s.cfg.ExpectedPhrases {
		if !strings.Contains(text, strings.ToLower(expected.Phrase)) {
			score -= expected.Penalty
		}
	}
	return clamp(score)
}

// customerService starts at the fixed base, credits empathy cues in agent
// speech, and penalizes negative overall sentiment and detected escalation.
// Without segments the full text stands in for agent speech.
func (s *Scorer) customerService(in Input) int {
	score := customerServiceBase

	if containsAny(s.agentText(in), s.cfg.EmpathyCues) {
		score += s.cfg.EmpathyBonus
	}
	if in.Sentiment.SentimentScore < 0 {
		score -= int(math.Round(float64(s.cfg.NegativePenalty) * -in.Sentiment.SentimentScore))
	}
	if in.Sentiment.EscalationDetected {
		score -= s.cfg.EscalationPenalty
	}
	return clamp(score)
}

// resolutionEffectiveness starts from the satisfaction baseline, adjusts
// for intent, and penalizes churn risk above the configured floor.
func (s *Scorer) resolutionEffectiveness(in Input) int {
	score, ok := satisfactionBaseline[in.Voc.CustomerSatisfaction]
	if !ok {
		score = satisfactionBaseline[events.SatisfactionMedium]
	}

	switch in.Voc.PrimaryIntent {
	case events.IntentCompliment:
		score += s.cfg.ComplimentBonus
	case events.IntentComplaint:
		if len(in.Voc.ActionableItems) == 0 {
			score -= s.cfg.ComplaintPenalty
		}
	}

	if excess := in.Voc.PredictedChurnRisk - s.cfg.ChurnPenaltyFloor; excess > 0 {
		score -= int(math.Round(s.cfg.ChurnPenaltyScale * excess))
	}
	return clamp(score)
}

// status maps the overall score and violations to a compliance status. A
// critical violation forces failed regardless of score. A score exactly on
// a threshold takes the stricter side.
func (s *Scorer) status(overall int, violations []events.Violation) (string, string) {
	for _, v := range violations {
		if v.Severity == events.SeverityCritical {
			return events.ComplianceStatusFailed, "critical violation: " + v.RuleName
		}
	}
	switch {
	case overall <= s.cfg.FailThreshold:
		return events.ComplianceStatusFailed, "overall score below fail threshold"
	case overall > s.cfg.PassThreshold:
		return events.ComplianceStatusPassed, ""
	default:
		return events.ComplianceStatusReviewRequired, "overall score in review band"
	}
}

func (s *Scorer) agentText(in Input) string {
	if len(in.Transcription.Segments) == 0 {
		return in.Transcription.FullText
	}
	var b strings.Builder
	for _, seg := range in.Transcription.Segments {
		if seg.Speaker == events.SpeakerAgent {
			b.WriteString(seg.Text)
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
