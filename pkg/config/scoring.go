package config

// ScoringConfig holds the compliance scorer tunables: subscore weights,
// pass/fail thresholds, the expected-phrase list for script adherence, and
// the empathy cues used by both scoring and the sentiment_response rule.
type ScoringConfig struct {
	// Weights for the overall weighted average. Must sum to 1.0.
	ScriptWeight     float64 `yaml:"script_weight"`
	ServiceWeight    float64 `yaml:"service_weight"`
	ResolutionWeight float64 `yaml:"resolution_weight"`

	// Status thresholds. overallScore above PassThreshold maps to passed;
	// at or below FailThreshold (or any critical violation) maps to
	// failed; the band between maps to review_required. A score exactly on
	// a threshold takes the stricter status.
	PassThreshold int `yaml:"pass_threshold"`
	FailThreshold int `yaml:"fail_threshold"`

	// ExpectedPhrases drive the scriptAdherence subscore: baseline minus
	// Penalty per phrase absent from the full text.
	ExpectedPhrases []ExpectedPhrase `yaml:"expected_phrases"`

	// EmpathyCues earn the customerService bonus when any appears in
	// agent segments.
	EmpathyCues []string `yaml:"empathy_cues"`

	// customerService formula knobs: base 80, plus EmpathyBonus when a cue
	// is present, minus NegativePenalty scaled by how negative the overall
	// sentiment score is, minus EscalationPenalty when escalation was
	// detected.
	EmpathyBonus      int `yaml:"empathy_bonus"`
	NegativePenalty   int `yaml:"negative_penalty"`
	EscalationPenalty int `yaml:"escalation_penalty"`

	// resolutionEffectiveness knobs. Baselines come from customer
	// satisfaction (high/medium/low); ComplimentBonus applies on
	// compliment intent; ComplaintPenalty applies on complaint intent with
	// no actionable items; ChurnPenaltyScale multiplies the churn risk
	// above ChurnPenaltyFloor.
	ComplimentBonus   int     `yaml:"compliment_bonus"`
	ComplaintPenalty  int     `yaml:"complaint_penalty"`
	ChurnPenaltyFloor float64 `yaml:"churn_penalty_floor"`
	ChurnPenaltyScale float64 `yaml:"churn_penalty_scale"`
}

// ExpectedPhrase is one phrase the agent script requires, with the
// scriptAdherence penalty applied when it is missing.
type ExpectedPhrase struct {
	Phrase  string `yaml:"phrase"`
	Penalty int    `yaml:"penalty"`
}

// AlertConfig holds the alert rule engine thresholds.
type AlertConfig struct {
	// EscalationEnabled gates escalation alerts from SentimentAnalyzed.
	EscalationEnabled bool `yaml:"escalation_enabled"`

	// ChurnThreshold triggers a high-churn alert; HighChurnThreshold
	// raises its priority to high.
	ChurnThreshold     float64 `yaml:"churn_threshold"`
	HighChurnThreshold float64 `yaml:"high_churn_threshold"`

	// ComplianceFloor triggers a compliance alert when the normalized
	// audit score falls below it; VeryLowCompliance raises priority to
	// urgent.
	ComplianceFloor   float64 `yaml:"compliance_floor"`
	VeryLowCompliance float64 `yaml:"very_low_compliance"`

	// CriticalThemesForHigh is the critical-theme count that raises a VoC
	// alert to high priority.
	CriticalThemesForHigh int `yaml:"critical_themes_for_high"`

	// CriticalThemes is the topic set treated as critical in VoC insights.
	CriticalThemes []string `yaml:"critical_themes"`

	// Recipients for alert fan-out. The supervisor is always included;
	// the manager is added at high priority or on escalation.
	Supervisor Recipient `yaml:"supervisor"`
	Manager    Recipient `yaml:"manager"`
}

// Recipient holds per-channel addresses for one alert recipient.
type Recipient struct {
	Email       string `yaml:"email"`
	ChatChannel string `yaml:"chat_channel"`
	WebhookURL  string `yaml:"webhook_url"`
}

// NotificationConfig holds delivery-channel settings. Credentials come from
// the environment (SLACK_TOKEN, SMTP_PASSWORD); this holds the rest.
type NotificationConfig struct {
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort int    `yaml:"smtp_port"`
	SMTPFrom string `yaml:"smtp_from"`
}
