package events

// Speaker labels for transcript segments.
const (
	SpeakerAgent    = "agent"
	SpeakerCustomer = "customer"
	SpeakerUnknown  = "unknown"
)

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Primary intent labels (VoC).
const (
	IntentComplaint  = "complaint"
	IntentInquiry    = "inquiry"
	IntentCompliment = "compliment"
	IntentRequest    = "request"
	IntentOther      = "other"
)

// Customer satisfaction levels (VoC).
const (
	SatisfactionLow    = "low"
	SatisfactionMedium = "medium"
	SatisfactionHigh   = "high"
)

// Violation severities.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Compliance statuses.
const (
	ComplianceStatusPassed         = "passed"
	ComplianceStatusReviewRequired = "review_required"
	ComplianceStatusFailed         = "failed"
)

// CallReceivedPayload announces a newly ingested call. FileHandle is the
// object-storage key of the stored audio blob.
type CallReceivedPayload struct {
	CallID        string   `json:"callId"`
	CallerID      string   `json:"callerId"`
	AgentID       string   `json:"agentId"`
	Channel       string   `json:"channel"`
	FileHandle    string   `json:"fileHandle"`
	FileFormat    string   `json:"fileFormat"`
	FileSizeBytes int64    `json:"fileSizeBytes"`
	Duration      *float64 `json:"duration,omitempty"`
	StartTime     string   `json:"startTime"`
}

// Segment is one speaker-separated stretch of transcript. Times are seconds
// from call start with millisecond resolution, monotonically non-decreasing
// and non-overlapping per speaker within rounding.
type Segment struct {
	Speaker    string   `json:"speaker"`
	StartTime  float64  `json:"startTime"`
	EndTime    float64  `json:"endTime"`
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// CallTranscribedPayload carries the verbatim transcription.
type CallTranscribedPayload struct {
	CallID     string    `json:"callId"`
	FullText   string    `json:"fullText"`
	Language   string    `json:"language"`
	Confidence float64   `json:"confidence"`
	WordCount  int       `json:"wordCount"`
	Segments   []Segment `json:"segments"`
}

// SegmentSentiment is the per-segment sentiment classification.
type SegmentSentiment struct {
	StartTime float64            `json:"startTime"`
	EndTime   float64            `json:"endTime"`
	Sentiment string             `json:"sentiment"`
	Score     float64            `json:"score"`
	Emotions  map[string]float64 `json:"emotions,omitempty"`
	Speaker   string             `json:"speaker"`
}

// EscalationDetails describes the sentiment drop that triggered escalation
// detection: the largest score drop between two consecutive segments.
type EscalationDetails struct {
	MaxDrop   float64 `json:"maxDrop"`
	FromScore float64 `json:"fromScore"`
	ToScore   float64 `json:"toScore"`
}

// SentimentAnalyzedPayload carries overall and per-segment sentiment.
type SentimentAnalyzedPayload struct {
	CallID             string             `json:"callId"`
	OverallSentiment   string             `json:"overallSentiment"`
	SentimentScore     float64            `json:"sentimentScore"`
	EscalationDetected bool               `json:"escalationDetected"`
	EscalationDetails  *EscalationDetails `json:"escalationDetails,omitempty"`
	SegmentSentiments  []SegmentSentiment `json:"segmentSentiments"`
	ProcessingTimeMs   int64              `json:"processingTimeMs"`
}

// VocAnalyzedPayload carries Voice-of-Customer insights.
type VocAnalyzedPayload struct {
	CallID               string   `json:"callId"`
	PrimaryIntent        string   `json:"primaryIntent"`
	Topics               []string `json:"topics"`
	Keywords             []string `json:"keywords"`
	CustomerSatisfaction string   `json:"customerSatisfaction"`
	PredictedChurnRisk   float64  `json:"predictedChurnRisk"`
	ActionableItems      []string `json:"actionableItems"`
	Summary              string   `json:"summary"`
}

// Violation is one compliance rule violation found during audit.
type Violation struct {
	RuleID          string   `json:"ruleId"`
	RuleName        string   `json:"ruleName"`
	Severity        string   `json:"severity"`
	Description     string   `json:"description"`
	TimestampInCall *float64 `json:"timestampInCall,omitempty"`
	Evidence        string   `json:"evidence,omitempty"`
}

// CallAuditedPayload carries the compliance audit result. Composite scores
// are integers in 0..100.
type CallAuditedPayload struct {
	CallID                  string      `json:"callId"`
	OverallScore            int         `json:"overallScore"`
	ComplianceStatus        string      `json:"complianceStatus"`
	ScriptAdherence         int         `json:"scriptAdherence"`
	CustomerService         int         `json:"customerService"`
	ResolutionEffectiveness int         `json:"resolutionEffectiveness"`
	FlagsForReview          bool        `json:"flagsForReview"`
	ReviewReason            string      `json:"reviewReason,omitempty"`
	Violations              []Violation `json:"violations"`
	ProcessingTimeMs        int64       `json:"processingTimeMs"`
}
