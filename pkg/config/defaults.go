package config

import "time"

// DefaultPipelineConfig returns the built-in consumer runtime defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		Topics: TopicsConfig{
			Received:          "calls.received",
			Transcribed:       "calls.transcribed",
			SentimentAnalyzed: "calls.sentiment-analyzed",
			VocAnalyzed:       "calls.voc-analyzed",
			Audited:           "calls.audited",
		},
		Groups: GroupsConfig{
			Transcribe: "callsight-transcribe",
			Sentiment:  "callsight-sentiment",
			Voc:        "callsight-voc",
			Audit:      "callsight-audit",
			Analytics:  "callsight-analytics",
			Notify:     "callsight-notify",
		},
		DLQSuffix:      ".dlq",
		MaxAttempts:    5,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
		DrainTimeout:   30 * time.Second,
		RPCTimeout:     2 * time.Minute,
	}
}

// DefaultCorrelatorConfig returns the built-in correlator defaults.
func DefaultCorrelatorConfig() *CorrelatorConfig {
	return &CorrelatorConfig{
		TTL:           10 * time.Minute,
		SweepInterval: 30 * time.Second,
	}
}

// DefaultAggregatorConfig returns the built-in aggregator defaults.
func DefaultAggregatorConfig() *AggregatorConfig {
	return &AggregatorConfig{
		FlushInterval: 5 * time.Minute,
		DedupTTL:      time.Hour,
		KeyPrefix:     "callsight:agg",
	}
}

// DefaultScoringConfig returns the built-in scoring defaults.
// Weights: script 30%, service 40%, resolution 30%. Pass at 70, fail
// below 50.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		ScriptWeight:     0.30,
		ServiceWeight:    0.40,
		ResolutionWeight: 0.30,
		PassThreshold:    70,
		FailThreshold:    50,
		ExpectedPhrases: []ExpectedPhrase{
			{Phrase: "thank you for calling", Penalty: 15},
			{Phrase: "how can i help", Penalty: 15},
			{Phrase: "is there anything else", Penalty: 15},
			{Phrase: "have a great day", Penalty: 15},
		},
		EmpathyCues: []string{
			"i understand", "i'm sorry", "i apologize", "i hear you",
		},
		EmpathyBonus:      10,
		NegativePenalty:   20,
		EscalationPenalty: 15,
		ComplimentBonus:   10,
		ComplaintPenalty:  15,
		ChurnPenaltyFloor: 0.7,
		ChurnPenaltyScale: 50,
	}
}

// DefaultAlertConfig returns the built-in alert engine defaults.
func DefaultAlertConfig() *AlertConfig {
	return &AlertConfig{
		EscalationEnabled:     true,
		ChurnThreshold:        0.7,
		HighChurnThreshold:    0.8,
		ComplianceFloor:       0.6,
		VeryLowCompliance:     0.5,
		CriticalThemesForHigh: 3,
		CriticalThemes:        []string{"cancellation", "legal", "fraud", "outage"},
		Supervisor: Recipient{
			Email:       "supervisor@example.com",
			ChatChannel: "#call-quality",
		},
		Manager: Recipient{
			Email:       "manager@example.com",
			ChatChannel: "#call-quality-escalations",
		},
	}
}

// DefaultNotificationConfig returns the built-in delivery defaults.
func DefaultNotificationConfig() *NotificationConfig {
	return &NotificationConfig{
		SMTPHost: "localhost",
		SMTPPort: 25,
		SMTPFrom: "callsight@example.com",
	}
}
