// Package notify turns pipeline events into alerts and delivers them. The
// engine decides whether an event warrants an alert, its priority, channel
// and recipients; the dispatcher persists one notification row per
// recipient and attempts delivery.
package notify

import (
	"fmt"
	"strings"

	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
)

// Alert kinds.
const (
	TypeEscalation          = "escalation"
	TypeHighChurn           = "high_churn"
	TypeComplianceViolation = "compliance_violation"
	TypeReviewRequired      = "review_required"
	TypeVocAlert            = "voc_alert"
)

// Priorities, strictest last.
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Delivery channels.
const (
	ChannelEmail   = "email"
	ChannelChat    = "chat"
	ChannelWebhook = "webhook"
)

// Alert is one classified alerting decision, before recipient fan-out.
type Alert struct {
	CallID   string
	Type     string
	Priority string
	Channel  string
	Subject  string
	Body     string
}

// Engine classifies events into alerts.
type Engine struct {
	cfg *config.AlertConfig
}

// NewEngine creates an engine with the given thresholds.
func NewEngine(cfg *config.AlertConfig) *Engine {
	return &Engine{cfg: cfg}
}

// EvaluateSentiment raises an escalation alert when the sentiment stage
// detected one and escalation alerts are enabled.
func (e *Engine) EvaluateSentiment(p events.SentimentAnalyzedPayload) []Alert {
	if !p.EscalationDetected || !e.cfg.EscalationEnabled {
		return nil
	}
	body := fmt.Sprintf("Escalation detected on call %s (overall sentiment %s, score %.2f).",
		p.CallID, p.OverallSentiment, p.SentimentScore)
	if p.EscalationDetails != nil {
		body += fmt.Sprintf(" Largest drop %.2f (%.2f to %.2f).",
			p.EscalationDetails.MaxDrop, p.EscalationDetails.FromScore, p.EscalationDetails.ToScore)
	}
	return []Alert{{
		CallID:   p.CallID,
		Type:     TypeEscalation,
		Priority: PriorityUrgent,
		Channel:  ChannelChat,
		Subject:  "Escalation on call " + p.CallID,
		Body:     body,
	}}
}

// EvaluateVoc raises a high-churn alert at the churn threshold and a VoC
// alert when critical themes surface. Both can fire for one event.
func (e *Engine) EvaluateVoc(p events.VocAnalyzedPayload) []Alert {
	var alerts []Alert

	if p.PredictedChurnRisk >= e.cfg.ChurnThreshold {
		priority := PriorityNormal
		if p.PredictedChurnRisk >= e.cfg.HighChurnThreshold {
			priority = PriorityHigh
		}
		alerts = append(alerts, Alert{
			CallID:   p.CallID,
			Type:     TypeHighChurn,
			Priority: priority,
			Channel:  ChannelEmail,
			Subject:  "High churn risk on call " + p.CallID,
			Body: fmt.Sprintf("Predicted churn risk %.2f on call %s (intent %s, satisfaction %s). Summary: %s",
				p.PredictedChurnRisk, p.CallID, p.PrimaryIntent, p.CustomerSatisfaction, p.Summary),
		})
	}

	if themes := e.criticalThemes(p.Topics); len(themes) > 0 {
		priority := PriorityNormal
		if len(themes) >= e.cfg.CriticalThemesForHigh {
			priority = PriorityHigh
		}
		alerts = append(alerts, Alert{
			CallID:   p.CallID,
			Type:     TypeVocAlert,
			Priority: priority,
			Channel:  ChannelEmail,
			Subject:  "Critical themes on call " + p.CallID,
			Body: fmt.Sprintf("Call %s touched critical themes: %s. Summary: %s",
				p.CallID, strings.Join(themes, ", "), p.Summary),
		})
	}

	return alerts
}

// EvaluateAudit raises a compliance alert for low scores or serious
// violations, and a review alert for anything else flagged for review.
func (e *Engine) EvaluateAudit(p events.CallAuditedPayload) []Alert {
	normalized := float64(p.OverallScore) / 100
	serious := false
	critical := false
	for _, v := range p.Violations {
		switch v.Severity {
		case events.SeverityCritical:
			serious, critical = true, true
		case events.SeverityHigh:
			serious = true
		}
	}

	var alerts []Alert
	if serious || normalized < e.cfg.ComplianceFloor {
		priority := PriorityHigh
		if critical || normalized < e.cfg.VeryLowCompliance {
			priority = PriorityUrgent
		}
		alerts = append(alerts, Alert{
			CallID:   p.CallID,
			Type:     TypeComplianceViolation,
			Priority: priority,
			Channel:  ChannelEmail,
			Subject:  "Compliance failure on call " + p.CallID,
			Body: fmt.Sprintf("Call %s scored %d (%s) with %d violation(s).",
				p.CallID, p.OverallScore, p.ComplianceStatus, len(p.Violations)),
		})
	} else if p.FlagsForReview {
		alerts = append(alerts, Alert{
			CallID:   p.CallID,
			Type:     TypeReviewRequired,
			Priority: PriorityNormal,
			Channel:  ChannelEmail,
			Subject:  "Review required for call " + p.CallID,
			Body: fmt.Sprintf("Call %s scored %d and was flagged for review: %s",
				p.CallID, p.OverallScore, p.ReviewReason),
		})
	}
	return alerts
}

// Recipients resolves the channel-appropriate addresses for one alert. The
// supervisor is always included; the manager joins at high or urgent
// priority and on every escalation.
func (e *Engine) Recipients(a Alert) []string {
	recipients := []string{addressFor(e.cfg.Supervisor, a.Channel)}
	if a.Priority != PriorityNormal || a.Type == TypeEscalation {
		recipients = append(recipients, addressFor(e.cfg.Manager, a.Channel))
	}
	return recipients
}

func (e *Engine) criticalThemes(topics []string) []string {
	var out []string
	for _, topic := range topics {
		for _, critical := range e.cfg.CriticalThemes {
			if strings.EqualFold(topic, critical) {
				out = append(out, topic)
				break
			}
		}
	}
	return out
}

func addressFor(r config.Recipient, channel string) string {
	switch channel {
	case ChannelChat:
		return r.ChatChannel
	case ChannelWebhook:
		return r.WebhookURL
	default:
		return r.Email
	}
}
