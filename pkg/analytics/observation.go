// Package analytics maintains the AgentPerformance time series. Post-
// analysis events are reduced to per-agent observations, buffered in Redis
// keyed by (agentId, hour), and periodically flushed into PostgreSQL with a
// null-safe running-average merge.
package analytics

import (
	"time"

	"github.com/callsight/callsight/pkg/events"
)

// hourKeyFormat buckets observations by UTC hour.
const hourKeyFormat = "2006-01-02T15"

// Observation is one event reduced to the metrics it contributes. Metrics
// the event does not carry stay nil and do not disturb the other averages.
type Observation struct {
	EventID      string   `json:"eventId"`
	AgentID      string   `json:"agentId"`
	HourKey      string   `json:"hourKey"`
	Quality      *float64 `json:"quality,omitempty"`
	Sentiment    *float64 `json:"sentiment,omitempty"`
	Satisfaction *float64 `json:"satisfaction,omitempty"`
	ComplianceOK *float64 `json:"complianceOk,omitempty"`
	ChurnRisk    *float64 `json:"churnRisk,omitempty"`
}

// satisfactionValue maps the three-level satisfaction to [0,1] so it can
// be averaged.
var satisfactionValue = map[string]float64{
	events.SatisfactionLow:    0.0,
	events.SatisfactionMedium: 0.5,
	events.SatisfactionHigh:   1.0,
}

// Extract reduces an envelope to an observation. The agent id comes from
// envelope metadata; events without one contribute nothing and ok is
// false. Unrecognized event types also return ok false.
func Extract(env events.Envelope) (Observation, bool) {
	agentID := env.Metadata[events.MetaAgentID]
	if agentID == "" {
		return Observation{}, false
	}

	obs := Observation{
		EventID: env.EventID,
		AgentID: agentID,
		HourKey: env.Timestamp.UTC().Format(hourKeyFormat),
	}

	switch env.EventType {
	case events.EventTypeSentimentAnalyzed:
		var p events.SentimentAnalyzedPayload
		if err := env.DecodePayload(&p); err != nil {
			return Observation{}, false
		}
		obs.Sentiment = &p.SentimentScore

	case events.EventTypeVocAnalyzed:
		var p events.VocAnalyzedPayload
		if err := env.DecodePayload(&p); err != nil {
			return Observation{}, false
		}
		if v, ok := satisfactionValue[p.CustomerSatisfaction]; ok {
			obs.Satisfaction = &v
		}
		obs.ChurnRisk = &p.PredictedChurnRisk

	case events.EventTypeCallAudited:
		var p events.CallAuditedPayload
		if err := env.DecodePayload(&p); err != nil {
			return Observation{}, false
		}
		quality := float64(p.OverallScore) / 100
		obs.Quality = &quality
		passed := 0.0
		if p.ComplianceStatus == events.ComplianceStatusPassed {
			passed = 1.0
		}
		obs.ComplianceOK = &passed

	default:
		return Observation{}, false
	}

	return obs, true
}

// SlotTime parses the hour key back into the bucket start time.
func (o Observation) SlotTime() (time.Time, error) {
	return time.Parse(hourKeyFormat, o.HourKey)
}
