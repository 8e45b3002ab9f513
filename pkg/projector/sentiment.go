package projector

import (
	"context"
	"fmt"
	"time"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/ent/sentimentanalysis"
	"github.com/callsight/callsight/pkg/events"
	"github.com/google/uuid"
)

// SentimentService projects SentimentAnalyzed events into the
// sentiment_analyses table.
type SentimentService struct {
	client *ent.Client
}

// NewSentimentService creates a new SentimentService
func NewSentimentService(client *ent.Client) *SentimentService {
	return &SentimentService{client: client}
}

// Project writes the per-call sentiment row. Once-per-call is enforced by
// the unique call_id column; replays report created = false.
func (s *SentimentService) Project(httpCtx context.Context, env events.Envelope, p events.SentimentAnalyzedPayload) (bool, error) {
	if p.CallID == "" {
		return false, NewValidationError("callId", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	exists, err := s.client.SentimentAnalysis.Query().
		Where(sentimentanalysis.CallID(p.CallID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check sentiment for call %s: %w", p.CallID, err)
	}
	if exists {
		return false, nil
	}

	builder := s.client.SentimentAnalysis.Create().
		SetID(uuid.New().String()).
		SetCallID(p.CallID).
		SetOverallSentiment(sentimentanalysis.OverallSentiment(p.OverallSentiment)).
		SetSentimentScore(p.SentimentScore).
		SetEscalationDetected(p.EscalationDetected).
		SetSegmentSentiments(segmentSentimentsJSON(p.SegmentSentiments)).
		SetProcessingTimeMs(p.ProcessingTimeMs).
		SetEventID(env.EventID)
	if p.EscalationDetails != nil {
		builder.SetEscalationDetails(map[string]float64{
			"maxDrop":   p.EscalationDetails.MaxDrop,
			"fromScore": p.EscalationDetails.FromScore,
			"toScore":   p.EscalationDetails.ToScore,
		})
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create sentiment for call %s: %w", p.CallID, err)
	}
	return true, nil
}

// GetByCallID returns the sentiment row or ErrNotFound.
func (s *SentimentService) GetByCallID(ctx context.Context, callID string) (*ent.SentimentAnalysis, error) {
	row, err := s.client.SentimentAnalysis.Query().
		Where(sentimentanalysis.CallID(callID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sentiment for call %s: %w", callID, err)
	}
	return row, nil
}

// segmentSentimentsJSON flattens per-segment sentiments into the stored
// JSON shape. The column is read back whole, never queried per field.
func segmentSentimentsJSON(segments []events.SegmentSentiment) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(segments))
	for _, seg := range segments {
		entry := map[string]interface{}{
			"startTime": seg.StartTime,
			"endTime":   seg.EndTime,
			"sentiment": seg.Sentiment,
			"score":     seg.Score,
			"speaker":   seg.Speaker,
		}
		if len(seg.Emotions) > 0 {
			entry["emotions"] = seg.Emotions
		}
		out = append(out, entry)
	}
	return out
}
