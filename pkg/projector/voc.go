package projector

import (
	"context"
	"fmt"
	"time"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/ent/vocinsight"
	"github.com/callsight/callsight/pkg/events"
	"github.com/google/uuid"
)

// VocService projects VocAnalyzed events into the voc_insights table.
type VocService struct {
	client *ent.Client
}

// NewVocService creates a new VocService
func NewVocService(client *ent.Client) *VocService {
	return &VocService{client: client}
}

// Project writes the per-call VoC row. Once-per-call is enforced by the
// unique call_id column; replays report created = false.
func (s *VocService) Project(httpCtx context.Context, env events.Envelope, p events.VocAnalyzedPayload) (bool, error) {
	if p.CallID == "" {
		return false, NewValidationError("callId", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	exists, err := s.client.VocInsight.Query().
		Where(vocinsight.CallID(p.CallID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check voc insight for call %s: %w", p.CallID, err)
	}
	if exists {
		return false, nil
	}

	_, err = s.client.VocInsight.Create().
		SetID(uuid.New().String()).
		SetCallID(p.CallID).
		SetPrimaryIntent(vocinsight.PrimaryIntent(p.PrimaryIntent)).
		SetTopics(p.Topics).
		SetKeywords(p.Keywords).
		SetCustomerSatisfaction(vocinsight.CustomerSatisfaction(p.CustomerSatisfaction)).
		SetPredictedChurnRisk(p.PredictedChurnRisk).
		SetActionableItems(p.ActionableItems).
		SetSummary(p.Summary).
		SetEventID(env.EventID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create voc insight for call %s: %w", p.CallID, err)
	}
	return true, nil
}

// GetByCallID returns the VoC row or ErrNotFound.
func (s *VocService) GetByCallID(ctx context.Context, callID string) (*ent.VocInsight, error) {
	row, err := s.client.VocInsight.Query().
		Where(vocinsight.CallID(callID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get voc insight for call %s: %w", callID, err)
	}
	return row, nil
}
