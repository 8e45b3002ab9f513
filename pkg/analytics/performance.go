package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/ent/agentperformance"
	"github.com/callsight/callsight/pkg/projector"
)

// PerformanceService answers agent performance queries for the API façade.
type PerformanceService struct {
	client *ent.Client
}

// NewPerformanceService creates a new PerformanceService
func NewPerformanceService(client *ent.Client) *PerformanceService {
	return &PerformanceService{client: client}
}

// ListSlots returns the hourly buckets for one agent within [from, to),
// oldest first.
func (s *PerformanceService) ListSlots(ctx context.Context, agentID string, from, to time.Time) ([]*ent.AgentPerformance, error) {
	if agentID == "" {
		return nil, projector.NewValidationError("agent_id", "required")
	}
	if !to.After(from) {
		return nil, projector.NewValidationError("to", "must be after from")
	}

	rows, err := s.client.AgentPerformance.Query().
		Where(
			agentperformance.AgentID(agentID),
			agentperformance.TimeSlotGTE(from),
			agentperformance.TimeSlotLT(to),
		).
		Order(ent.Asc(agentperformance.FieldTimeSlot)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance slots for agent %s: %w", agentID, err)
	}
	return rows, nil
}
