// Package projector maintains the per-stage read models: each pipeline
// event is projected into its own PostgreSQL table, keyed by call id. All
// writes are idempotent under at-least-once delivery; a redelivered event
// leaves the store unchanged.
package projector

import (
	"context"
	"fmt"
	"time"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/ent/call"
)

// CallService manages call registration and pipeline status progression
type CallService struct {
	client *ent.Client
}

// NewCallService creates a new CallService
func NewCallService(client *ent.Client) *CallService {
	return &CallService{client: client}
}

// RegisterCallParams carries the fields recorded at ingestion.
type RegisterCallParams struct {
	CallID        string
	CallerID      string
	AgentID       string
	Channel       string
	AudioKey      string
	FileFormat    string
	FileSizeBytes int64
	Duration      *float64
	StartTime     time.Time
	CorrelationID string
}

// statusRank orders the pipeline progress marker so that status updates
// only ever move forward, even when events are redelivered out of order.
var statusRank = map[call.Status]int{
	call.StatusReceived:    0,
	call.StatusTranscribed: 1,
	call.StatusAnalyzed:    2,
	call.StatusAudited:     3,
}

// RegisterCall records a newly ingested call. Registering the same call id
// twice returns ErrAlreadyExists.
func (s *CallService) RegisterCall(httpCtx context.Context, params RegisterCallParams) (*ent.Call, error) {
	if params.CallID == "" {
		return nil, NewValidationError("call_id", "required")
	}
	if params.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if params.AudioKey == "" {
		return nil, NewValidationError("audio_key", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.Call.Create().
		SetID(params.CallID).
		SetCallerID(params.CallerID).
		SetAgentID(params.AgentID).
		SetChannel(params.Channel).
		SetAudioKey(params.AudioKey).
		SetFileFormat(params.FileFormat).
		SetFileSizeBytes(params.FileSizeBytes).
		SetStartTime(params.StartTime).
		SetStatus(call.StatusReceived).
		SetCorrelationID(params.CorrelationID)
	if params.Duration != nil {
		builder.SetDuration(*params.Duration)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to register call: %w", err)
	}
	return c, nil
}

// GetCall returns the call row or ErrNotFound.
func (s *CallService) GetCall(ctx context.Context, callID string) (*ent.Call, error) {
	c, err := s.client.Call.Get(ctx, callID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get call %s: %w", callID, err)
	}
	return c, nil
}

// AdvanceStatus moves the call's progress marker forward. A status at or
// behind the current one is a no-op, so redelivered and reordered events
// cannot regress the marker. A missing call row is also a no-op: the marker
// is best-effort and must not fail the stage.
func (s *CallService) AdvanceStatus(ctx context.Context, callID string, status call.Status) error {
	rank, ok := statusRank[status]
	if !ok {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	var behind []call.Status
	for st, r := range statusRank {
		if r < rank {
			behind = append(behind, st)
		}
	}

	_, err := s.client.Call.Update().
		Where(call.ID(callID), call.StatusIn(behind...)).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance status for call %s: %w", callID, err)
	}
	return nil
}

// ListCalls returns calls for one agent ordered by start time descending.
func (s *CallService) ListCalls(ctx context.Context, agentID string, limit int) ([]*ent.Call, error) {
	if limit <= 0 {
		limit = 50
	}
	q := s.client.Call.Query().
		Order(ent.Desc(call.FieldStartTime)).
		Limit(limit)
	if agentID != "" {
		q = q.Where(call.AgentID(agentID))
	}
	calls, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}
	return calls, nil
}
