package projector

import (
	"context"
	"fmt"
	"time"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/ent/transcription"
	"github.com/callsight/callsight/ent/transcriptsegment"
	"github.com/callsight/callsight/pkg/events"
	"github.com/google/uuid"
)

// TranscriptionService projects CallTranscribed events into the
// transcriptions and transcript_segments tables.
type TranscriptionService struct {
	client *ent.Client
}

// NewTranscriptionService creates a new TranscriptionService
func NewTranscriptionService(client *ent.Client) *TranscriptionService {
	return &TranscriptionService{client: client}
}

// Project writes the transcription row and its segments in one transaction.
// The unique call_id column enforces once-per-call: a redelivered event
// finds the existing row (or loses the insert race) and reports created =
// false without touching the store.
func (s *TranscriptionService) Project(httpCtx context.Context, env events.Envelope, p events.CallTranscribedPayload) (bool, error) {
	if p.CallID == "" {
		return false, NewValidationError("callId", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	exists, err := s.client.Transcription.Query().
		Where(transcription.CallID(p.CallID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check transcription for call %s: %w", p.CallID, err)
	}
	if exists {
		return false, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	transcriptionID := uuid.New().String()
	row, err := tx.Transcription.Create().
		SetID(transcriptionID).
		SetCallID(p.CallID).
		SetFullText(p.FullText).
		SetLanguage(p.Language).
		SetConfidence(p.Confidence).
		SetWordCount(p.WordCount).
		SetEventID(env.EventID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race against a concurrent replica; the winner's row
			// is equivalent.
			return false, nil
		}
		return false, fmt.Errorf("failed to create transcription for call %s: %w", p.CallID, err)
	}

	for i, seg := range p.Segments {
		builder := tx.TranscriptSegment.Create().
			SetID(uuid.New().String()).
			SetTranscriptionID(row.ID).
			SetPosition(i).
			SetSpeaker(transcriptsegment.Speaker(seg.Speaker)).
			SetStartTime(seg.StartTime).
			SetEndTime(seg.EndTime).
			SetText(seg.Text)
		if seg.Confidence != nil {
			builder.SetConfidence(*seg.Confidence)
		}
		if _, err := builder.Save(ctx); err != nil {
			return false, fmt.Errorf("failed to create segment %d for call %s: %w", i, p.CallID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transcription for call %s: %w", p.CallID, err)
	}
	return true, nil
}

// GetByCallID returns the transcription with its segments in order, or
// ErrNotFound.
func (s *TranscriptionService) GetByCallID(ctx context.Context, callID string) (*ent.Transcription, error) {
	row, err := s.client.Transcription.Query().
		Where(transcription.CallID(callID)).
		WithSegments(func(q *ent.TranscriptSegmentQuery) {
			q.Order(ent.Asc(transcriptsegment.FieldPosition))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transcription for call %s: %w", callID, err)
	}
	return row, nil
}
