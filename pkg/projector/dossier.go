package projector

import (
	"context"
	"fmt"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/ent/sentimentanalysis"
	"github.com/callsight/callsight/ent/transcription"
	"github.com/callsight/callsight/ent/transcriptsegment"
	"github.com/callsight/callsight/ent/vocinsight"
)

// Dossier is the assembled view of everything the pipeline has produced for
// one call so far. Sections a stage has not reached yet are nil.
type Dossier struct {
	Call          *ent.Call              `json:"call"`
	Transcription *ent.Transcription     `json:"transcription,omitempty"`
	Sentiment     *ent.SentimentAnalysis `json:"sentiment,omitempty"`
	VocInsight    *ent.VocInsight        `json:"vocInsight,omitempty"`
	AuditResult   *ent.AuditResult       `json:"auditResult,omitempty"`
}

// DossierService assembles the per-call dossier from the stage read models.
type DossierService struct {
	client *ent.Client
}

// NewDossierService creates a new DossierService
func NewDossierService(client *ent.Client) *DossierService {
	return &DossierService{client: client}
}

// GetDossier returns the dossier for one call, or ErrNotFound when the call
// was never registered. Stage tables are joined by call id only; a partial
// dossier is normal while the pipeline is in flight.
func (s *DossierService) GetDossier(ctx context.Context, callID string) (*Dossier, error) {
	c, err := s.client.Call.Get(ctx, callID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get call %s: %w", callID, err)
	}
	d := &Dossier{Call: c}

	d.Transcription, err = s.client.Transcription.Query().
		Where(transcription.CallID(callID)).
		WithSegments(func(q *ent.TranscriptSegmentQuery) {
			q.Order(ent.Asc(transcriptsegment.FieldPosition))
		}).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get transcription for call %s: %w", callID, err)
	}

	d.Sentiment, err = s.client.SentimentAnalysis.Query().
		Where(sentimentanalysis.CallID(callID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get sentiment for call %s: %w", callID, err)
	}

	d.VocInsight, err = s.client.VocInsight.Query().
		Where(vocinsight.CallID(callID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get voc insight for call %s: %w", callID, err)
	}

	d.AuditResult, err = s.client.AuditResult.Query().
		Where(auditresult.CallID(callID)).
		WithViolations().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get audit result for call %s: %w", callID, err)
	}

	return d, nil
}
