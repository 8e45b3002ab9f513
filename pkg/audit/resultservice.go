package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/ent/complianceviolation"
	"github.com/callsight/callsight/pkg/projector"
	"github.com/google/uuid"
)

// ResultService persists audit outcomes into the audit_results and
// compliance_violations tables.
type ResultService struct {
	client *ent.Client
}

// NewResultService creates a new ResultService
func NewResultService(client *ent.Client) *ResultService {
	return &ResultService{client: client}
}

// Persist writes the audit row and its violations in one transaction. The
// unique call_id column enforces at most one audit per call; a replayed
// audit reports created = false so the caller can skip re-emission side
// effects it has already performed, while still retrying the ones it has
// not.
func (s *ResultService) Persist(httpCtx context.Context, callID, eventID string, out Outcome, processingTimeMs int64) (bool, error) {
	if callID == "" {
		return false, projector.NewValidationError("call_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	exists, err := s.Exists(ctx, callID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.AuditResult.Create().
		SetID(uuid.New().String()).
		SetCallID(callID).
		SetOverallScore(out.OverallScore).
		SetComplianceStatus(auditresult.ComplianceStatus(out.ComplianceStatus)).
		SetScriptAdherence(out.ScriptAdherence).
		SetCustomerService(out.CustomerService).
		SetResolutionEffectiveness(out.ResolutionEffectiveness).
		SetFlagsForReview(out.FlagsForReview).
		SetProcessingTimeMs(processingTimeMs).
		SetEventID(eventID)
	if out.ReviewReason != "" {
		builder.SetReviewReason(out.ReviewReason)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create audit result for call %s: %w", callID, err)
	}

	for _, v := range out.Violations {
		builder := tx.ComplianceViolation.Create().
			SetID(uuid.New().String()).
			SetAuditResultID(row.ID).
			SetRuleID(v.RuleID).
			SetRuleName(v.RuleName).
			SetSeverity(complianceviolation.Severity(v.Severity)).
			SetDescription(v.Description)
		if v.TimestampInCall != nil {
			builder.SetTimestampInCall(*v.TimestampInCall)
		}
		if v.Evidence != "" {
			builder.SetEvidence(v.Evidence)
		}
		if _, err := builder.Save(ctx); err != nil {
			return false, fmt.Errorf("failed to create violation for call %s: %w", callID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit audit result for call %s: %w", callID, err)
	}
	return true, nil
}

// Exists reports whether an audit row has been written for the call.
func (s *ResultService) Exists(ctx context.Context, callID string) (bool, error) {
	exists, err := s.client.AuditResult.Query().
		Where(auditresult.CallID(callID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check audit result for call %s: %w", callID, err)
	}
	return exists, nil
}

// GetByCallID returns the audit row with its violations, or ErrNotFound.
func (s *ResultService) GetByCallID(ctx context.Context, callID string) (*ent.AuditResult, error) {
	row, err := s.client.AuditResult.Query().
		Where(auditresult.CallID(callID)).
		WithViolations().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, projector.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get audit result for call %s: %w", callID, err)
	}
	return row, nil
}

// ListFlagged returns audits flagged for review, newest first.
func (s *ResultService) ListFlagged(ctx context.Context, limit int) ([]*ent.AuditResult, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.AuditResult.Query().
		Where(auditresult.FlagsForReview(true)).
		Order(ent.Desc(auditresult.FieldCreatedAt)).
		Limit(limit).
		WithViolations().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flagged audits: %w", err)
	}
	return rows, nil
}
