package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/ent/compliancerule"
	"github.com/callsight/callsight/pkg/projector"
	"github.com/google/uuid"
)

// RuleService manages the compliance rule catalog.
type RuleService struct {
	client *ent.Client
}

// NewRuleService creates a new RuleService
func NewRuleService(client *ent.Client) *RuleService {
	return &RuleService{client: client}
}

// CreateRuleParams carries the fields of a new rule.
type CreateRuleParams struct {
	Name       string
	Category   string
	Severity   string
	IsActive   *bool
	Definition map[string]interface{}
}

// CreateRule validates and stores a new rule. Duplicate names return
// ErrAlreadyExists.
func (s *RuleService) CreateRule(httpCtx context.Context, params CreateRuleParams) (*ent.ComplianceRule, error) {
	if params.Name == "" {
		return nil, projector.NewValidationError("name", "required")
	}
	if params.Severity == "" {
		return nil, projector.NewValidationError("severity", "required")
	}
	if err := compliancerule.SeverityValidator(compliancerule.Severity(params.Severity)); err != nil {
		return nil, projector.NewValidationError("severity", "must be one of low, medium, high, critical")
	}
	if err := ValidateDefinition(params.Definition); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.ComplianceRule.Create().
		SetID(uuid.New().String()).
		SetName(params.Name).
		SetCategory(params.Category).
		SetSeverity(compliancerule.Severity(params.Severity)).
		SetDefinition(params.Definition)
	if params.IsActive != nil {
		builder.SetIsActive(*params.IsActive)
	}

	rule, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, projector.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}
	return rule, nil
}

// GetRule returns one rule or ErrNotFound.
func (s *RuleService) GetRule(ctx context.Context, ruleID string) (*ent.ComplianceRule, error) {
	rule, err := s.client.ComplianceRule.Get(ctx, ruleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, projector.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rule %s: %w", ruleID, err)
	}
	return rule, nil
}

// ListRules returns the whole catalog ordered by name.
func (s *RuleService) ListRules(ctx context.Context) ([]*ent.ComplianceRule, error) {
	rules, err := s.client.ComplianceRule.Query().
		Order(ent.Asc(compliancerule.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

// ActiveRules returns the active rules in evaluation form.
func (s *RuleService) ActiveRules(ctx context.Context) ([]Rule, error) {
	rows, err := s.client.ComplianceRule.Query().
		Where(compliancerule.IsActive(true)).
		Order(ent.Asc(compliancerule.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active rules: %w", err)
	}
	rules := make([]Rule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, RuleFromEnt(row))
	}
	return rules, nil
}

// UpdateRuleParams carries the mutable rule fields; nil means unchanged.
type UpdateRuleParams struct {
	Category   *string
	Severity   *string
	IsActive   *bool
	Definition map[string]interface{}
}

// UpdateRule applies a partial update.
func (s *RuleService) UpdateRule(httpCtx context.Context, ruleID string, params UpdateRuleParams) (*ent.ComplianceRule, error) {
	if params.Severity != nil {
		if err := compliancerule.SeverityValidator(compliancerule.Severity(*params.Severity)); err != nil {
			return nil, projector.NewValidationError("severity", "must be one of low, medium, high, critical")
		}
	}
	if params.Definition != nil {
		if err := ValidateDefinition(params.Definition); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.ComplianceRule.UpdateOneID(ruleID).
		SetUpdatedAt(time.Now())
	if params.Category != nil {
		builder.SetCategory(*params.Category)
	}
	if params.Severity != nil {
		builder.SetSeverity(compliancerule.Severity(*params.Severity))
	}
	if params.IsActive != nil {
		builder.SetIsActive(*params.IsActive)
	}
	if params.Definition != nil {
		builder.SetDefinition(params.Definition)
	}

	rule, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, projector.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update rule %s: %w", ruleID, err)
	}
	return rule, nil
}

// DeleteRule removes a rule from the catalog.
func (s *RuleService) DeleteRule(ctx context.Context, ruleID string) error {
	err := s.client.ComplianceRule.DeleteOneID(ruleID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return projector.ErrNotFound
		}
		return fmt.Errorf("failed to delete rule %s: %w", ruleID, err)
	}
	return nil
}
