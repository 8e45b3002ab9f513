package audit

import (
	"context"
	"testing"

	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/pkg/events"
	"github.com/callsight/callsight/pkg/projector"
	testdb "github.com/callsight/callsight/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleService_CRUD(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRuleService(client.Client)
	ctx := context.Background()

	def := map[string]interface{}{
		"type":    KindProhibitedWords,
		"words":   []interface{}{"stupid"},
		"speaker": "agent",
	}

	rule, err := svc.CreateRule(ctx, CreateRuleParams{
		Name:       "no insults",
		Category:   "conduct",
		Severity:   events.SeverityCritical,
		Definition: def,
	})
	require.NoError(t, err)
	assert.True(t, rule.IsActive)

	t.Run("duplicate name", func(t *testing.T) {
		_, err := svc.CreateRule(ctx, CreateRuleParams{
			Name:       "no insults",
			Category:   "conduct",
			Severity:   events.SeverityLow,
			Definition: def,
		})
		assert.ErrorIs(t, err, projector.ErrAlreadyExists)
	})

	t.Run("invalid definition", func(t *testing.T) {
		_, err := svc.CreateRule(ctx, CreateRuleParams{
			Name:       "broken",
			Severity:   events.SeverityLow,
			Definition: map[string]interface{}{"type": KindKeywordCheck},
		})
		assert.True(t, IsRuleDefinitionError(err))
	})

	t.Run("invalid severity", func(t *testing.T) {
		_, err := svc.CreateRule(ctx, CreateRuleParams{
			Name:       "bad severity",
			Severity:   "catastrophic",
			Definition: def,
		})
		assert.True(t, projector.IsValidationError(err))
	})

	t.Run("active rules reflect updates", func(t *testing.T) {
		active, err := svc.ActiveRules(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, rule.ID, active[0].ID)

		inactive := false
		_, err = svc.UpdateRule(ctx, rule.ID, UpdateRuleParams{IsActive: &inactive})
		require.NoError(t, err)

		active, err = svc.ActiveRules(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("get and delete", func(t *testing.T) {
		got, err := svc.GetRule(ctx, rule.ID)
		require.NoError(t, err)
		assert.Equal(t, "no insults", got.Name)

		require.NoError(t, svc.DeleteRule(ctx, rule.ID))
		_, err = svc.GetRule(ctx, rule.ID)
		assert.ErrorIs(t, err, projector.ErrNotFound)
		assert.ErrorIs(t, svc.DeleteRule(ctx, rule.ID), projector.ErrNotFound)
	})
}

func TestResultService_Persist(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResultService(client.Client)
	ctx := context.Background()

	callID := uuid.New().String()
	at := 11.0
	outcome := Outcome{
		OverallScore:            44,
		ComplianceStatus:        events.ComplianceStatusFailed,
		ScriptAdherence:         55,
		CustomerService:         40,
		ResolutionEffectiveness: 38,
		FlagsForReview:          true,
		ReviewReason:            "critical violation: no insults",
		Violations: []events.Violation{{
			RuleID:          "r-1",
			RuleName:        "no insults",
			Severity:        events.SeverityCritical,
			Description:     `prohibited word "stupid" used`,
			TimestampInCall: &at,
			Evidence:        "That's a stupid question.",
		}},
	}

	created, err := svc.Persist(ctx, callID, uuid.New().String(), outcome, 42)
	require.NoError(t, err)
	assert.True(t, created)

	row, err := svc.GetByCallID(ctx, callID)
	require.NoError(t, err)
	assert.Equal(t, 44, row.OverallScore)
	assert.Equal(t, auditresult.ComplianceStatusFailed, row.ComplianceStatus)
	require.NotNil(t, row.ReviewReason)
	assert.Equal(t, "critical violation: no insults", *row.ReviewReason)
	require.Len(t, row.Edges.Violations, 1)
	assert.Equal(t, "no insults", row.Edges.Violations[0].RuleName)

	// A replayed audit must not create a second row or duplicate violations.
	created, err = svc.Persist(ctx, callID, uuid.New().String(), outcome, 42)
	require.NoError(t, err)
	assert.False(t, created)

	row, err = svc.GetByCallID(ctx, callID)
	require.NoError(t, err)
	assert.Len(t, row.Edges.Violations, 1)

	t.Run("flagged listing", func(t *testing.T) {
		flagged, err := svc.ListFlagged(ctx, 10)
		require.NoError(t, err)
		require.Len(t, flagged, 1)
		assert.Equal(t, callID, flagged[0].CallID)
	})

	t.Run("missing call", func(t *testing.T) {
		_, err := svc.GetByCallID(ctx, "no-such-call")
		assert.ErrorIs(t, err, projector.ErrNotFound)
	})
}
