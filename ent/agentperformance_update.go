// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/agentperformance"
	"github.com/callsight/callsight/ent/predicate"
)

// AgentPerformanceUpdate is the builder for updating AgentPerformance entities.
type AgentPerformanceUpdate struct {
	config
	hooks    []Hook
	mutation *AgentPerformanceMutation
}

// Where appends a list predicates to the AgentPerformanceUpdate builder.
func (_u *AgentPerformanceUpdate) Where(ps ...predicate.AgentPerformance) *AgentPerformanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentPerformanceUpdate) SetAgentID(v string) *AgentPerformanceUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableAgentID(v *string) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetTimeSlot sets the "time_slot" field.
func (_u *AgentPerformanceUpdate) SetTimeSlot(v time.Time) *AgentPerformanceUpdate {
	_u.mutation.SetTimeSlot(v)
	return _u
}

// SetNillableTimeSlot sets the "time_slot" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableTimeSlot(v *time.Time) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetTimeSlot(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *AgentPerformanceUpdate) SetCount(v int) *AgentPerformanceUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableCount(v *int) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *AgentPerformanceUpdate) AddCount(v int) *AgentPerformanceUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// SetAvgQuality sets the "avg_quality" field.
func (_u *AgentPerformanceUpdate) SetAvgQuality(v float64) *AgentPerformanceUpdate {
	_u.mutation.ResetAvgQuality()
	_u.mutation.SetAvgQuality(v)
	return _u
}

// SetNillableAvgQuality sets the "avg_quality" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableAvgQuality(v *float64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetAvgQuality(*v)
	}
	return _u
}

// AddAvgQuality adds value to the "avg_quality" field.
func (_u *AgentPerformanceUpdate) AddAvgQuality(v float64) *AgentPerformanceUpdate {
	_u.mutation.AddAvgQuality(v)
	return _u
}

// ClearAvgQuality clears the value of the "avg_quality" field.
func (_u *AgentPerformanceUpdate) ClearAvgQuality() *AgentPerformanceUpdate {
	_u.mutation.ClearAvgQuality()
	return _u
}

// SetAvgSentiment sets the "avg_sentiment" field.
func (_u *AgentPerformanceUpdate) SetAvgSentiment(v float64) *AgentPerformanceUpdate {
	_u.mutation.ResetAvgSentiment()
	_u.mutation.SetAvgSentiment(v)
	return _u
}

// SetNillableAvgSentiment sets the "avg_sentiment" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableAvgSentiment(v *float64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetAvgSentiment(*v)
	}
	return _u
}

// AddAvgSentiment adds value to the "avg_sentiment" field.
func (_u *AgentPerformanceUpdate) AddAvgSentiment(v float64) *AgentPerformanceUpdate {
	_u.mutation.AddAvgSentiment(v)
	return _u
}

// ClearAvgSentiment clears the value of the "avg_sentiment" field.
func (_u *AgentPerformanceUpdate) ClearAvgSentiment() *AgentPerformanceUpdate {
	_u.mutation.ClearAvgSentiment()
	return _u
}

// SetAvgSatisfaction sets the "avg_satisfaction" field.
func (_u *AgentPerformanceUpdate) SetAvgSatisfaction(v float64) *AgentPerformanceUpdate {
	_u.mutation.ResetAvgSatisfaction()
	_u.mutation.SetAvgSatisfaction(v)
	return _u
}

// SetNillableAvgSatisfaction sets the "avg_satisfaction" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableAvgSatisfaction(v *float64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetAvgSatisfaction(*v)
	}
	return _u
}

// AddAvgSatisfaction adds value to the "avg_satisfaction" field.
func (_u *AgentPerformanceUpdate) AddAvgSatisfaction(v float64) *AgentPerformanceUpdate {
	_u.mutation.AddAvgSatisfaction(v)
	return _u
}

// ClearAvgSatisfaction clears the value of the "avg_satisfaction" field.
func (_u *AgentPerformanceUpdate) ClearAvgSatisfaction() *AgentPerformanceUpdate {
	_u.mutation.ClearAvgSatisfaction()
	return _u
}

// SetAvgCompliancePassRate sets the "avg_compliance_pass_rate" field.
func (_u *AgentPerformanceUpdate) SetAvgCompliancePassRate(v float64) *AgentPerformanceUpdate {
	_u.mutation.ResetAvgCompliancePassRate()
	_u.mutation.SetAvgCompliancePassRate(v)
	return _u
}

// SetNillableAvgCompliancePassRate sets the "avg_compliance_pass_rate" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableAvgCompliancePassRate(v *float64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetAvgCompliancePassRate(*v)
	}
	return _u
}

// AddAvgCompliancePassRate adds value to the "avg_compliance_pass_rate" field.
func (_u *AgentPerformanceUpdate) AddAvgCompliancePassRate(v float64) *AgentPerformanceUpdate {
	_u.mutation.AddAvgCompliancePassRate(v)
	return _u
}

// ClearAvgCompliancePassRate clears the value of the "avg_compliance_pass_rate" field.
func (_u *AgentPerformanceUpdate) ClearAvgCompliancePassRate() *AgentPerformanceUpdate {
	_u.mutation.ClearAvgCompliancePassRate()
	return _u
}

// SetAvgChurnRisk sets the "avg_churn_risk" field.
func (_u *AgentPerformanceUpdate) SetAvgChurnRisk(v float64) *AgentPerformanceUpdate {
	_u.mutation.ResetAvgChurnRisk()
	_u.mutation.SetAvgChurnRisk(v)
	return _u
}

// SetNillableAvgChurnRisk sets the "avg_churn_risk" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableAvgChurnRisk(v *float64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetAvgChurnRisk(*v)
	}
	return _u
}

// AddAvgChurnRisk adds value to the "avg_churn_risk" field.
func (_u *AgentPerformanceUpdate) AddAvgChurnRisk(v float64) *AgentPerformanceUpdate {
	_u.mutation.AddAvgChurnRisk(v)
	return _u
}

// ClearAvgChurnRisk clears the value of the "avg_churn_risk" field.
func (_u *AgentPerformanceUpdate) ClearAvgChurnRisk() *AgentPerformanceUpdate {
	_u.mutation.ClearAvgChurnRisk()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentPerformanceUpdate) SetUpdatedAt(v time.Time) *AgentPerformanceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableUpdatedAt(v *time.Time) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_u *AgentPerformanceUpdate) Mutation() *AgentPerformanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentPerformanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPerformanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentPerformanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPerformanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentPerformanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentperformance.Table, agentperformance.Columns, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentperformance.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSlot(); ok {
		_spec.SetField(agentperformance.FieldTimeSlot, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(agentperformance.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(agentperformance.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgQuality(); ok {
		_spec.SetField(agentperformance.FieldAvgQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgQuality(); ok {
		_spec.AddField(agentperformance.FieldAvgQuality, field.TypeFloat64, value)
	}
	if _u.mutation.AvgQualityCleared() {
		_spec.ClearField(agentperformance.FieldAvgQuality, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgSentiment(); ok {
		_spec.SetField(agentperformance.FieldAvgSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgSentiment(); ok {
		_spec.AddField(agentperformance.FieldAvgSentiment, field.TypeFloat64, value)
	}
	if _u.mutation.AvgSentimentCleared() {
		_spec.ClearField(agentperformance.FieldAvgSentiment, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgSatisfaction(); ok {
		_spec.SetField(agentperformance.FieldAvgSatisfaction, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgSatisfaction(); ok {
		_spec.AddField(agentperformance.FieldAvgSatisfaction, field.TypeFloat64, value)
	}
	if _u.mutation.AvgSatisfactionCleared() {
		_spec.ClearField(agentperformance.FieldAvgSatisfaction, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgCompliancePassRate(); ok {
		_spec.SetField(agentperformance.FieldAvgCompliancePassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCompliancePassRate(); ok {
		_spec.AddField(agentperformance.FieldAvgCompliancePassRate, field.TypeFloat64, value)
	}
	if _u.mutation.AvgCompliancePassRateCleared() {
		_spec.ClearField(agentperformance.FieldAvgCompliancePassRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgChurnRisk(); ok {
		_spec.SetField(agentperformance.FieldAvgChurnRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgChurnRisk(); ok {
		_spec.AddField(agentperformance.FieldAvgChurnRisk, field.TypeFloat64, value)
	}
	if _u.mutation.AvgChurnRiskCleared() {
		_spec.ClearField(agentperformance.FieldAvgChurnRisk, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentperformance.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentperformance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentPerformanceUpdateOne is the builder for updating a single AgentPerformance entity.
type AgentPerformanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentPerformanceMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentPerformanceUpdateOne) SetAgentID(v string) *AgentPerformanceUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableAgentID(v *string) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetTimeSlot sets the "time_slot" field.
func (_u *AgentPerformanceUpdateOne) SetTimeSlot(v time.Time) *AgentPerformanceUpdateOne {
	_u.mutation.SetTimeSlot(v)
	return _u
}

// SetNillableTimeSlot sets the "time_slot" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableTimeSlot(v *time.Time) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetTimeSlot(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *AgentPerformanceUpdateOne) SetCount(v int) *AgentPerformanceUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableCount(v *int) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *AgentPerformanceUpdateOne) AddCount(v int) *AgentPerformanceUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// SetAvgQuality sets the "avg_quality" field.
func (_u *AgentPerformanceUpdateOne) SetAvgQuality(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetAvgQuality()
	_u.mutation.SetAvgQuality(v)
	return _u
}

// SetNillableAvgQuality sets the "avg_quality" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableAvgQuality(v *float64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetAvgQuality(*v)
	}
	return _u
}

// AddAvgQuality adds value to the "avg_quality" field.
func (_u *AgentPerformanceUpdateOne) AddAvgQuality(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.AddAvgQuality(v)
	return _u
}

// ClearAvgQuality clears the value of the "avg_quality" field.
func (_u *AgentPerformanceUpdateOne) ClearAvgQuality() *AgentPerformanceUpdateOne {
	_u.mutation.ClearAvgQuality()
	return _u
}

// SetAvgSentiment sets the "avg_sentiment" field.
func (_u *AgentPerformanceUpdateOne) SetAvgSentiment(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetAvgSentiment()
	_u.mutation.SetAvgSentiment(v)
	return _u
}

// SetNillableAvgSentiment sets the "avg_sentiment" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableAvgSentiment(v *float64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetAvgSentiment(*v)
	}
	return _u
}

// AddAvgSentiment adds value to the "avg_sentiment" field.
func (_u *AgentPerformanceUpdateOne) AddAvgSentiment(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.AddAvgSentiment(v)
	return _u
}

// ClearAvgSentiment clears the value of the "avg_sentiment" field.
func (_u *AgentPerformanceUpdateOne) ClearAvgSentiment() *AgentPerformanceUpdateOne {
	_u.mutation.ClearAvgSentiment()
	return _u
}

// SetAvgSatisfaction sets the "avg_satisfaction" field.
func (_u *AgentPerformanceUpdateOne) SetAvgSatisfaction(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetAvgSatisfaction()
	_u.mutation.SetAvgSatisfaction(v)
	return _u
}

// SetNillableAvgSatisfaction sets the "avg_satisfaction" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableAvgSatisfaction(v *float64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetAvgSatisfaction(*v)
	}
	return _u
}

// AddAvgSatisfaction adds value to the "avg_satisfaction" field.
func (_u *AgentPerformanceUpdateOne) AddAvgSatisfaction(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.AddAvgSatisfaction(v)
	return _u
}

// ClearAvgSatisfaction clears the value of the "avg_satisfaction" field.
func (_u *AgentPerformanceUpdateOne) ClearAvgSatisfaction() *AgentPerformanceUpdateOne {
	_u.mutation.ClearAvgSatisfaction()
	return _u
}

// SetAvgCompliancePassRate sets the "avg_compliance_pass_rate" field.
func (_u *AgentPerformanceUpdateOne) SetAvgCompliancePassRate(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetAvgCompliancePassRate()
	_u.mutation.SetAvgCompliancePassRate(v)
	return _u
}

// SetNillableAvgCompliancePassRate sets the "avg_compliance_pass_rate" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableAvgCompliancePassRate(v *float64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetAvgCompliancePassRate(*v)
	}
	return _u
}

// AddAvgCompliancePassRate adds value to the "avg_compliance_pass_rate" field.
func (_u *AgentPerformanceUpdateOne) AddAvgCompliancePassRate(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.AddAvgCompliancePassRate(v)
	return _u
}

// ClearAvgCompliancePassRate clears the value of the "avg_compliance_pass_rate" field.
func (_u *AgentPerformanceUpdateOne) ClearAvgCompliancePassRate() *AgentPerformanceUpdateOne {
	_u.mutation.ClearAvgCompliancePassRate()
	return _u
}

// SetAvgChurnRisk sets the "avg_churn_risk" field.
func (_u *AgentPerformanceUpdateOne) SetAvgChurnRisk(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetAvgChurnRisk()
	_u.mutation.SetAvgChurnRisk(v)
	return _u
}

// SetNillableAvgChurnRisk sets the "avg_churn_risk" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableAvgChurnRisk(v *float64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetAvgChurnRisk(*v)
	}
	return _u
}

// AddAvgChurnRisk adds value to the "avg_churn_risk" field.
func (_u *AgentPerformanceUpdateOne) AddAvgChurnRisk(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.AddAvgChurnRisk(v)
	return _u
}

// ClearAvgChurnRisk clears the value of the "avg_churn_risk" field.
func (_u *AgentPerformanceUpdateOne) ClearAvgChurnRisk() *AgentPerformanceUpdateOne {
	_u.mutation.ClearAvgChurnRisk()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentPerformanceUpdateOne) SetUpdatedAt(v time.Time) *AgentPerformanceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableUpdatedAt(v *time.Time) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_u *AgentPerformanceUpdateOne) Mutation() *AgentPerformanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentPerformanceUpdate builder.
func (_u *AgentPerformanceUpdateOne) Where(ps ...predicate.AgentPerformance) *AgentPerformanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentPerformanceUpdateOne) Select(field string, fields ...string) *AgentPerformanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentPerformance entity.
func (_u *AgentPerformanceUpdateOne) Save(ctx context.Context) (*AgentPerformance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPerformanceUpdateOne) SaveX(ctx context.Context) *AgentPerformance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentPerformanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPerformanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentPerformanceUpdateOne) sqlSave(ctx context.Context) (_node *AgentPerformance, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentperformance.Table, agentperformance.Columns, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentPerformance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentperformance.FieldID)
		for _, f := range fields {
			if !agentperformance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentperformance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentperformance.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSlot(); ok {
		_spec.SetField(agentperformance.FieldTimeSlot, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(agentperformance.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(agentperformance.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgQuality(); ok {
		_spec.SetField(agentperformance.FieldAvgQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgQuality(); ok {
		_spec.AddField(agentperformance.FieldAvgQuality, field.TypeFloat64, value)
	}
	if _u.mutation.AvgQualityCleared() {
		_spec.ClearField(agentperformance.FieldAvgQuality, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgSentiment(); ok {
		_spec.SetField(agentperformance.FieldAvgSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgSentiment(); ok {
		_spec.AddField(agentperformance.FieldAvgSentiment, field.TypeFloat64, value)
	}
	if _u.mutation.AvgSentimentCleared() {
		_spec.ClearField(agentperformance.FieldAvgSentiment, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgSatisfaction(); ok {
		_spec.SetField(agentperformance.FieldAvgSatisfaction, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgSatisfaction(); ok {
		_spec.AddField(agentperformance.FieldAvgSatisfaction, field.TypeFloat64, value)
	}
	if _u.mutation.AvgSatisfactionCleared() {
		_spec.ClearField(agentperformance.FieldAvgSatisfaction, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgCompliancePassRate(); ok {
		_spec.SetField(agentperformance.FieldAvgCompliancePassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCompliancePassRate(); ok {
		_spec.AddField(agentperformance.FieldAvgCompliancePassRate, field.TypeFloat64, value)
	}
	if _u.mutation.AvgCompliancePassRateCleared() {
		_spec.ClearField(agentperformance.FieldAvgCompliancePassRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgChurnRisk(); ok {
		_spec.SetField(agentperformance.FieldAvgChurnRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgChurnRisk(); ok {
		_spec.AddField(agentperformance.FieldAvgChurnRisk, field.TypeFloat64, value)
	}
	if _u.mutation.AvgChurnRiskCleared() {
		_spec.ClearField(agentperformance.FieldAvgChurnRisk, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentperformance.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentPerformance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentperformance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
