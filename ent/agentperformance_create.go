// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/agentperformance"
)

// AgentPerformanceCreate is the builder for creating a AgentPerformance entity.
type AgentPerformanceCreate struct {
	config
	mutation *AgentPerformanceMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentPerformanceCreate) SetAgentID(v string) *AgentPerformanceCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetTimeSlot sets the "time_slot" field.
func (_c *AgentPerformanceCreate) SetTimeSlot(v time.Time) *AgentPerformanceCreate {
	_c.mutation.SetTimeSlot(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *AgentPerformanceCreate) SetCount(v int) *AgentPerformanceCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableCount(v *int) *AgentPerformanceCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetAvgQuality sets the "avg_quality" field.
func (_c *AgentPerformanceCreate) SetAvgQuality(v float64) *AgentPerformanceCreate {
	_c.mutation.SetAvgQuality(v)
	return _c
}

// SetNillableAvgQuality sets the "avg_quality" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableAvgQuality(v *float64) *AgentPerformanceCreate {
	if v != nil {
		_c.SetAvgQuality(*v)
	}
	return _c
}

// SetAvgSentiment sets the "avg_sentiment" field.
func (_c *AgentPerformanceCreate) SetAvgSentiment(v float64) *AgentPerformanceCreate {
	_c.mutation.SetAvgSentiment(v)
	return _c
}

// SetNillableAvgSentiment sets the "avg_sentiment" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableAvgSentiment(v *float64) *AgentPerformanceCreate {
	if v != nil {
		_c.SetAvgSentiment(*v)
	}
	return _c
}

// SetAvgSatisfaction sets the "avg_satisfaction" field.
func (_c *AgentPerformanceCreate) SetAvgSatisfaction(v float64) *AgentPerformanceCreate {
	_c.mutation.SetAvgSatisfaction(v)
	return _c
}

// SetNillableAvgSatisfaction sets the "avg_satisfaction" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableAvgSatisfaction(v *float64) *AgentPerformanceCreate {
	if v != nil {
		_c.SetAvgSatisfaction(*v)
	}
	return _c
}

// SetAvgCompliancePassRate sets the "avg_compliance_pass_rate" field.
func (_c *AgentPerformanceCreate) SetAvgCompliancePassRate(v float64) *AgentPerformanceCreate {
	_c.mutation.SetAvgCompliancePassRate(v)
	return _c
}

// SetNillableAvgCompliancePassRate sets the "avg_compliance_pass_rate" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableAvgCompliancePassRate(v *float64) *AgentPerformanceCreate {
	if v != nil {
		_c.SetAvgCompliancePassRate(*v)
	}
	return _c
}

// SetAvgChurnRisk sets the "avg_churn_risk" field.
func (_c *AgentPerformanceCreate) SetAvgChurnRisk(v float64) *AgentPerformanceCreate {
	_c.mutation.SetAvgChurnRisk(v)
	return _c
}

// SetNillableAvgChurnRisk sets the "avg_churn_risk" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableAvgChurnRisk(v *float64) *AgentPerformanceCreate {
	if v != nil {
		_c.SetAvgChurnRisk(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentPerformanceCreate) SetUpdatedAt(v time.Time) *AgentPerformanceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableUpdatedAt(v *time.Time) *AgentPerformanceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentPerformanceCreate) SetID(v string) *AgentPerformanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_c *AgentPerformanceCreate) Mutation() *AgentPerformanceMutation {
	return _c.mutation
}

// Save creates the AgentPerformance in the database.
func (_c *AgentPerformanceCreate) Save(ctx context.Context) (*AgentPerformance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentPerformanceCreate) SaveX(ctx context.Context) *AgentPerformance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPerformanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPerformanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentPerformanceCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := agentperformance.DefaultCount
		_c.mutation.SetCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentperformance.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentPerformanceCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentPerformance.agent_id"`)}
	}
	if _, ok := _c.mutation.TimeSlot(); !ok {
		return &ValidationError{Name: "time_slot", err: errors.New(`ent: missing required field "AgentPerformance.time_slot"`)}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "AgentPerformance.count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentPerformance.updated_at"`)}
	}
	return nil
}

func (_c *AgentPerformanceCreate) sqlSave(ctx context.Context) (*AgentPerformance, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentPerformance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentPerformanceCreate) createSpec() (*AgentPerformance, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentPerformance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentperformance.Table, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(agentperformance.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.TimeSlot(); ok {
		_spec.SetField(agentperformance.FieldTimeSlot, field.TypeTime, value)
		_node.TimeSlot = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(agentperformance.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.AvgQuality(); ok {
		_spec.SetField(agentperformance.FieldAvgQuality, field.TypeFloat64, value)
		_node.AvgQuality = &value
	}
	if value, ok := _c.mutation.AvgSentiment(); ok {
		_spec.SetField(agentperformance.FieldAvgSentiment, field.TypeFloat64, value)
		_node.AvgSentiment = &value
	}
	if value, ok := _c.mutation.AvgSatisfaction(); ok {
		_spec.SetField(agentperformance.FieldAvgSatisfaction, field.TypeFloat64, value)
		_node.AvgSatisfaction = &value
	}
	if value, ok := _c.mutation.AvgCompliancePassRate(); ok {
		_spec.SetField(agentperformance.FieldAvgCompliancePassRate, field.TypeFloat64, value)
		_node.AvgCompliancePassRate = &value
	}
	if value, ok := _c.mutation.AvgChurnRisk(); ok {
		_spec.SetField(agentperformance.FieldAvgChurnRisk, field.TypeFloat64, value)
		_node.AvgChurnRisk = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentperformance.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentPerformanceCreateBulk is the builder for creating many AgentPerformance entities in bulk.
type AgentPerformanceCreateBulk struct {
	config
	err      error
	builders []*AgentPerformanceCreate
}

// Save creates the AgentPerformance entities in the database.
func (_c *AgentPerformanceCreateBulk) Save(ctx context.Context) ([]*AgentPerformance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentPerformance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentPerformanceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentPerformanceCreateBulk) SaveX(ctx context.Context) []*AgentPerformance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPerformanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPerformanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
