// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/vocinsight"
)

// VocInsightCreate is the builder for creating a VocInsight entity.
type VocInsightCreate struct {
	config
	mutation *VocInsightMutation
	hooks    []Hook
}

// SetCallID sets the "call_id" field.
func (_c *VocInsightCreate) SetCallID(v string) *VocInsightCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetPrimaryIntent sets the "primary_intent" field.
func (_c *VocInsightCreate) SetPrimaryIntent(v vocinsight.PrimaryIntent) *VocInsightCreate {
	_c.mutation.SetPrimaryIntent(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *VocInsightCreate) SetTopics(v []string) *VocInsightCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *VocInsightCreate) SetKeywords(v []string) *VocInsightCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetCustomerSatisfaction sets the "customer_satisfaction" field.
func (_c *VocInsightCreate) SetCustomerSatisfaction(v vocinsight.CustomerSatisfaction) *VocInsightCreate {
	_c.mutation.SetCustomerSatisfaction(v)
	return _c
}

// SetPredictedChurnRisk sets the "predicted_churn_risk" field.
func (_c *VocInsightCreate) SetPredictedChurnRisk(v float64) *VocInsightCreate {
	_c.mutation.SetPredictedChurnRisk(v)
	return _c
}

// SetActionableItems sets the "actionable_items" field.
func (_c *VocInsightCreate) SetActionableItems(v []string) *VocInsightCreate {
	_c.mutation.SetActionableItems(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *VocInsightCreate) SetSummary(v string) *VocInsightCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *VocInsightCreate) SetEventID(v string) *VocInsightCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VocInsightCreate) SetCreatedAt(v time.Time) *VocInsightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VocInsightCreate) SetNillableCreatedAt(v *time.Time) *VocInsightCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VocInsightCreate) SetID(v string) *VocInsightCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VocInsightMutation object of the builder.
func (_c *VocInsightCreate) Mutation() *VocInsightMutation {
	return _c.mutation
}

// Save creates the VocInsight in the database.
func (_c *VocInsightCreate) Save(ctx context.Context) (*VocInsight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VocInsightCreate) SaveX(ctx context.Context) *VocInsight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocInsightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocInsightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VocInsightCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vocinsight.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VocInsightCreate) check() error {
	if _, ok := _c.mutation.CallID(); !ok {
		return &ValidationError{Name: "call_id", err: errors.New(`ent: missing required field "VocInsight.call_id"`)}
	}
	if _, ok := _c.mutation.PrimaryIntent(); !ok {
		return &ValidationError{Name: "primary_intent", err: errors.New(`ent: missing required field "VocInsight.primary_intent"`)}
	}
	if v, ok := _c.mutation.PrimaryIntent(); ok {
		if err := vocinsight.PrimaryIntentValidator(v); err != nil {
			return &ValidationError{Name: "primary_intent", err: fmt.Errorf(`ent: validator failed for field "VocInsight.primary_intent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CustomerSatisfaction(); !ok {
		return &ValidationError{Name: "customer_satisfaction", err: errors.New(`ent: missing required field "VocInsight.customer_satisfaction"`)}
	}
	if v, ok := _c.mutation.CustomerSatisfaction(); ok {
		if err := vocinsight.CustomerSatisfactionValidator(v); err != nil {
			return &ValidationError{Name: "customer_satisfaction", err: fmt.Errorf(`ent: validator failed for field "VocInsight.customer_satisfaction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PredictedChurnRisk(); !ok {
		return &ValidationError{Name: "predicted_churn_risk", err: errors.New(`ent: missing required field "VocInsight.predicted_churn_risk"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "VocInsight.summary"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "VocInsight.event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VocInsight.created_at"`)}
	}
	return nil
}

func (_c *VocInsightCreate) sqlSave(ctx context.Context) (*VocInsight, error) {
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
			return nil, fmt.Errorf("unexpected VocInsight.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VocInsightCreate) createSpec() (*VocInsight, *sqlgraph.CreateSpec) {
	var (
		_node = &VocInsight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vocinsight.Table, sqlgraph.NewFieldSpec(vocinsight.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(vocinsight.FieldCallID, field.TypeString, value)
		_node.CallID = value
	}
	if value, ok := _c.mutation.PrimaryIntent(); ok {
		_spec.SetField(vocinsight.FieldPrimaryIntent, field.TypeEnum, value)
		_node.PrimaryIntent = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(vocinsight.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(vocinsight.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.CustomerSatisfaction(); ok {
		_spec.SetField(vocinsight.FieldCustomerSatisfaction, field.TypeEnum, value)
		_node.CustomerSatisfaction = value
	}
	if value, ok := _c.mutation.PredictedChurnRisk(); ok {
		_spec.SetField(vocinsight.FieldPredictedChurnRisk, field.TypeFloat64, value)
		_node.PredictedChurnRisk = value
	}
	if value, ok := _c.mutation.ActionableItems(); ok {
		_spec.SetField(vocinsight.FieldActionableItems, field.TypeJSON, value)
		_node.ActionableItems = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(vocinsight.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(vocinsight.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vocinsight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VocInsightCreateBulk is the builder for creating many VocInsight entities in bulk.
type VocInsightCreateBulk struct {
	config
	err      error
	builders []*VocInsightCreate
}

// Save creates the VocInsight entities in the database.
func (_c *VocInsightCreateBulk) Save(ctx context.Context) ([]*VocInsight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VocInsight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VocInsightMutation)
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
func (_c *VocInsightCreateBulk) SaveX(ctx context.Context) []*VocInsight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocInsightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocInsightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
