// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/compliancerule"
)

// ComplianceRuleCreate is the builder for creating a ComplianceRule entity.
type ComplianceRuleCreate struct {
	config
	mutation *ComplianceRuleMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ComplianceRuleCreate) SetName(v string) *ComplianceRuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ComplianceRuleCreate) SetCategory(v string) *ComplianceRuleCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ComplianceRuleCreate) SetSeverity(v compliancerule.Severity) *ComplianceRuleCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ComplianceRuleCreate) SetIsActive(v bool) *ComplianceRuleCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ComplianceRuleCreate) SetNillableIsActive(v *bool) *ComplianceRuleCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *ComplianceRuleCreate) SetDefinition(v map[string]interface{}) *ComplianceRuleCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ComplianceRuleCreate) SetCreatedAt(v time.Time) *ComplianceRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ComplianceRuleCreate) SetNillableCreatedAt(v *time.Time) *ComplianceRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ComplianceRuleCreate) SetUpdatedAt(v time.Time) *ComplianceRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ComplianceRuleCreate) SetNillableUpdatedAt(v *time.Time) *ComplianceRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ComplianceRuleCreate) SetID(v string) *ComplianceRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ComplianceRuleMutation object of the builder.
func (_c *ComplianceRuleCreate) Mutation() *ComplianceRuleMutation {
	return _c.mutation
}

// Save creates the ComplianceRule in the database.
func (_c *ComplianceRuleCreate) Save(ctx context.Context) (*ComplianceRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ComplianceRuleCreate) SaveX(ctx context.Context) *ComplianceRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComplianceRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComplianceRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ComplianceRuleCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := compliancerule.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := compliancerule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := compliancerule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ComplianceRuleCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ComplianceRule.name"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ComplianceRule.category"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ComplianceRule.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := compliancerule.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ComplianceRule.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ComplianceRule.is_active"`)}
	}
	if _, ok := _c.mutation.Definition(); !ok {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required field "ComplianceRule.definition"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ComplianceRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ComplianceRule.updated_at"`)}
	}
	return nil
}

func (_c *ComplianceRuleCreate) sqlSave(ctx context.Context) (*ComplianceRule, error) {
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
			return nil, fmt.Errorf("unexpected ComplianceRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ComplianceRuleCreate) createSpec() (*ComplianceRule, *sqlgraph.CreateSpec) {
	var (
		_node = &ComplianceRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(compliancerule.Table, sqlgraph.NewFieldSpec(compliancerule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(compliancerule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(compliancerule.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(compliancerule.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(compliancerule.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(compliancerule.FieldDefinition, field.TypeJSON, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(compliancerule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(compliancerule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ComplianceRuleCreateBulk is the builder for creating many ComplianceRule entities in bulk.
type ComplianceRuleCreateBulk struct {
	config
	err      error
	builders []*ComplianceRuleCreate
}

// Save creates the ComplianceRule entities in the database.
func (_c *ComplianceRuleCreateBulk) Save(ctx context.Context) ([]*ComplianceRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ComplianceRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComplianceRuleMutation)
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
func (_c *ComplianceRuleCreateBulk) SaveX(ctx context.Context) []*ComplianceRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComplianceRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComplianceRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
