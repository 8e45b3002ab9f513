// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/ent/complianceviolation"
)

// ComplianceViolationCreate is the builder for creating a ComplianceViolation entity.
type ComplianceViolationCreate struct {
	config
	mutation *ComplianceViolationMutation
	hooks    []Hook
}

// SetAuditResultID sets the "audit_result_id" field.
func (_c *ComplianceViolationCreate) SetAuditResultID(v string) *ComplianceViolationCreate {
	_c.mutation.SetAuditResultID(v)
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *ComplianceViolationCreate) SetRuleID(v string) *ComplianceViolationCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetRuleName sets the "rule_name" field.
func (_c *ComplianceViolationCreate) SetRuleName(v string) *ComplianceViolationCreate {
	_c.mutation.SetRuleName(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ComplianceViolationCreate) SetSeverity(v complianceviolation.Severity) *ComplianceViolationCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ComplianceViolationCreate) SetDescription(v string) *ComplianceViolationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetTimestampInCall sets the "timestamp_in_call" field.
func (_c *ComplianceViolationCreate) SetTimestampInCall(v float64) *ComplianceViolationCreate {
	_c.mutation.SetTimestampInCall(v)
	return _c
}

// SetNillableTimestampInCall sets the "timestamp_in_call" field if the given value is not nil.
func (_c *ComplianceViolationCreate) SetNillableTimestampInCall(v *float64) *ComplianceViolationCreate {
	if v != nil {
		_c.SetTimestampInCall(*v)
	}
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *ComplianceViolationCreate) SetEvidence(v string) *ComplianceViolationCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_c *ComplianceViolationCreate) SetNillableEvidence(v *string) *ComplianceViolationCreate {
	if v != nil {
		_c.SetEvidence(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ComplianceViolationCreate) SetID(v string) *ComplianceViolationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAuditResult sets the "audit_result" edge to the AuditResult entity.
func (_c *ComplianceViolationCreate) SetAuditResult(v *AuditResult) *ComplianceViolationCreate {
	return _c.SetAuditResultID(v.ID)
}

// Mutation returns the ComplianceViolationMutation object of the builder.
func (_c *ComplianceViolationCreate) Mutation() *ComplianceViolationMutation {
	return _c.mutation
}

// Save creates the ComplianceViolation in the database.
func (_c *ComplianceViolationCreate) Save(ctx context.Context) (*ComplianceViolation, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ComplianceViolationCreate) SaveX(ctx context.Context) *ComplianceViolation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComplianceViolationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComplianceViolationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ComplianceViolationCreate) check() error {
	if _, ok := _c.mutation.AuditResultID(); !ok {
		return &ValidationError{Name: "audit_result_id", err: errors.New(`ent: missing required field "ComplianceViolation.audit_result_id"`)}
	}
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "ComplianceViolation.rule_id"`)}
	}
	if _, ok := _c.mutation.RuleName(); !ok {
		return &ValidationError{Name: "rule_name", err: errors.New(`ent: missing required field "ComplianceViolation.rule_name"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ComplianceViolation.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := complianceviolation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ComplianceViolation.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ComplianceViolation.description"`)}
	}
	if len(_c.mutation.AuditResultIDs()) == 0 {
		return &ValidationError{Name: "audit_result", err: errors.New(`ent: missing required edge "ComplianceViolation.audit_result"`)}
	}
	return nil
}

func (_c *ComplianceViolationCreate) sqlSave(ctx context.Context) (*ComplianceViolation, error) {
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
			return nil, fmt.Errorf("unexpected ComplianceViolation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ComplianceViolationCreate) createSpec() (*ComplianceViolation, *sqlgraph.CreateSpec) {
	var (
		_node = &ComplianceViolation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(complianceviolation.Table, sqlgraph.NewFieldSpec(complianceviolation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(complianceviolation.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.RuleName(); ok {
		_spec.SetField(complianceviolation.FieldRuleName, field.TypeString, value)
		_node.RuleName = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(complianceviolation.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(complianceviolation.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TimestampInCall(); ok {
		_spec.SetField(complianceviolation.FieldTimestampInCall, field.TypeFloat64, value)
		_node.TimestampInCall = &value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(complianceviolation.FieldEvidence, field.TypeString, value)
		_node.Evidence = &value
	}
	if nodes := _c.mutation.AuditResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   complianceviolation.AuditResultTable,
			Columns: []string{complianceviolation.AuditResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AuditResultID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ComplianceViolationCreateBulk is the builder for creating many ComplianceViolation entities in bulk.
type ComplianceViolationCreateBulk struct {
	config
	err      error
	builders []*ComplianceViolationCreate
}

// Save creates the ComplianceViolation entities in the database.
func (_c *ComplianceViolationCreateBulk) Save(ctx context.Context) ([]*ComplianceViolation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ComplianceViolation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComplianceViolationMutation)
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
func (_c *ComplianceViolationCreateBulk) SaveX(ctx context.Context) []*ComplianceViolation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComplianceViolationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComplianceViolationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
