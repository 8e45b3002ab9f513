// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/compliancerule"
	"github.com/callsight/callsight/ent/predicate"
)

// ComplianceRuleDelete is the builder for deleting a ComplianceRule entity.
type ComplianceRuleDelete struct {
	config
	hooks    []Hook
	mutation *ComplianceRuleMutation
}

// Where appends a list predicates to the ComplianceRuleDelete builder.
func (_d *ComplianceRuleDelete) Where(ps ...predicate.ComplianceRule) *ComplianceRuleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ComplianceRuleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComplianceRuleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ComplianceRuleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(compliancerule.Table, sqlgraph.NewFieldSpec(compliancerule.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ComplianceRuleDeleteOne is the builder for deleting a single ComplianceRule entity.
type ComplianceRuleDeleteOne struct {
	_d *ComplianceRuleDelete
}

// Where appends a list predicates to the ComplianceRuleDelete builder.
func (_d *ComplianceRuleDeleteOne) Where(ps ...predicate.ComplianceRule) *ComplianceRuleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ComplianceRuleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{compliancerule.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComplianceRuleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
