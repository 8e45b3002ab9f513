// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/complianceviolation"
	"github.com/callsight/callsight/ent/predicate"
)

// ComplianceViolationDelete is the builder for deleting a ComplianceViolation entity.
type ComplianceViolationDelete struct {
	config
	hooks    []Hook
	mutation *ComplianceViolationMutation
}

// Where appends a list predicates to the ComplianceViolationDelete builder.
func (_d *ComplianceViolationDelete) Where(ps ...predicate.ComplianceViolation) *ComplianceViolationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ComplianceViolationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComplianceViolationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ComplianceViolationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(complianceviolation.Table, sqlgraph.NewFieldSpec(complianceviolation.FieldID, field.TypeString))
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

// ComplianceViolationDeleteOne is the builder for deleting a single ComplianceViolation entity.
type ComplianceViolationDeleteOne struct {
	_d *ComplianceViolationDelete
}

// Where appends a list predicates to the ComplianceViolationDelete builder.
func (_d *ComplianceViolationDeleteOne) Where(ps ...predicate.ComplianceViolation) *ComplianceViolationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ComplianceViolationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{complianceviolation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComplianceViolationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
