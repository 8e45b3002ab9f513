// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/agentperformance"
	"github.com/callsight/callsight/ent/predicate"
)

// AgentPerformanceDelete is the builder for deleting a AgentPerformance entity.
type AgentPerformanceDelete struct {
	config
	hooks    []Hook
	mutation *AgentPerformanceMutation
}

// Where appends a list predicates to the AgentPerformanceDelete builder.
func (_d *AgentPerformanceDelete) Where(ps ...predicate.AgentPerformance) *AgentPerformanceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AgentPerformanceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentPerformanceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AgentPerformanceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(agentperformance.Table, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeString))
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

// AgentPerformanceDeleteOne is the builder for deleting a single AgentPerformance entity.
type AgentPerformanceDeleteOne struct {
	_d *AgentPerformanceDelete
}

// Where appends a list predicates to the AgentPerformanceDelete builder.
func (_d *AgentPerformanceDeleteOne) Where(ps ...predicate.AgentPerformance) *AgentPerformanceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AgentPerformanceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{agentperformance.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentPerformanceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
