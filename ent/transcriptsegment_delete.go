// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/predicate"
	"github.com/callsight/callsight/ent/transcriptsegment"
)

// TranscriptSegmentDelete is the builder for deleting a TranscriptSegment entity.
type TranscriptSegmentDelete struct {
	config
	hooks    []Hook
	mutation *TranscriptSegmentMutation
}

// Where appends a list predicates to the TranscriptSegmentDelete builder.
func (_d *TranscriptSegmentDelete) Where(ps ...predicate.TranscriptSegment) *TranscriptSegmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TranscriptSegmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TranscriptSegmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TranscriptSegmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(transcriptsegment.Table, sqlgraph.NewFieldSpec(transcriptsegment.FieldID, field.TypeString))
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

// TranscriptSegmentDeleteOne is the builder for deleting a single TranscriptSegment entity.
type TranscriptSegmentDeleteOne struct {
	_d *TranscriptSegmentDelete
}

// Where appends a list predicates to the TranscriptSegmentDelete builder.
func (_d *TranscriptSegmentDeleteOne) Where(ps ...predicate.TranscriptSegment) *TranscriptSegmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TranscriptSegmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{transcriptsegment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TranscriptSegmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
