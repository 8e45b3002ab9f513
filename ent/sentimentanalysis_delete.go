// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/predicate"
	"github.com/callsight/callsight/ent/sentimentanalysis"
)

// SentimentAnalysisDelete is the builder for deleting a SentimentAnalysis entity.
type SentimentAnalysisDelete struct {
	config
	hooks    []Hook
	mutation *SentimentAnalysisMutation
}

// Where appends a list predicates to the SentimentAnalysisDelete builder.
func (_d *SentimentAnalysisDelete) Where(ps ...predicate.SentimentAnalysis) *SentimentAnalysisDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SentimentAnalysisDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SentimentAnalysisDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SentimentAnalysisDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sentimentanalysis.Table, sqlgraph.NewFieldSpec(sentimentanalysis.FieldID, field.TypeString))
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

// SentimentAnalysisDeleteOne is the builder for deleting a single SentimentAnalysis entity.
type SentimentAnalysisDeleteOne struct {
	_d *SentimentAnalysisDelete
}

// Where appends a list predicates to the SentimentAnalysisDelete builder.
func (_d *SentimentAnalysisDeleteOne) Where(ps ...predicate.SentimentAnalysis) *SentimentAnalysisDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SentimentAnalysisDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sentimentanalysis.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SentimentAnalysisDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
