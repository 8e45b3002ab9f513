// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/sentimentanalysis"
)

// SentimentAnalysisCreate is the builder for creating a SentimentAnalysis entity.
type SentimentAnalysisCreate struct {
	config
	mutation *SentimentAnalysisMutation
	hooks    []Hook
}

// SetCallID sets the "call_id" field.
func (_c *SentimentAnalysisCreate) SetCallID(v string) *SentimentAnalysisCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetOverallSentiment sets the "overall_sentiment" field.
func (_c *SentimentAnalysisCreate) SetOverallSentiment(v sentimentanalysis.OverallSentiment) *SentimentAnalysisCreate {
	_c.mutation.SetOverallSentiment(v)
	return _c
}

// SetSentimentScore sets the "sentiment_score" field.
func (_c *SentimentAnalysisCreate) SetSentimentScore(v float64) *SentimentAnalysisCreate {
	_c.mutation.SetSentimentScore(v)
	return _c
}

// SetEscalationDetected sets the "escalation_detected" field.
func (_c *SentimentAnalysisCreate) SetEscalationDetected(v bool) *SentimentAnalysisCreate {
	_c.mutation.SetEscalationDetected(v)
	return _c
}

// SetNillableEscalationDetected sets the "escalation_detected" field if the given value is not nil.
func (_c *SentimentAnalysisCreate) SetNillableEscalationDetected(v *bool) *SentimentAnalysisCreate {
	if v != nil {
		_c.SetEscalationDetected(*v)
	}
	return _c
}

// SetEscalationDetails sets the "escalation_details" field.
func (_c *SentimentAnalysisCreate) SetEscalationDetails(v map[string]float64) *SentimentAnalysisCreate {
	_c.mutation.SetEscalationDetails(v)
	return _c
}

// SetSegmentSentiments sets the "segment_sentiments" field.
func (_c *SentimentAnalysisCreate) SetSegmentSentiments(v []map[string]interface{}) *SentimentAnalysisCreate {
	_c.mutation.SetSegmentSentiments(v)
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *SentimentAnalysisCreate) SetProcessingTimeMs(v int64) *SentimentAnalysisCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *SentimentAnalysisCreate) SetEventID(v string) *SentimentAnalysisCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SentimentAnalysisCreate) SetCreatedAt(v time.Time) *SentimentAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SentimentAnalysisCreate) SetNillableCreatedAt(v *time.Time) *SentimentAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SentimentAnalysisCreate) SetID(v string) *SentimentAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SentimentAnalysisMutation object of the builder.
func (_c *SentimentAnalysisCreate) Mutation() *SentimentAnalysisMutation {
	return _c.mutation
}

// Save creates the SentimentAnalysis in the database.
func (_c *SentimentAnalysisCreate) Save(ctx context.Context) (*SentimentAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SentimentAnalysisCreate) SaveX(ctx context.Context) *SentimentAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SentimentAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SentimentAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SentimentAnalysisCreate) defaults() {
	if _, ok := _c.mutation.EscalationDetected(); !ok {
		v := sentimentanalysis.DefaultEscalationDetected
		_c.mutation.SetEscalationDetected(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sentimentanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SentimentAnalysisCreate) check() error {
	if _, ok := _c.mutation.CallID(); !ok {
		return &ValidationError{Name: "call_id", err: errors.New(`ent: missing required field "SentimentAnalysis.call_id"`)}
	}
	if _, ok := _c.mutation.OverallSentiment(); !ok {
		return &ValidationError{Name: "overall_sentiment", err: errors.New(`ent: missing required field "SentimentAnalysis.overall_sentiment"`)}
	}
	if v, ok := _c.mutation.OverallSentiment(); ok {
		if err := sentimentanalysis.OverallSentimentValidator(v); err != nil {
			return &ValidationError{Name: "overall_sentiment", err: fmt.Errorf(`ent: validator failed for field "SentimentAnalysis.overall_sentiment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentimentScore(); !ok {
		return &ValidationError{Name: "sentiment_score", err: errors.New(`ent: missing required field "SentimentAnalysis.sentiment_score"`)}
	}
	if _, ok := _c.mutation.EscalationDetected(); !ok {
		return &ValidationError{Name: "escalation_detected", err: errors.New(`ent: missing required field "SentimentAnalysis.escalation_detected"`)}
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		return &ValidationError{Name: "processing_time_ms", err: errors.New(`ent: missing required field "SentimentAnalysis.processing_time_ms"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "SentimentAnalysis.event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SentimentAnalysis.created_at"`)}
	}
	return nil
}

func (_c *SentimentAnalysisCreate) sqlSave(ctx context.Context) (*SentimentAnalysis, error) {
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
			return nil, fmt.Errorf("unexpected SentimentAnalysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SentimentAnalysisCreate) createSpec() (*SentimentAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &SentimentAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sentimentanalysis.Table, sqlgraph.NewFieldSpec(sentimentanalysis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(sentimentanalysis.FieldCallID, field.TypeString, value)
		_node.CallID = value
	}
	if value, ok := _c.mutation.OverallSentiment(); ok {
		_spec.SetField(sentimentanalysis.FieldOverallSentiment, field.TypeEnum, value)
		_node.OverallSentiment = value
	}
	if value, ok := _c.mutation.SentimentScore(); ok {
		_spec.SetField(sentimentanalysis.FieldSentimentScore, field.TypeFloat64, value)
		_node.SentimentScore = value
	}
	if value, ok := _c.mutation.EscalationDetected(); ok {
		_spec.SetField(sentimentanalysis.FieldEscalationDetected, field.TypeBool, value)
		_node.EscalationDetected = value
	}
	if value, ok := _c.mutation.EscalationDetails(); ok {
		_spec.SetField(sentimentanalysis.FieldEscalationDetails, field.TypeJSON, value)
		_node.EscalationDetails = value
	}
	if value, ok := _c.mutation.SegmentSentiments(); ok {
		_spec.SetField(sentimentanalysis.FieldSegmentSentiments, field.TypeJSON, value)
		_node.SegmentSentiments = value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(sentimentanalysis.FieldProcessingTimeMs, field.TypeInt64, value)
		_node.ProcessingTimeMs = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(sentimentanalysis.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sentimentanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SentimentAnalysisCreateBulk is the builder for creating many SentimentAnalysis entities in bulk.
type SentimentAnalysisCreateBulk struct {
	config
	err      error
	builders []*SentimentAnalysisCreate
}

// Save creates the SentimentAnalysis entities in the database.
func (_c *SentimentAnalysisCreateBulk) Save(ctx context.Context) ([]*SentimentAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SentimentAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SentimentAnalysisMutation)
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
func (_c *SentimentAnalysisCreateBulk) SaveX(ctx context.Context) []*SentimentAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SentimentAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SentimentAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
