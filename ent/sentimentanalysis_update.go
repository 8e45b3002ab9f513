// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/predicate"
	"github.com/callsight/callsight/ent/sentimentanalysis"
)

// SentimentAnalysisUpdate is the builder for updating SentimentAnalysis entities.
type SentimentAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *SentimentAnalysisMutation
}

// Where appends a list predicates to the SentimentAnalysisUpdate builder.
func (_u *SentimentAnalysisUpdate) Where(ps ...predicate.SentimentAnalysis) *SentimentAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *SentimentAnalysisUpdate) SetCallID(v string) *SentimentAnalysisUpdate {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *SentimentAnalysisUpdate) SetNillableCallID(v *string) *SentimentAnalysisUpdate {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetOverallSentiment sets the "overall_sentiment" field.
func (_u *SentimentAnalysisUpdate) SetOverallSentiment(v sentimentanalysis.OverallSentiment) *SentimentAnalysisUpdate {
	_u.mutation.SetOverallSentiment(v)
	return _u
}

// SetNillableOverallSentiment sets the "overall_sentiment" field if the given value is not nil.
func (_u *SentimentAnalysisUpdate) SetNillableOverallSentiment(v *sentimentanalysis.OverallSentiment) *SentimentAnalysisUpdate {
	if v != nil {
		_u.SetOverallSentiment(*v)
	}
	return _u
}

// SetSentimentScore sets the "sentiment_score" field.
func (_u *SentimentAnalysisUpdate) SetSentimentScore(v float64) *SentimentAnalysisUpdate {
	_u.mutation.ResetSentimentScore()
	_u.mutation.SetSentimentScore(v)
	return _u
}

// SetNillableSentimentScore sets the "sentiment_score" field if the given value is not nil.
func (_u *SentimentAnalysisUpdate) SetNillableSentimentScore(v *float64) *SentimentAnalysisUpdate {
	if v != nil {
		_u.SetSentimentScore(*v)
	}
	return _u
}

// AddSentimentScore adds value to the "sentiment_score" field.
func (_u *SentimentAnalysisUpdate) AddSentimentScore(v float64) *SentimentAnalysisUpdate {
	_u.mutation.AddSentimentScore(v)
	return _u
}

// SetEscalationDetected sets the "escalation_detected" field.
func (_u *SentimentAnalysisUpdate) SetEscalationDetected(v bool) *SentimentAnalysisUpdate {
	_u.mutation.SetEscalationDetected(v)
	return _u
}

// SetNillableEscalationDetected sets the "escalation_detected" field if the given value is not nil.
func (_u *SentimentAnalysisUpdate) SetNillableEscalationDetected(v *bool) *SentimentAnalysisUpdate {
	if v != nil {
		_u.SetEscalationDetected(*v)
	}
	return _u
}

// SetEscalationDetails sets the "escalation_details" field.
func (_u *SentimentAnalysisUpdate) SetEscalationDetails(v map[string]float64) *SentimentAnalysisUpdate {
	_u.mutation.SetEscalationDetails(v)
	return _u
}

// ClearEscalationDetails clears the value of the "escalation_details" field.
func (_u *SentimentAnalysisUpdate) ClearEscalationDetails() *SentimentAnalysisUpdate {
	_u.mutation.ClearEscalationDetails()
	return _u
}

// SetSegmentSentiments sets the "segment_sentiments" field.
func (_u *SentimentAnalysisUpdate) SetSegmentSentiments(v []map[string]interface{}) *SentimentAnalysisUpdate {
	_u.mutation.SetSegmentSentiments(v)
	return _u
}

// AppendSegmentSentiments appends value to the "segment_sentiments" field.
func (_u *SentimentAnalysisUpdate) AppendSegmentSentiments(v []map[string]interface{}) *SentimentAnalysisUpdate {
	_u.mutation.AppendSegmentSentiments(v)
	return _u
}

// ClearSegmentSentiments clears the value of the "segment_sentiments" field.
func (_u *SentimentAnalysisUpdate) ClearSegmentSentiments() *SentimentAnalysisUpdate {
	_u.mutation.ClearSegmentSentiments()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *SentimentAnalysisUpdate) SetProcessingTimeMs(v int64) *SentimentAnalysisUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *SentimentAnalysisUpdate) SetNillableProcessingTimeMs(v *int64) *SentimentAnalysisUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *SentimentAnalysisUpdate) AddProcessingTimeMs(v int64) *SentimentAnalysisUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *SentimentAnalysisUpdate) SetEventID(v string) *SentimentAnalysisUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *SentimentAnalysisUpdate) SetNillableEventID(v *string) *SentimentAnalysisUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SentimentAnalysisUpdate) SetCreatedAt(v time.Time) *SentimentAnalysisUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SentimentAnalysisUpdate) SetNillableCreatedAt(v *time.Time) *SentimentAnalysisUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SentimentAnalysisMutation object of the builder.
func (_u *SentimentAnalysisUpdate) Mutation() *SentimentAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SentimentAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SentimentAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SentimentAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SentimentAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SentimentAnalysisUpdate) check() error {
	if v, ok := _u.mutation.OverallSentiment(); ok {
		if err := sentimentanalysis.OverallSentimentValidator(v); err != nil {
			return &ValidationError{Name: "overall_sentiment", err: fmt.Errorf(`ent: validator failed for field "SentimentAnalysis.overall_sentiment": %w`, err)}
		}
	}
	return nil
}

func (_u *SentimentAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sentimentanalysis.Table, sentimentanalysis.Columns, sqlgraph.NewFieldSpec(sentimentanalysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(sentimentanalysis.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallSentiment(); ok {
		_spec.SetField(sentimentanalysis.FieldOverallSentiment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentimentScore(); ok {
		_spec.SetField(sentimentanalysis.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentScore(); ok {
		_spec.AddField(sentimentanalysis.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EscalationDetected(); ok {
		_spec.SetField(sentimentanalysis.FieldEscalationDetected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EscalationDetails(); ok {
		_spec.SetField(sentimentanalysis.FieldEscalationDetails, field.TypeJSON, value)
	}
	if _u.mutation.EscalationDetailsCleared() {
		_spec.ClearField(sentimentanalysis.FieldEscalationDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.SegmentSentiments(); ok {
		_spec.SetField(sentimentanalysis.FieldSegmentSentiments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSegmentSentiments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sentimentanalysis.FieldSegmentSentiments, value)
		})
	}
	if _u.mutation.SegmentSentimentsCleared() {
		_spec.ClearField(sentimentanalysis.FieldSegmentSentiments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(sentimentanalysis.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(sentimentanalysis.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(sentimentanalysis.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sentimentanalysis.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sentimentanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SentimentAnalysisUpdateOne is the builder for updating a single SentimentAnalysis entity.
type SentimentAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SentimentAnalysisMutation
}

// SetCallID sets the "call_id" field.
func (_u *SentimentAnalysisUpdateOne) SetCallID(v string) *SentimentAnalysisUpdateOne {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *SentimentAnalysisUpdateOne) SetNillableCallID(v *string) *SentimentAnalysisUpdateOne {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetOverallSentiment sets the "overall_sentiment" field.
func (_u *SentimentAnalysisUpdateOne) SetOverallSentiment(v sentimentanalysis.OverallSentiment) *SentimentAnalysisUpdateOne {
	_u.mutation.SetOverallSentiment(v)
	return _u
}

// SetNillableOverallSentiment sets the "overall_sentiment" field if the given value is not nil.
func (_u *SentimentAnalysisUpdateOne) SetNillableOverallSentiment(v *sentimentanalysis.OverallSentiment) *SentimentAnalysisUpdateOne {
	if v != nil {
		_u.SetOverallSentiment(*v)
	}
	return _u
}

// SetSentimentScore sets the "sentiment_score" field.
func (_u *SentimentAnalysisUpdateOne) SetSentimentScore(v float64) *SentimentAnalysisUpdateOne {
	_u.mutation.ResetSentimentScore()
	_u.mutation.SetSentimentScore(v)
	return _u
}

// SetNillableSentimentScore sets the "sentiment_score" field if the given value is not nil.
func (_u *SentimentAnalysisUpdateOne) SetNillableSentimentScore(v *float64) *SentimentAnalysisUpdateOne {
	if v != nil {
		_u.SetSentimentScore(*v)
	}
	return _u
}

// AddSentimentScore adds value to the "sentiment_score" field.
func (_u *SentimentAnalysisUpdateOne) AddSentimentScore(v float64) *SentimentAnalysisUpdateOne {
	_u.mutation.AddSentimentScore(v)
	return _u
}

// SetEscalationDetected sets the "escalation_detected" field.
func (_u *SentimentAnalysisUpdateOne) SetEscalationDetected(v bool) *SentimentAnalysisUpdateOne {
	_u.mutation.SetEscalationDetected(v)
	return _u
}

// SetNillableEscalationDetected sets the "escalation_detected" field if the given value is not nil.
func (_u *SentimentAnalysisUpdateOne) SetNillableEscalationDetected(v *bool) *SentimentAnalysisUpdateOne {
	if v != nil {
		_u.SetEscalationDetected(*v)
	}
	return _u
}

// SetEscalationDetails sets the "escalation_details" field.
func (_u *SentimentAnalysisUpdateOne) SetEscalationDetails(v map[string]float64) *SentimentAnalysisUpdateOne {
	_u.mutation.SetEscalationDetails(v)
	return _u
}

// ClearEscalationDetails clears the value of the "escalation_details" field.
func (_u *SentimentAnalysisUpdateOne) ClearEscalationDetails() *SentimentAnalysisUpdateOne {
	_u.mutation.ClearEscalationDetails()
	return _u
}

// SetSegmentSentiments sets the "segment_sentiments" field.
func (_u *SentimentAnalysisUpdateOne) SetSegmentSentiments(v []map[string]interface{}) *SentimentAnalysisUpdateOne {
	_u.mutation.SetSegmentSentiments(v)
	return _u
}

// AppendSegmentSentiments appends value to the "segment_sentiments" field.
func (_u *SentimentAnalysisUpdateOne) AppendSegmentSentiments(v []map[string]interface{}) *SentimentAnalysisUpdateOne {
	_u.mutation.AppendSegmentSentiments(v)
	return _u
}

// ClearSegmentSentiments clears the value of the "segment_sentiments" field.
func (_u *SentimentAnalysisUpdateOne) ClearSegmentSentiments() *SentimentAnalysisUpdateOne {
	_u.mutation.ClearSegmentSentiments()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *SentimentAnalysisUpdateOne) SetProcessingTimeMs(v int64) *SentimentAnalysisUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *SentimentAnalysisUpdateOne) SetNillableProcessingTimeMs(v *int64) *SentimentAnalysisUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *SentimentAnalysisUpdateOne) AddProcessingTimeMs(v int64) *SentimentAnalysisUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *SentimentAnalysisUpdateOne) SetEventID(v string) *SentimentAnalysisUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *SentimentAnalysisUpdateOne) SetNillableEventID(v *string) *SentimentAnalysisUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SentimentAnalysisUpdateOne) SetCreatedAt(v time.Time) *SentimentAnalysisUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SentimentAnalysisUpdateOne) SetNillableCreatedAt(v *time.Time) *SentimentAnalysisUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SentimentAnalysisMutation object of the builder.
func (_u *SentimentAnalysisUpdateOne) Mutation() *SentimentAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the SentimentAnalysisUpdate builder.
func (_u *SentimentAnalysisUpdateOne) Where(ps ...predicate.SentimentAnalysis) *SentimentAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SentimentAnalysisUpdateOne) Select(field string, fields ...string) *SentimentAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SentimentAnalysis entity.
func (_u *SentimentAnalysisUpdateOne) Save(ctx context.Context) (*SentimentAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SentimentAnalysisUpdateOne) SaveX(ctx context.Context) *SentimentAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SentimentAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SentimentAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SentimentAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.OverallSentiment(); ok {
		if err := sentimentanalysis.OverallSentimentValidator(v); err != nil {
			return &ValidationError{Name: "overall_sentiment", err: fmt.Errorf(`ent: validator failed for field "SentimentAnalysis.overall_sentiment": %w`, err)}
		}
	}
	return nil
}

func (_u *SentimentAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *SentimentAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sentimentanalysis.Table, sentimentanalysis.Columns, sqlgraph.NewFieldSpec(sentimentanalysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SentimentAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sentimentanalysis.FieldID)
		for _, f := range fields {
			if !sentimentanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sentimentanalysis.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(sentimentanalysis.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallSentiment(); ok {
		_spec.SetField(sentimentanalysis.FieldOverallSentiment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentimentScore(); ok {
		_spec.SetField(sentimentanalysis.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentScore(); ok {
		_spec.AddField(sentimentanalysis.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EscalationDetected(); ok {
		_spec.SetField(sentimentanalysis.FieldEscalationDetected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EscalationDetails(); ok {
		_spec.SetField(sentimentanalysis.FieldEscalationDetails, field.TypeJSON, value)
	}
	if _u.mutation.EscalationDetailsCleared() {
		_spec.ClearField(sentimentanalysis.FieldEscalationDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.SegmentSentiments(); ok {
		_spec.SetField(sentimentanalysis.FieldSegmentSentiments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSegmentSentiments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sentimentanalysis.FieldSegmentSentiments, value)
		})
	}
	if _u.mutation.SegmentSentimentsCleared() {
		_spec.ClearField(sentimentanalysis.FieldSegmentSentiments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(sentimentanalysis.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(sentimentanalysis.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(sentimentanalysis.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sentimentanalysis.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &SentimentAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sentimentanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
