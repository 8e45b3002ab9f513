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
	"github.com/callsight/callsight/ent/vocinsight"
)

// VocInsightUpdate is the builder for updating VocInsight entities.
type VocInsightUpdate struct {
	config
	hooks    []Hook
	mutation *VocInsightMutation
}

// Where appends a list predicates to the VocInsightUpdate builder.
func (_u *VocInsightUpdate) Where(ps ...predicate.VocInsight) *VocInsightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *VocInsightUpdate) SetCallID(v string) *VocInsightUpdate {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *VocInsightUpdate) SetNillableCallID(v *string) *VocInsightUpdate {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetPrimaryIntent sets the "primary_intent" field.
func (_u *VocInsightUpdate) SetPrimaryIntent(v vocinsight.PrimaryIntent) *VocInsightUpdate {
	_u.mutation.SetPrimaryIntent(v)
	return _u
}

// SetNillablePrimaryIntent sets the "primary_intent" field if the given value is not nil.
func (_u *VocInsightUpdate) SetNillablePrimaryIntent(v *vocinsight.PrimaryIntent) *VocInsightUpdate {
	if v != nil {
		_u.SetPrimaryIntent(*v)
	}
	return _u
}

// SetTopics sets the "topics" field.
func (_u *VocInsightUpdate) SetTopics(v []string) *VocInsightUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *VocInsightUpdate) AppendTopics(v []string) *VocInsightUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *VocInsightUpdate) ClearTopics() *VocInsightUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *VocInsightUpdate) SetKeywords(v []string) *VocInsightUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *VocInsightUpdate) AppendKeywords(v []string) *VocInsightUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *VocInsightUpdate) ClearKeywords() *VocInsightUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetCustomerSatisfaction sets the "customer_satisfaction" field.
func (_u *VocInsightUpdate) SetCustomerSatisfaction(v vocinsight.CustomerSatisfaction) *VocInsightUpdate {
	_u.mutation.SetCustomerSatisfaction(v)
	return _u
}

// SetNillableCustomerSatisfaction sets the "customer_satisfaction" field if the given value is not nil.
func (_u *VocInsightUpdate) SetNillableCustomerSatisfaction(v *vocinsight.CustomerSatisfaction) *VocInsightUpdate {
	if v != nil {
		_u.SetCustomerSatisfaction(*v)
	}
	return _u
}

// SetPredictedChurnRisk sets the "predicted_churn_risk" field.
func (_u *VocInsightUpdate) SetPredictedChurnRisk(v float64) *VocInsightUpdate {
	_u.mutation.ResetPredictedChurnRisk()
	_u.mutation.SetPredictedChurnRisk(v)
	return _u
}

// SetNillablePredictedChurnRisk sets the "predicted_churn_risk" field if the given value is not nil.
func (_u *VocInsightUpdate) SetNillablePredictedChurnRisk(v *float64) *VocInsightUpdate {
	if v != nil {
		_u.SetPredictedChurnRisk(*v)
	}
	return _u
}

// AddPredictedChurnRisk adds value to the "predicted_churn_risk" field.
func (_u *VocInsightUpdate) AddPredictedChurnRisk(v float64) *VocInsightUpdate {
	_u.mutation.AddPredictedChurnRisk(v)
	return _u
}

// SetActionableItems sets the "actionable_items" field.
func (_u *VocInsightUpdate) SetActionableItems(v []string) *VocInsightUpdate {
	_u.mutation.SetActionableItems(v)
	return _u
}

// AppendActionableItems appends value to the "actionable_items" field.
func (_u *VocInsightUpdate) AppendActionableItems(v []string) *VocInsightUpdate {
	_u.mutation.AppendActionableItems(v)
	return _u
}

// ClearActionableItems clears the value of the "actionable_items" field.
func (_u *VocInsightUpdate) ClearActionableItems() *VocInsightUpdate {
	_u.mutation.ClearActionableItems()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *VocInsightUpdate) SetSummary(v string) *VocInsightUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *VocInsightUpdate) SetNillableSummary(v *string) *VocInsightUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *VocInsightUpdate) SetEventID(v string) *VocInsightUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *VocInsightUpdate) SetNillableEventID(v *string) *VocInsightUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VocInsightUpdate) SetCreatedAt(v time.Time) *VocInsightUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VocInsightUpdate) SetNillableCreatedAt(v *time.Time) *VocInsightUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the VocInsightMutation object of the builder.
func (_u *VocInsightUpdate) Mutation() *VocInsightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VocInsightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocInsightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VocInsightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocInsightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocInsightUpdate) check() error {
	if v, ok := _u.mutation.PrimaryIntent(); ok {
		if err := vocinsight.PrimaryIntentValidator(v); err != nil {
			return &ValidationError{Name: "primary_intent", err: fmt.Errorf(`ent: validator failed for field "VocInsight.primary_intent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerSatisfaction(); ok {
		if err := vocinsight.CustomerSatisfactionValidator(v); err != nil {
			return &ValidationError{Name: "customer_satisfaction", err: fmt.Errorf(`ent: validator failed for field "VocInsight.customer_satisfaction": %w`, err)}
		}
	}
	return nil
}

func (_u *VocInsightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocinsight.Table, vocinsight.Columns, sqlgraph.NewFieldSpec(vocinsight.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(vocinsight.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryIntent(); ok {
		_spec.SetField(vocinsight.FieldPrimaryIntent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(vocinsight.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocinsight.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(vocinsight.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(vocinsight.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocinsight.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(vocinsight.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomerSatisfaction(); ok {
		_spec.SetField(vocinsight.FieldCustomerSatisfaction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PredictedChurnRisk(); ok {
		_spec.SetField(vocinsight.FieldPredictedChurnRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPredictedChurnRisk(); ok {
		_spec.AddField(vocinsight.FieldPredictedChurnRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActionableItems(); ok {
		_spec.SetField(vocinsight.FieldActionableItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionableItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocinsight.FieldActionableItems, value)
		})
	}
	if _u.mutation.ActionableItemsCleared() {
		_spec.ClearField(vocinsight.FieldActionableItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(vocinsight.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(vocinsight.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vocinsight.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocinsight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VocInsightUpdateOne is the builder for updating a single VocInsight entity.
type VocInsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VocInsightMutation
}

// SetCallID sets the "call_id" field.
func (_u *VocInsightUpdateOne) SetCallID(v string) *VocInsightUpdateOne {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *VocInsightUpdateOne) SetNillableCallID(v *string) *VocInsightUpdateOne {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetPrimaryIntent sets the "primary_intent" field.
func (_u *VocInsightUpdateOne) SetPrimaryIntent(v vocinsight.PrimaryIntent) *VocInsightUpdateOne {
	_u.mutation.SetPrimaryIntent(v)
	return _u
}

// SetNillablePrimaryIntent sets the "primary_intent" field if the given value is not nil.
func (_u *VocInsightUpdateOne) SetNillablePrimaryIntent(v *vocinsight.PrimaryIntent) *VocInsightUpdateOne {
	if v != nil {
		_u.SetPrimaryIntent(*v)
	}
	return _u
}

// SetTopics sets the "topics" field.
func (_u *VocInsightUpdateOne) SetTopics(v []string) *VocInsightUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *VocInsightUpdateOne) AppendTopics(v []string) *VocInsightUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *VocInsightUpdateOne) ClearTopics() *VocInsightUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *VocInsightUpdateOne) SetKeywords(v []string) *VocInsightUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *VocInsightUpdateOne) AppendKeywords(v []string) *VocInsightUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *VocInsightUpdateOne) ClearKeywords() *VocInsightUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetCustomerSatisfaction sets the "customer_satisfaction" field.
func (_u *VocInsightUpdateOne) SetCustomerSatisfaction(v vocinsight.CustomerSatisfaction) *VocInsightUpdateOne {
	_u.mutation.SetCustomerSatisfaction(v)
	return _u
}

// SetNillableCustomerSatisfaction sets the "customer_satisfaction" field if the given value is not nil.
func (_u *VocInsightUpdateOne) SetNillableCustomerSatisfaction(v *vocinsight.CustomerSatisfaction) *VocInsightUpdateOne {
	if v != nil {
		_u.SetCustomerSatisfaction(*v)
	}
	return _u
}

// SetPredictedChurnRisk sets the "predicted_churn_risk" field.
func (_u *VocInsightUpdateOne) SetPredictedChurnRisk(v float64) *VocInsightUpdateOne {
	_u.mutation.ResetPredictedChurnRisk()
	_u.mutation.SetPredictedChurnRisk(v)
	return _u
}

// SetNillablePredictedChurnRisk sets the "predicted_churn_risk" field if the given value is not nil.
func (_u *VocInsightUpdateOne) SetNillablePredictedChurnRisk(v *float64) *VocInsightUpdateOne {
	if v != nil {
		_u.SetPredictedChurnRisk(*v)
	}
	return _u
}

// AddPredictedChurnRisk adds value to the "predicted_churn_risk" field.
func (_u *VocInsightUpdateOne) AddPredictedChurnRisk(v float64) *VocInsightUpdateOne {
	_u.mutation.AddPredictedChurnRisk(v)
	return _u
}

// SetActionableItems sets the "actionable_items" field.
func (_u *VocInsightUpdateOne) SetActionableItems(v []string) *VocInsightUpdateOne {
	_u.mutation.SetActionableItems(v)
	return _u
}

// AppendActionableItems appends value to the "actionable_items" field.
func (_u *VocInsightUpdateOne) AppendActionableItems(v []string) *VocInsightUpdateOne {
	_u.mutation.AppendActionableItems(v)
	return _u
}

// ClearActionableItems clears the value of the "actionable_items" field.
func (_u *VocInsightUpdateOne) ClearActionableItems() *VocInsightUpdateOne {
	_u.mutation.ClearActionableItems()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *VocInsightUpdateOne) SetSummary(v string) *VocInsightUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *VocInsightUpdateOne) SetNillableSummary(v *string) *VocInsightUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *VocInsightUpdateOne) SetEventID(v string) *VocInsightUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *VocInsightUpdateOne) SetNillableEventID(v *string) *VocInsightUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VocInsightUpdateOne) SetCreatedAt(v time.Time) *VocInsightUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VocInsightUpdateOne) SetNillableCreatedAt(v *time.Time) *VocInsightUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the VocInsightMutation object of the builder.
func (_u *VocInsightUpdateOne) Mutation() *VocInsightMutation {
	return _u.mutation
}

// Where appends a list predicates to the VocInsightUpdate builder.
func (_u *VocInsightUpdateOne) Where(ps ...predicate.VocInsight) *VocInsightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VocInsightUpdateOne) Select(field string, fields ...string) *VocInsightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VocInsight entity.
func (_u *VocInsightUpdateOne) Save(ctx context.Context) (*VocInsight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocInsightUpdateOne) SaveX(ctx context.Context) *VocInsight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VocInsightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocInsightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocInsightUpdateOne) check() error {
	if v, ok := _u.mutation.PrimaryIntent(); ok {
		if err := vocinsight.PrimaryIntentValidator(v); err != nil {
			return &ValidationError{Name: "primary_intent", err: fmt.Errorf(`ent: validator failed for field "VocInsight.primary_intent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerSatisfaction(); ok {
		if err := vocinsight.CustomerSatisfactionValidator(v); err != nil {
			return &ValidationError{Name: "customer_satisfaction", err: fmt.Errorf(`ent: validator failed for field "VocInsight.customer_satisfaction": %w`, err)}
		}
	}
	return nil
}

func (_u *VocInsightUpdateOne) sqlSave(ctx context.Context) (_node *VocInsight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocinsight.Table, vocinsight.Columns, sqlgraph.NewFieldSpec(vocinsight.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VocInsight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocinsight.FieldID)
		for _, f := range fields {
			if !vocinsight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vocinsight.FieldID {
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
		_spec.SetField(vocinsight.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryIntent(); ok {
		_spec.SetField(vocinsight.FieldPrimaryIntent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(vocinsight.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocinsight.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(vocinsight.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(vocinsight.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocinsight.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(vocinsight.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomerSatisfaction(); ok {
		_spec.SetField(vocinsight.FieldCustomerSatisfaction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PredictedChurnRisk(); ok {
		_spec.SetField(vocinsight.FieldPredictedChurnRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPredictedChurnRisk(); ok {
		_spec.AddField(vocinsight.FieldPredictedChurnRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActionableItems(); ok {
		_spec.SetField(vocinsight.FieldActionableItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionableItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocinsight.FieldActionableItems, value)
		})
	}
	if _u.mutation.ActionableItemsCleared() {
		_spec.ClearField(vocinsight.FieldActionableItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(vocinsight.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(vocinsight.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vocinsight.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &VocInsight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocinsight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
