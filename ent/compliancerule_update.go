// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/compliancerule"
	"github.com/callsight/callsight/ent/predicate"
)

// ComplianceRuleUpdate is the builder for updating ComplianceRule entities.
type ComplianceRuleUpdate struct {
	config
	hooks    []Hook
	mutation *ComplianceRuleMutation
}

// Where appends a list predicates to the ComplianceRuleUpdate builder.
func (_u *ComplianceRuleUpdate) Where(ps ...predicate.ComplianceRule) *ComplianceRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ComplianceRuleUpdate) SetName(v string) *ComplianceRuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ComplianceRuleUpdate) SetNillableName(v *string) *ComplianceRuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ComplianceRuleUpdate) SetCategory(v string) *ComplianceRuleUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ComplianceRuleUpdate) SetNillableCategory(v *string) *ComplianceRuleUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ComplianceRuleUpdate) SetSeverity(v compliancerule.Severity) *ComplianceRuleUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ComplianceRuleUpdate) SetNillableSeverity(v *compliancerule.Severity) *ComplianceRuleUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ComplianceRuleUpdate) SetIsActive(v bool) *ComplianceRuleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ComplianceRuleUpdate) SetNillableIsActive(v *bool) *ComplianceRuleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *ComplianceRuleUpdate) SetDefinition(v map[string]interface{}) *ComplianceRuleUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ComplianceRuleUpdate) SetCreatedAt(v time.Time) *ComplianceRuleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ComplianceRuleUpdate) SetNillableCreatedAt(v *time.Time) *ComplianceRuleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ComplianceRuleUpdate) SetUpdatedAt(v time.Time) *ComplianceRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ComplianceRuleUpdate) SetNillableUpdatedAt(v *time.Time) *ComplianceRuleUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ComplianceRuleMutation object of the builder.
func (_u *ComplianceRuleUpdate) Mutation() *ComplianceRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ComplianceRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComplianceRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ComplianceRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComplianceRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComplianceRuleUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := compliancerule.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ComplianceRule.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ComplianceRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compliancerule.Table, compliancerule.Columns, sqlgraph.NewFieldSpec(compliancerule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(compliancerule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(compliancerule.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(compliancerule.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(compliancerule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(compliancerule.FieldDefinition, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(compliancerule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(compliancerule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compliancerule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ComplianceRuleUpdateOne is the builder for updating a single ComplianceRule entity.
type ComplianceRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ComplianceRuleMutation
}

// SetName sets the "name" field.
func (_u *ComplianceRuleUpdateOne) SetName(v string) *ComplianceRuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ComplianceRuleUpdateOne) SetNillableName(v *string) *ComplianceRuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ComplianceRuleUpdateOne) SetCategory(v string) *ComplianceRuleUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ComplianceRuleUpdateOne) SetNillableCategory(v *string) *ComplianceRuleUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ComplianceRuleUpdateOne) SetSeverity(v compliancerule.Severity) *ComplianceRuleUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ComplianceRuleUpdateOne) SetNillableSeverity(v *compliancerule.Severity) *ComplianceRuleUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ComplianceRuleUpdateOne) SetIsActive(v bool) *ComplianceRuleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ComplianceRuleUpdateOne) SetNillableIsActive(v *bool) *ComplianceRuleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *ComplianceRuleUpdateOne) SetDefinition(v map[string]interface{}) *ComplianceRuleUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ComplianceRuleUpdateOne) SetCreatedAt(v time.Time) *ComplianceRuleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ComplianceRuleUpdateOne) SetNillableCreatedAt(v *time.Time) *ComplianceRuleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ComplianceRuleUpdateOne) SetUpdatedAt(v time.Time) *ComplianceRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ComplianceRuleUpdateOne) SetNillableUpdatedAt(v *time.Time) *ComplianceRuleUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ComplianceRuleMutation object of the builder.
func (_u *ComplianceRuleUpdateOne) Mutation() *ComplianceRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ComplianceRuleUpdate builder.
func (_u *ComplianceRuleUpdateOne) Where(ps ...predicate.ComplianceRule) *ComplianceRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ComplianceRuleUpdateOne) Select(field string, fields ...string) *ComplianceRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ComplianceRule entity.
func (_u *ComplianceRuleUpdateOne) Save(ctx context.Context) (*ComplianceRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComplianceRuleUpdateOne) SaveX(ctx context.Context) *ComplianceRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ComplianceRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComplianceRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComplianceRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := compliancerule.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ComplianceRule.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ComplianceRuleUpdateOne) sqlSave(ctx context.Context) (_node *ComplianceRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compliancerule.Table, compliancerule.Columns, sqlgraph.NewFieldSpec(compliancerule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ComplianceRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, compliancerule.FieldID)
		for _, f := range fields {
			if !compliancerule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != compliancerule.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(compliancerule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(compliancerule.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(compliancerule.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(compliancerule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(compliancerule.FieldDefinition, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(compliancerule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(compliancerule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ComplianceRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compliancerule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
