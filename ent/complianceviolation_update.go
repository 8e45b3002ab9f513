// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/ent/complianceviolation"
	"github.com/callsight/callsight/ent/predicate"
)

// ComplianceViolationUpdate is the builder for updating ComplianceViolation entities.
type ComplianceViolationUpdate struct {
	config
	hooks    []Hook
	mutation *ComplianceViolationMutation
}

// Where appends a list predicates to the ComplianceViolationUpdate builder.
func (_u *ComplianceViolationUpdate) Where(ps ...predicate.ComplianceViolation) *ComplianceViolationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuditResultID sets the "audit_result_id" field.
func (_u *ComplianceViolationUpdate) SetAuditResultID(v string) *ComplianceViolationUpdate {
	_u.mutation.SetAuditResultID(v)
	return _u
}

// SetNillableAuditResultID sets the "audit_result_id" field if the given value is not nil.
func (_u *ComplianceViolationUpdate) SetNillableAuditResultID(v *string) *ComplianceViolationUpdate {
	if v != nil {
		_u.SetAuditResultID(*v)
	}
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *ComplianceViolationUpdate) SetRuleID(v string) *ComplianceViolationUpdate {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *ComplianceViolationUpdate) SetNillableRuleID(v *string) *ComplianceViolationUpdate {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *ComplianceViolationUpdate) SetRuleName(v string) *ComplianceViolationUpdate {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *ComplianceViolationUpdate) SetNillableRuleName(v *string) *ComplianceViolationUpdate {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ComplianceViolationUpdate) SetSeverity(v complianceviolation.Severity) *ComplianceViolationUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ComplianceViolationUpdate) SetNillableSeverity(v *complianceviolation.Severity) *ComplianceViolationUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ComplianceViolationUpdate) SetDescription(v string) *ComplianceViolationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ComplianceViolationUpdate) SetNillableDescription(v *string) *ComplianceViolationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTimestampInCall sets the "timestamp_in_call" field.
func (_u *ComplianceViolationUpdate) SetTimestampInCall(v float64) *ComplianceViolationUpdate {
	_u.mutation.ResetTimestampInCall()
	_u.mutation.SetTimestampInCall(v)
	return _u
}

// SetNillableTimestampInCall sets the "timestamp_in_call" field if the given value is not nil.
func (_u *ComplianceViolationUpdate) SetNillableTimestampInCall(v *float64) *ComplianceViolationUpdate {
	if v != nil {
		_u.SetTimestampInCall(*v)
	}
	return _u
}

// AddTimestampInCall adds value to the "timestamp_in_call" field.
func (_u *ComplianceViolationUpdate) AddTimestampInCall(v float64) *ComplianceViolationUpdate {
	_u.mutation.AddTimestampInCall(v)
	return _u
}

// ClearTimestampInCall clears the value of the "timestamp_in_call" field.
func (_u *ComplianceViolationUpdate) ClearTimestampInCall() *ComplianceViolationUpdate {
	_u.mutation.ClearTimestampInCall()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *ComplianceViolationUpdate) SetEvidence(v string) *ComplianceViolationUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *ComplianceViolationUpdate) SetNillableEvidence(v *string) *ComplianceViolationUpdate {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *ComplianceViolationUpdate) ClearEvidence() *ComplianceViolationUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetAuditResult sets the "audit_result" edge to the AuditResult entity.
func (_u *ComplianceViolationUpdate) SetAuditResult(v *AuditResult) *ComplianceViolationUpdate {
	return _u.SetAuditResultID(v.ID)
}

// Mutation returns the ComplianceViolationMutation object of the builder.
func (_u *ComplianceViolationUpdate) Mutation() *ComplianceViolationMutation {
	return _u.mutation
}

// ClearAuditResult clears the "audit_result" edge to the AuditResult entity.
func (_u *ComplianceViolationUpdate) ClearAuditResult() *ComplianceViolationUpdate {
	_u.mutation.ClearAuditResult()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ComplianceViolationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComplianceViolationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ComplianceViolationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComplianceViolationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComplianceViolationUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := complianceviolation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ComplianceViolation.severity": %w`, err)}
		}
	}
	if _u.mutation.AuditResultCleared() && len(_u.mutation.AuditResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ComplianceViolation.audit_result"`)
	}
	return nil
}

func (_u *ComplianceViolationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(complianceviolation.Table, complianceviolation.Columns, sqlgraph.NewFieldSpec(complianceviolation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RuleID(); ok {
		_spec.SetField(complianceviolation.FieldRuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(complianceviolation.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(complianceviolation.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(complianceviolation.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimestampInCall(); ok {
		_spec.SetField(complianceviolation.FieldTimestampInCall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimestampInCall(); ok {
		_spec.AddField(complianceviolation.FieldTimestampInCall, field.TypeFloat64, value)
	}
	if _u.mutation.TimestampInCallCleared() {
		_spec.ClearField(complianceviolation.FieldTimestampInCall, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(complianceviolation.FieldEvidence, field.TypeString, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(complianceviolation.FieldEvidence, field.TypeString)
	}
	if _u.mutation.AuditResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{complianceviolation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ComplianceViolationUpdateOne is the builder for updating a single ComplianceViolation entity.
type ComplianceViolationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ComplianceViolationMutation
}

// SetAuditResultID sets the "audit_result_id" field.
func (_u *ComplianceViolationUpdateOne) SetAuditResultID(v string) *ComplianceViolationUpdateOne {
	_u.mutation.SetAuditResultID(v)
	return _u
}

// SetNillableAuditResultID sets the "audit_result_id" field if the given value is not nil.
func (_u *ComplianceViolationUpdateOne) SetNillableAuditResultID(v *string) *ComplianceViolationUpdateOne {
	if v != nil {
		_u.SetAuditResultID(*v)
	}
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *ComplianceViolationUpdateOne) SetRuleID(v string) *ComplianceViolationUpdateOne {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *ComplianceViolationUpdateOne) SetNillableRuleID(v *string) *ComplianceViolationUpdateOne {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *ComplianceViolationUpdateOne) SetRuleName(v string) *ComplianceViolationUpdateOne {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *ComplianceViolationUpdateOne) SetNillableRuleName(v *string) *ComplianceViolationUpdateOne {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ComplianceViolationUpdateOne) SetSeverity(v complianceviolation.Severity) *ComplianceViolationUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ComplianceViolationUpdateOne) SetNillableSeverity(v *complianceviolation.Severity) *ComplianceViolationUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ComplianceViolationUpdateOne) SetDescription(v string) *ComplianceViolationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ComplianceViolationUpdateOne) SetNillableDescription(v *string) *ComplianceViolationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTimestampInCall sets the "timestamp_in_call" field.
func (_u *ComplianceViolationUpdateOne) SetTimestampInCall(v float64) *ComplianceViolationUpdateOne {
	_u.mutation.ResetTimestampInCall()
	_u.mutation.SetTimestampInCall(v)
	return _u
}

// SetNillableTimestampInCall sets the "timestamp_in_call" field if the given value is not nil.
func (_u *ComplianceViolationUpdateOne) SetNillableTimestampInCall(v *float64) *ComplianceViolationUpdateOne {
	if v != nil {
		_u.SetTimestampInCall(*v)
	}
	return _u
}

// AddTimestampInCall adds value to the "timestamp_in_call" field.
func (_u *ComplianceViolationUpdateOne) AddTimestampInCall(v float64) *ComplianceViolationUpdateOne {
	_u.mutation.AddTimestampInCall(v)
	return _u
}

// ClearTimestampInCall clears the value of the "timestamp_in_call" field.
func (_u *ComplianceViolationUpdateOne) ClearTimestampInCall() *ComplianceViolationUpdateOne {
	_u.mutation.ClearTimestampInCall()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *ComplianceViolationUpdateOne) SetEvidence(v string) *ComplianceViolationUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *ComplianceViolationUpdateOne) SetNillableEvidence(v *string) *ComplianceViolationUpdateOne {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *ComplianceViolationUpdateOne) ClearEvidence() *ComplianceViolationUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetAuditResult sets the "audit_result" edge to the AuditResult entity.
func (_u *ComplianceViolationUpdateOne) SetAuditResult(v *AuditResult) *ComplianceViolationUpdateOne {
	return _u.SetAuditResultID(v.ID)
}

// Mutation returns the ComplianceViolationMutation object of the builder.
func (_u *ComplianceViolationUpdateOne) Mutation() *ComplianceViolationMutation {
	return _u.mutation
}

// ClearAuditResult clears the "audit_result" edge to the AuditResult entity.
func (_u *ComplianceViolationUpdateOne) ClearAuditResult() *ComplianceViolationUpdateOne {
	_u.mutation.ClearAuditResult()
	return _u
}

// Where appends a list predicates to the ComplianceViolationUpdate builder.
func (_u *ComplianceViolationUpdateOne) Where(ps ...predicate.ComplianceViolation) *ComplianceViolationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ComplianceViolationUpdateOne) Select(field string, fields ...string) *ComplianceViolationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ComplianceViolation entity.
func (_u *ComplianceViolationUpdateOne) Save(ctx context.Context) (*ComplianceViolation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComplianceViolationUpdateOne) SaveX(ctx context.Context) *ComplianceViolation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ComplianceViolationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComplianceViolationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComplianceViolationUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := complianceviolation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ComplianceViolation.severity": %w`, err)}
		}
	}
	if _u.mutation.AuditResultCleared() && len(_u.mutation.AuditResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ComplianceViolation.audit_result"`)
	}
	return nil
}

func (_u *ComplianceViolationUpdateOne) sqlSave(ctx context.Context) (_node *ComplianceViolation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(complianceviolation.Table, complianceviolation.Columns, sqlgraph.NewFieldSpec(complianceviolation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ComplianceViolation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, complianceviolation.FieldID)
		for _, f := range fields {
			if !complianceviolation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != complianceviolation.FieldID {
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
	if value, ok := _u.mutation.RuleID(); ok {
		_spec.SetField(complianceviolation.FieldRuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(complianceviolation.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(complianceviolation.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(complianceviolation.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimestampInCall(); ok {
		_spec.SetField(complianceviolation.FieldTimestampInCall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimestampInCall(); ok {
		_spec.AddField(complianceviolation.FieldTimestampInCall, field.TypeFloat64, value)
	}
	if _u.mutation.TimestampInCallCleared() {
		_spec.ClearField(complianceviolation.FieldTimestampInCall, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(complianceviolation.FieldEvidence, field.TypeString, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(complianceviolation.FieldEvidence, field.TypeString)
	}
	if _u.mutation.AuditResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ComplianceViolation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{complianceviolation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
