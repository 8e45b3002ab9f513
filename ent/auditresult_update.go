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
	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/ent/complianceviolation"
	"github.com/callsight/callsight/ent/predicate"
)

// AuditResultUpdate is the builder for updating AuditResult entities.
type AuditResultUpdate struct {
	config
	hooks    []Hook
	mutation *AuditResultMutation
}

// Where appends a list predicates to the AuditResultUpdate builder.
func (_u *AuditResultUpdate) Where(ps ...predicate.AuditResult) *AuditResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *AuditResultUpdate) SetCallID(v string) *AuditResultUpdate {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *AuditResultUpdate) SetNillableCallID(v *string) *AuditResultUpdate {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *AuditResultUpdate) SetOverallScore(v int) *AuditResultUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *AuditResultUpdate) SetNillableOverallScore(v *int) *AuditResultUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *AuditResultUpdate) AddOverallScore(v int) *AuditResultUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetComplianceStatus sets the "compliance_status" field.
func (_u *AuditResultUpdate) SetComplianceStatus(v auditresult.ComplianceStatus) *AuditResultUpdate {
	_u.mutation.SetComplianceStatus(v)
	return _u
}

// SetNillableComplianceStatus sets the "compliance_status" field if the given value is not nil.
func (_u *AuditResultUpdate) SetNillableComplianceStatus(v *auditresult.ComplianceStatus) *AuditResultUpdate {
	if v != nil {
		_u.SetComplianceStatus(*v)
	}
	return _u
}

// SetScriptAdherence sets the "script_adherence" field.
func (_u *AuditResultUpdate) SetScriptAdherence(v int) *AuditResultUpdate {
	_u.mutation.ResetScriptAdherence()
	_u.mutation.SetScriptAdherence(v)
	return _u
}

// SetNillableScriptAdherence sets the "script_adherence" field if the given value is not nil.
func (_u *AuditResultUpdate) SetNillableScriptAdherence(v *int) *AuditResultUpdate {
	if v != nil {
		_u.SetScriptAdherence(*v)
	}
	return _u
}

// AddScriptAdherence adds value to the "script_adherence" field.
func (_u *AuditResultUpdate) AddScriptAdherence(v int) *AuditResultUpdate {
	_u.mutation.AddScriptAdherence(v)
	return _u
}

// SetCustomerService sets the "customer_service" field.
func (_u *AuditResultUpdate) SetCustomerService(v int) *AuditResultUpdate {
	_u.mutation.ResetCustomerService()
	_u.mutation.SetCustomerService(v)
	return _u
}

// SetNillableCustomerService sets the "customer_service" field if the given value is not nil.
func (_u *AuditResultUpdate) SetNillableCustomerService(v *int) *AuditResultUpdate {
	if v != nil {
		_u.SetCustomerService(*v)
	}
	return _u
}

// AddCustomerService adds value to the "customer_service" field.
func (_u *AuditResultUpdate) AddCustomerService(v int) *AuditResultUpdate {
	_u.mutation.AddCustomerService(v)
	return _u
}

// SetResolutionEffectiveness sets the "resolution_effectiveness" field.
func (_u *AuditResultUpdate) SetResolutionEffectiveness(v int) *AuditResultUpdate {
	_u.mutation.ResetResolutionEffectiveness()
	_u.mutation.SetResolutionEffectiveness(v)
	return _u
}

// SetNillableResolutionEffectiveness sets the "resolution_effectiveness" field if the given value is not nil.
func (_u *AuditResultUpdate) SetNillableResolutionEffectiveness(v *int) *AuditResultUpdate {
	if v != nil {
		_u.SetResolutionEffectiveness(*v)
	}
	return _u
}

// AddResolutionEffectiveness adds value to the "resolution_effectiveness" field.
func (_u *AuditResultUpdate) AddResolutionEffectiveness(v int) *AuditResultUpdate {
	_u.mutation.AddResolutionEffectiveness(v)
	return _u
}

// SetFlagsForReview sets the "flags_for_review" field.
func (_u *AuditResultUpdate) SetFlagsForReview(v bool) *AuditResultUpdate {
	_u.mutation.SetFlagsForReview(v)
	return _u
}

// SetNillableFlagsForReview sets the "flags_for_review" field if the given value is not nil.
func (_u *AuditResultUpdate) SetNillableFlagsForReview(v *bool) *AuditResultUpdate {
	if v != nil {
		_u.SetFlagsForReview(*v)
	}
	return _u
}

// SetReviewReason sets the "review_reason" field.
func (_u *AuditResultUpdate) SetReviewReason(v string) *AuditResultUpdate {
	_u.mutation.SetReviewReason(v)
	return _u
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_u *AuditResultUpdate) SetNillableReviewReason(v *string) *AuditResultUpdate {
	if v != nil {
		_u.SetReviewReason(*v)
	}
	return _u
}

// ClearReviewReason clears the value of the "review_reason" field.
func (_u *AuditResultUpdate) ClearReviewReason() *AuditResultUpdate {
	_u.mutation.ClearReviewReason()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *AuditResultUpdate) SetProcessingTimeMs(v int64) *AuditResultUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *AuditResultUpdate) SetNillableProcessingTimeMs(v *int64) *AuditResultUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *AuditResultUpdate) AddProcessingTimeMs(v int64) *AuditResultUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *AuditResultUpdate) SetEventID(v string) *AuditResultUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *AuditResultUpdate) SetNillableEventID(v *string) *AuditResultUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditResultUpdate) SetCreatedAt(v time.Time) *AuditResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditResultUpdate) SetNillableCreatedAt(v *time.Time) *AuditResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddViolationIDs adds the "violations" edge to the ComplianceViolation entity by IDs.
func (_u *AuditResultUpdate) AddViolationIDs(ids ...string) *AuditResultUpdate {
	_u.mutation.AddViolationIDs(ids...)
	return _u
}

// AddViolations adds the "violations" edges to the ComplianceViolation entity.
func (_u *AuditResultUpdate) AddViolations(v ...*ComplianceViolation) *AuditResultUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViolationIDs(ids...)
}

// Mutation returns the AuditResultMutation object of the builder.
func (_u *AuditResultUpdate) Mutation() *AuditResultMutation {
	return _u.mutation
}

// ClearViolations clears all "violations" edges to the ComplianceViolation entity.
func (_u *AuditResultUpdate) ClearViolations() *AuditResultUpdate {
	_u.mutation.ClearViolations()
	return _u
}

// RemoveViolationIDs removes the "violations" edge to ComplianceViolation entities by IDs.
func (_u *AuditResultUpdate) RemoveViolationIDs(ids ...string) *AuditResultUpdate {
	_u.mutation.RemoveViolationIDs(ids...)
	return _u
}

// RemoveViolations removes "violations" edges to ComplianceViolation entities.
func (_u *AuditResultUpdate) RemoveViolations(v ...*ComplianceViolation) *AuditResultUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViolationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditResultUpdate) check() error {
	if v, ok := _u.mutation.ComplianceStatus(); ok {
		if err := auditresult.ComplianceStatusValidator(v); err != nil {
			return &ValidationError{Name: "compliance_status", err: fmt.Errorf(`ent: validator failed for field "AuditResult.compliance_status": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditresult.Table, auditresult.Columns, sqlgraph.NewFieldSpec(auditresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(auditresult.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(auditresult.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(auditresult.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ComplianceStatus(); ok {
		_spec.SetField(auditresult.FieldComplianceStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScriptAdherence(); ok {
		_spec.SetField(auditresult.FieldScriptAdherence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScriptAdherence(); ok {
		_spec.AddField(auditresult.FieldScriptAdherence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CustomerService(); ok {
		_spec.SetField(auditresult.FieldCustomerService, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCustomerService(); ok {
		_spec.AddField(auditresult.FieldCustomerService, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResolutionEffectiveness(); ok {
		_spec.SetField(auditresult.FieldResolutionEffectiveness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResolutionEffectiveness(); ok {
		_spec.AddField(auditresult.FieldResolutionEffectiveness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlagsForReview(); ok {
		_spec.SetField(auditresult.FieldFlagsForReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewReason(); ok {
		_spec.SetField(auditresult.FieldReviewReason, field.TypeString, value)
	}
	if _u.mutation.ReviewReasonCleared() {
		_spec.ClearField(auditresult.FieldReviewReason, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(auditresult.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(auditresult.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(auditresult.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   auditresult.ViolationsTable,
			Columns: []string{auditresult.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceviolation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedViolationsIDs(); len(nodes) > 0 && !_u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   auditresult.ViolationsTable,
			Columns: []string{auditresult.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceviolation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ViolationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   auditresult.ViolationsTable,
			Columns: []string{auditresult.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceviolation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditResultUpdateOne is the builder for updating a single AuditResult entity.
type AuditResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditResultMutation
}

// SetCallID sets the "call_id" field.
func (_u *AuditResultUpdateOne) SetCallID(v string) *AuditResultUpdateOne {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *AuditResultUpdateOne) SetNillableCallID(v *string) *AuditResultUpdateOne {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *AuditResultUpdateOne) SetOverallScore(v int) *AuditResultUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *AuditResultUpdateOne) SetNillableOverallScore(v *int) *AuditResultUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *AuditResultUpdateOne) AddOverallScore(v int) *AuditResultUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetComplianceStatus sets the "compliance_status" field.
func (_u *AuditResultUpdateOne) SetComplianceStatus(v auditresult.ComplianceStatus) *AuditResultUpdateOne {
	_u.mutation.SetComplianceStatus(v)
	return _u
}

// SetNillableComplianceStatus sets the "compliance_status" field if the given value is not nil.
func (_u *AuditResultUpdateOne) SetNillableComplianceStatus(v *auditresult.ComplianceStatus) *AuditResultUpdateOne {
	if v != nil {
		_u.SetComplianceStatus(*v)
	}
	return _u
}

// SetScriptAdherence sets the "script_adherence" field.
func (_u *AuditResultUpdateOne) SetScriptAdherence(v int) *AuditResultUpdateOne {
	_u.mutation.ResetScriptAdherence()
	_u.mutation.SetScriptAdherence(v)
	return _u
}

// SetNillableScriptAdherence sets the "script_adherence" field if the given value is not nil.
func (_u *AuditResultUpdateOne) SetNillableScriptAdherence(v *int) *AuditResultUpdateOne {
	if v != nil {
		_u.SetScriptAdherence(*v)
	}
	return _u
}

// AddScriptAdherence adds value to the "script_adherence" field.
func (_u *AuditResultUpdateOne) AddScriptAdherence(v int) *AuditResultUpdateOne {
	_u.mutation.AddScriptAdherence(v)
	return _u
}

// SetCustomerService sets the "customer_service" field.
func (_u *AuditResultUpdateOne) SetCustomerService(v int) *AuditResultUpdateOne {
	_u.mutation.ResetCustomerService()
	_u.mutation.SetCustomerService(v)
	return _u
}

// SetNillableCustomerService sets the "customer_service" field if the given value is not nil.
func (_u *AuditResultUpdateOne) SetNillableCustomerService(v *int) *AuditResultUpdateOne {
	if v != nil {
		_u.SetCustomerService(*v)
	}
	return _u
}

// AddCustomerService adds value to the "customer_service" field.
func (_u *AuditResultUpdateOne) AddCustomerService(v int) *AuditResultUpdateOne {
	_u.mutation.AddCustomerService(v)
	return _u
}

// SetResolutionEffectiveness sets the "resolution_effectiveness" field.
func (_u *AuditResultUpdateOne) SetResolutionEffectiveness(v int) *AuditResultUpdateOne {
	_u.mutation.ResetResolutionEffectiveness()
	_u.mutation.SetResolutionEffectiveness(v)
	return _u
}

// SetNillableResolutionEffectiveness sets the "resolution_effectiveness" field if the given value is not nil.
func (_u *AuditResultUpdateOne) SetNillableResolutionEffectiveness(v *int) *AuditResultUpdateOne {
	if v != nil {
		_u.SetResolutionEffectiveness(*v)
	}
	return _u
}

// AddResolutionEffectiveness adds value to the "resolution_effectiveness" field.
func (_u *AuditResultUpdateOne) AddResolutionEffectiveness(v int) *AuditResultUpdateOne {
	_u.mutation.AddResolutionEffectiveness(v)
	return _u
}

// SetFlagsForReview sets the "flags_for_review" field.
func (_u *AuditResultUpdateOne) SetFlagsForReview(v bool) *AuditResultUpdateOne {
	_u.mutation.SetFlagsForReview(v)
	return _u
}

// SetNillableFlagsForReview sets the "flags_for_review" field if the given value is not nil.
func (_u *AuditResultUpdateOne) SetNillableFlagsForReview(v *bool) *AuditResultUpdateOne {
	if v != nil {
		_u.SetFlagsForReview(*v)
	}
	return _u
}

// SetReviewReason sets the "review_reason" field.
func (_u *AuditResultUpdateOne) SetReviewReason(v string) *AuditResultUpdateOne {
	_u.mutation.SetReviewReason(v)
	return _u
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_u *AuditResultUpdateOne) SetNillableReviewReason(v *string) *AuditResultUpdateOne {
	if v != nil {
		_u.SetReviewReason(*v)
	}
	return _u
}

// ClearReviewReason clears the value of the "review_reason" field.
func (_u *AuditResultUpdateOne) ClearReviewReason() *AuditResultUpdateOne {
	_u.mutation.ClearReviewReason()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *AuditResultUpdateOne) SetProcessingTimeMs(v int64) *AuditResultUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *AuditResultUpdateOne) SetNillableProcessingTimeMs(v *int64) *AuditResultUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *AuditResultUpdateOne) AddProcessingTimeMs(v int64) *AuditResultUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *AuditResultUpdateOne) SetEventID(v string) *AuditResultUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *AuditResultUpdateOne) SetNillableEventID(v *string) *AuditResultUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditResultUpdateOne) SetCreatedAt(v time.Time) *AuditResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditResultUpdateOne) SetNillableCreatedAt(v *time.Time) *AuditResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddViolationIDs adds the "violations" edge to the ComplianceViolation entity by IDs.
func (_u *AuditResultUpdateOne) AddViolationIDs(ids ...string) *AuditResultUpdateOne {
	_u.mutation.AddViolationIDs(ids...)
	return _u
}

// AddViolations adds the "violations" edges to the ComplianceViolation entity.
func (_u *AuditResultUpdateOne) AddViolations(v ...*ComplianceViolation) *AuditResultUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViolationIDs(ids...)
}

// Mutation returns the AuditResultMutation object of the builder.
func (_u *AuditResultUpdateOne) Mutation() *AuditResultMutation {
	return _u.mutation
}

// ClearViolations clears all "violations" edges to the ComplianceViolation entity.
func (_u *AuditResultUpdateOne) ClearViolations() *AuditResultUpdateOne {
	_u.mutation.ClearViolations()
	return _u
}

// RemoveViolationIDs removes the "violations" edge to ComplianceViolation entities by IDs.
func (_u *AuditResultUpdateOne) RemoveViolationIDs(ids ...string) *AuditResultUpdateOne {
	_u.mutation.RemoveViolationIDs(ids...)
	return _u
}

// RemoveViolations removes "violations" edges to ComplianceViolation entities.
func (_u *AuditResultUpdateOne) RemoveViolations(v ...*ComplianceViolation) *AuditResultUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViolationIDs(ids...)
}

// Where appends a list predicates to the AuditResultUpdate builder.
func (_u *AuditResultUpdateOne) Where(ps ...predicate.AuditResult) *AuditResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditResultUpdateOne) Select(field string, fields ...string) *AuditResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditResult entity.
func (_u *AuditResultUpdateOne) Save(ctx context.Context) (*AuditResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditResultUpdateOne) SaveX(ctx context.Context) *AuditResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditResultUpdateOne) check() error {
	if v, ok := _u.mutation.ComplianceStatus(); ok {
		if err := auditresult.ComplianceStatusValidator(v); err != nil {
			return &ValidationError{Name: "compliance_status", err: fmt.Errorf(`ent: validator failed for field "AuditResult.compliance_status": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditResultUpdateOne) sqlSave(ctx context.Context) (_node *AuditResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditresult.Table, auditresult.Columns, sqlgraph.NewFieldSpec(auditresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditresult.FieldID)
		for _, f := range fields {
			if !auditresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditresult.FieldID {
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
		_spec.SetField(auditresult.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(auditresult.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(auditresult.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ComplianceStatus(); ok {
		_spec.SetField(auditresult.FieldComplianceStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScriptAdherence(); ok {
		_spec.SetField(auditresult.FieldScriptAdherence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScriptAdherence(); ok {
		_spec.AddField(auditresult.FieldScriptAdherence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CustomerService(); ok {
		_spec.SetField(auditresult.FieldCustomerService, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCustomerService(); ok {
		_spec.AddField(auditresult.FieldCustomerService, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResolutionEffectiveness(); ok {
		_spec.SetField(auditresult.FieldResolutionEffectiveness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResolutionEffectiveness(); ok {
		_spec.AddField(auditresult.FieldResolutionEffectiveness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlagsForReview(); ok {
		_spec.SetField(auditresult.FieldFlagsForReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewReason(); ok {
		_spec.SetField(auditresult.FieldReviewReason, field.TypeString, value)
	}
	if _u.mutation.ReviewReasonCleared() {
		_spec.ClearField(auditresult.FieldReviewReason, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(auditresult.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(auditresult.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(auditresult.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   auditresult.ViolationsTable,
			Columns: []string{auditresult.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceviolation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedViolationsIDs(); len(nodes) > 0 && !_u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   auditresult.ViolationsTable,
			Columns: []string{auditresult.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceviolation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ViolationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   auditresult.ViolationsTable,
			Columns: []string{auditresult.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(complianceviolation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AuditResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
