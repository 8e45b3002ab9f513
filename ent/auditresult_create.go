// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/ent/complianceviolation"
)

// AuditResultCreate is the builder for creating a AuditResult entity.
type AuditResultCreate struct {
	config
	mutation *AuditResultMutation
	hooks    []Hook
}

// SetCallID sets the "call_id" field.
func (_c *AuditResultCreate) SetCallID(v string) *AuditResultCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *AuditResultCreate) SetOverallScore(v int) *AuditResultCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetComplianceStatus sets the "compliance_status" field.
func (_c *AuditResultCreate) SetComplianceStatus(v auditresult.ComplianceStatus) *AuditResultCreate {
	_c.mutation.SetComplianceStatus(v)
	return _c
}

// SetScriptAdherence sets the "script_adherence" field.
func (_c *AuditResultCreate) SetScriptAdherence(v int) *AuditResultCreate {
	_c.mutation.SetScriptAdherence(v)
	return _c
}

// SetCustomerService sets the "customer_service" field.
func (_c *AuditResultCreate) SetCustomerService(v int) *AuditResultCreate {
	_c.mutation.SetCustomerService(v)
	return _c
}

// SetResolutionEffectiveness sets the "resolution_effectiveness" field.
func (_c *AuditResultCreate) SetResolutionEffectiveness(v int) *AuditResultCreate {
	_c.mutation.SetResolutionEffectiveness(v)
	return _c
}

// SetFlagsForReview sets the "flags_for_review" field.
func (_c *AuditResultCreate) SetFlagsForReview(v bool) *AuditResultCreate {
	_c.mutation.SetFlagsForReview(v)
	return _c
}

// SetNillableFlagsForReview sets the "flags_for_review" field if the given value is not nil.
func (_c *AuditResultCreate) SetNillableFlagsForReview(v *bool) *AuditResultCreate {
	if v != nil {
		_c.SetFlagsForReview(*v)
	}
	return _c
}

// SetReviewReason sets the "review_reason" field.
func (_c *AuditResultCreate) SetReviewReason(v string) *AuditResultCreate {
	_c.mutation.SetReviewReason(v)
	return _c
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_c *AuditResultCreate) SetNillableReviewReason(v *string) *AuditResultCreate {
	if v != nil {
		_c.SetReviewReason(*v)
	}
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *AuditResultCreate) SetProcessingTimeMs(v int64) *AuditResultCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *AuditResultCreate) SetEventID(v string) *AuditResultCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditResultCreate) SetCreatedAt(v time.Time) *AuditResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditResultCreate) SetNillableCreatedAt(v *time.Time) *AuditResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditResultCreate) SetID(v string) *AuditResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddViolationIDs adds the "violations" edge to the ComplianceViolation entity by IDs.
func (_c *AuditResultCreate) AddViolationIDs(ids ...string) *AuditResultCreate {
	_c.mutation.AddViolationIDs(ids...)
	return _c
}

// AddViolations adds the "violations" edges to the ComplianceViolation entity.
func (_c *AuditResultCreate) AddViolations(v ...*ComplianceViolation) *AuditResultCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddViolationIDs(ids...)
}

// Mutation returns the AuditResultMutation object of the builder.
func (_c *AuditResultCreate) Mutation() *AuditResultMutation {
	return _c.mutation
}

// Save creates the AuditResult in the database.
func (_c *AuditResultCreate) Save(ctx context.Context) (*AuditResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditResultCreate) SaveX(ctx context.Context) *AuditResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditResultCreate) defaults() {
	if _, ok := _c.mutation.FlagsForReview(); !ok {
		v := auditresult.DefaultFlagsForReview
		_c.mutation.SetFlagsForReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditResultCreate) check() error {
	if _, ok := _c.mutation.CallID(); !ok {
		return &ValidationError{Name: "call_id", err: errors.New(`ent: missing required field "AuditResult.call_id"`)}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "AuditResult.overall_score"`)}
	}
	if _, ok := _c.mutation.ComplianceStatus(); !ok {
		return &ValidationError{Name: "compliance_status", err: errors.New(`ent: missing required field "AuditResult.compliance_status"`)}
	}
	if v, ok := _c.mutation.ComplianceStatus(); ok {
		if err := auditresult.ComplianceStatusValidator(v); err != nil {
			return &ValidationError{Name: "compliance_status", err: fmt.Errorf(`ent: validator failed for field "AuditResult.compliance_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScriptAdherence(); !ok {
		return &ValidationError{Name: "script_adherence", err: errors.New(`ent: missing required field "AuditResult.script_adherence"`)}
	}
	if _, ok := _c.mutation.CustomerService(); !ok {
		return &ValidationError{Name: "customer_service", err: errors.New(`ent: missing required field "AuditResult.customer_service"`)}
	}
	if _, ok := _c.mutation.ResolutionEffectiveness(); !ok {
		return &ValidationError{Name: "resolution_effectiveness", err: errors.New(`ent: missing required field "AuditResult.resolution_effectiveness"`)}
	}
	if _, ok := _c.mutation.FlagsForReview(); !ok {
		return &ValidationError{Name: "flags_for_review", err: errors.New(`ent: missing required field "AuditResult.flags_for_review"`)}
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		return &ValidationError{Name: "processing_time_ms", err: errors.New(`ent: missing required field "AuditResult.processing_time_ms"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "AuditResult.event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditResult.created_at"`)}
	}
	return nil
}

func (_c *AuditResultCreate) sqlSave(ctx context.Context) (*AuditResult, error) {
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
			return nil, fmt.Errorf("unexpected AuditResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditResultCreate) createSpec() (*AuditResult, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditresult.Table, sqlgraph.NewFieldSpec(auditresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(auditresult.FieldCallID, field.TypeString, value)
		_node.CallID = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(auditresult.FieldOverallScore, field.TypeInt, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.ComplianceStatus(); ok {
		_spec.SetField(auditresult.FieldComplianceStatus, field.TypeEnum, value)
		_node.ComplianceStatus = value
	}
	if value, ok := _c.mutation.ScriptAdherence(); ok {
		_spec.SetField(auditresult.FieldScriptAdherence, field.TypeInt, value)
		_node.ScriptAdherence = value
	}
	if value, ok := _c.mutation.CustomerService(); ok {
		_spec.SetField(auditresult.FieldCustomerService, field.TypeInt, value)
		_node.CustomerService = value
	}
	if value, ok := _c.mutation.ResolutionEffectiveness(); ok {
		_spec.SetField(auditresult.FieldResolutionEffectiveness, field.TypeInt, value)
		_node.ResolutionEffectiveness = value
	}
	if value, ok := _c.mutation.FlagsForReview(); ok {
		_spec.SetField(auditresult.FieldFlagsForReview, field.TypeBool, value)
		_node.FlagsForReview = value
	}
	if value, ok := _c.mutation.ReviewReason(); ok {
		_spec.SetField(auditresult.FieldReviewReason, field.TypeString, value)
		_node.ReviewReason = &value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(auditresult.FieldProcessingTimeMs, field.TypeInt64, value)
		_node.ProcessingTimeMs = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(auditresult.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ViolationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AuditResultCreateBulk is the builder for creating many AuditResult entities in bulk.
type AuditResultCreateBulk struct {
	config
	err      error
	builders []*AuditResultCreate
}

// Save creates the AuditResult entities in the database.
func (_c *AuditResultCreateBulk) Save(ctx context.Context) ([]*AuditResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditResultMutation)
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
func (_c *AuditResultCreateBulk) SaveX(ctx context.Context) []*AuditResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
