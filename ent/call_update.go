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
	"github.com/callsight/callsight/ent/call"
	"github.com/callsight/callsight/ent/predicate"
)

// CallUpdate is the builder for updating Call entities.
type CallUpdate struct {
	config
	hooks    []Hook
	mutation *CallMutation
}

// Where appends a list predicates to the CallUpdate builder.
func (_u *CallUpdate) Where(ps ...predicate.Call) *CallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCallerID sets the "caller_id" field.
func (_u *CallUpdate) SetCallerID(v string) *CallUpdate {
	_u.mutation.SetCallerID(v)
	return _u
}

// SetNillableCallerID sets the "caller_id" field if the given value is not nil.
func (_u *CallUpdate) SetNillableCallerID(v *string) *CallUpdate {
	if v != nil {
		_u.SetCallerID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CallUpdate) SetAgentID(v string) *CallUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CallUpdate) SetNillableAgentID(v *string) *CallUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *CallUpdate) SetChannel(v string) *CallUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *CallUpdate) SetNillableChannel(v *string) *CallUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetAudioKey sets the "audio_key" field.
func (_u *CallUpdate) SetAudioKey(v string) *CallUpdate {
	_u.mutation.SetAudioKey(v)
	return _u
}

// SetNillableAudioKey sets the "audio_key" field if the given value is not nil.
func (_u *CallUpdate) SetNillableAudioKey(v *string) *CallUpdate {
	if v != nil {
		_u.SetAudioKey(*v)
	}
	return _u
}

// SetFileFormat sets the "file_format" field.
func (_u *CallUpdate) SetFileFormat(v string) *CallUpdate {
	_u.mutation.SetFileFormat(v)
	return _u
}

// SetNillableFileFormat sets the "file_format" field if the given value is not nil.
func (_u *CallUpdate) SetNillableFileFormat(v *string) *CallUpdate {
	if v != nil {
		_u.SetFileFormat(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *CallUpdate) SetFileSizeBytes(v int64) *CallUpdate {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *CallUpdate) SetNillableFileSizeBytes(v *int64) *CallUpdate {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *CallUpdate) AddFileSizeBytes(v int64) *CallUpdate {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// SetDuration sets the "duration" field.
func (_u *CallUpdate) SetDuration(v float64) *CallUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *CallUpdate) SetNillableDuration(v *float64) *CallUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *CallUpdate) AddDuration(v float64) *CallUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *CallUpdate) ClearDuration() *CallUpdate {
	_u.mutation.ClearDuration()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *CallUpdate) SetStartTime(v time.Time) *CallUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *CallUpdate) SetNillableStartTime(v *time.Time) *CallUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CallUpdate) SetStatus(v call.Status) *CallUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CallUpdate) SetNillableStatus(v *call.Status) *CallUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *CallUpdate) SetCorrelationID(v string) *CallUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *CallUpdate) SetNillableCorrelationID(v *string) *CallUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CallUpdate) SetCreatedAt(v time.Time) *CallUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CallUpdate) SetNillableCreatedAt(v *time.Time) *CallUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the CallMutation object of the builder.
func (_u *CallUpdate) Mutation() *CallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := call.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Call.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(call.Table, call.Columns, sqlgraph.NewFieldSpec(call.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallerID(); ok {
		_spec.SetField(call.FieldCallerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(call.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(call.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioKey(); ok {
		_spec.SetField(call.FieldAudioKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileFormat(); ok {
		_spec.SetField(call.FieldFileFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(call.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(call.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(call.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(call.FieldDuration, field.TypeFloat64, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(call.FieldDuration, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(call.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(call.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(call.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(call.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{call.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CallUpdateOne is the builder for updating a single Call entity.
type CallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CallMutation
}

// SetCallerID sets the "caller_id" field.
func (_u *CallUpdateOne) SetCallerID(v string) *CallUpdateOne {
	_u.mutation.SetCallerID(v)
	return _u
}

// SetNillableCallerID sets the "caller_id" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableCallerID(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetCallerID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CallUpdateOne) SetAgentID(v string) *CallUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableAgentID(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *CallUpdateOne) SetChannel(v string) *CallUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableChannel(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetAudioKey sets the "audio_key" field.
func (_u *CallUpdateOne) SetAudioKey(v string) *CallUpdateOne {
	_u.mutation.SetAudioKey(v)
	return _u
}

// SetNillableAudioKey sets the "audio_key" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableAudioKey(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetAudioKey(*v)
	}
	return _u
}

// SetFileFormat sets the "file_format" field.
func (_u *CallUpdateOne) SetFileFormat(v string) *CallUpdateOne {
	_u.mutation.SetFileFormat(v)
	return _u
}

// SetNillableFileFormat sets the "file_format" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableFileFormat(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetFileFormat(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *CallUpdateOne) SetFileSizeBytes(v int64) *CallUpdateOne {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableFileSizeBytes(v *int64) *CallUpdateOne {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *CallUpdateOne) AddFileSizeBytes(v int64) *CallUpdateOne {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// SetDuration sets the "duration" field.
func (_u *CallUpdateOne) SetDuration(v float64) *CallUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableDuration(v *float64) *CallUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *CallUpdateOne) AddDuration(v float64) *CallUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *CallUpdateOne) ClearDuration() *CallUpdateOne {
	_u.mutation.ClearDuration()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *CallUpdateOne) SetStartTime(v time.Time) *CallUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableStartTime(v *time.Time) *CallUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CallUpdateOne) SetStatus(v call.Status) *CallUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableStatus(v *call.Status) *CallUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *CallUpdateOne) SetCorrelationID(v string) *CallUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableCorrelationID(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CallUpdateOne) SetCreatedAt(v time.Time) *CallUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableCreatedAt(v *time.Time) *CallUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the CallMutation object of the builder.
func (_u *CallUpdateOne) Mutation() *CallMutation {
	return _u.mutation
}

// Where appends a list predicates to the CallUpdate builder.
func (_u *CallUpdateOne) Where(ps ...predicate.Call) *CallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CallUpdateOne) Select(field string, fields ...string) *CallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Call entity.
func (_u *CallUpdateOne) Save(ctx context.Context) (*Call, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallUpdateOne) SaveX(ctx context.Context) *Call {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := call.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Call.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CallUpdateOne) sqlSave(ctx context.Context) (_node *Call, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(call.Table, call.Columns, sqlgraph.NewFieldSpec(call.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Call.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, call.FieldID)
		for _, f := range fields {
			if !call.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != call.FieldID {
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
	if value, ok := _u.mutation.CallerID(); ok {
		_spec.SetField(call.FieldCallerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(call.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(call.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioKey(); ok {
		_spec.SetField(call.FieldAudioKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileFormat(); ok {
		_spec.SetField(call.FieldFileFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(call.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(call.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(call.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(call.FieldDuration, field.TypeFloat64, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(call.FieldDuration, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(call.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(call.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(call.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(call.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Call{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{call.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
