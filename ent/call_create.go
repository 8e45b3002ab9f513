// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/call"
)

// CallCreate is the builder for creating a Call entity.
type CallCreate struct {
	config
	mutation *CallMutation
	hooks    []Hook
}

// SetCallerID sets the "caller_id" field.
func (_c *CallCreate) SetCallerID(v string) *CallCreate {
	_c.mutation.SetCallerID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *CallCreate) SetAgentID(v string) *CallCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *CallCreate) SetChannel(v string) *CallCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetAudioKey sets the "audio_key" field.
func (_c *CallCreate) SetAudioKey(v string) *CallCreate {
	_c.mutation.SetAudioKey(v)
	return _c
}

// SetFileFormat sets the "file_format" field.
func (_c *CallCreate) SetFileFormat(v string) *CallCreate {
	_c.mutation.SetFileFormat(v)
	return _c
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_c *CallCreate) SetFileSizeBytes(v int64) *CallCreate {
	_c.mutation.SetFileSizeBytes(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *CallCreate) SetDuration(v float64) *CallCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *CallCreate) SetNillableDuration(v *float64) *CallCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *CallCreate) SetStartTime(v time.Time) *CallCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CallCreate) SetStatus(v call.Status) *CallCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CallCreate) SetNillableStatus(v *call.Status) *CallCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *CallCreate) SetCorrelationID(v string) *CallCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CallCreate) SetCreatedAt(v time.Time) *CallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableCreatedAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CallCreate) SetID(v string) *CallCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CallMutation object of the builder.
func (_c *CallCreate) Mutation() *CallMutation {
	return _c.mutation
}

// Save creates the Call in the database.
func (_c *CallCreate) Save(ctx context.Context) (*Call, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CallCreate) SaveX(ctx context.Context) *Call {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CallCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := call.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := call.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CallCreate) check() error {
	if _, ok := _c.mutation.CallerID(); !ok {
		return &ValidationError{Name: "caller_id", err: errors.New(`ent: missing required field "Call.caller_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Call.agent_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "Call.channel"`)}
	}
	if _, ok := _c.mutation.AudioKey(); !ok {
		return &ValidationError{Name: "audio_key", err: errors.New(`ent: missing required field "Call.audio_key"`)}
	}
	if _, ok := _c.mutation.FileFormat(); !ok {
		return &ValidationError{Name: "file_format", err: errors.New(`ent: missing required field "Call.file_format"`)}
	}
	if _, ok := _c.mutation.FileSizeBytes(); !ok {
		return &ValidationError{Name: "file_size_bytes", err: errors.New(`ent: missing required field "Call.file_size_bytes"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Call.start_time"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Call.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := call.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Call.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Call.correlation_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Call.created_at"`)}
	}
	return nil
}

func (_c *CallCreate) sqlSave(ctx context.Context) (*Call, error) {
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
			return nil, fmt.Errorf("unexpected Call.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CallCreate) createSpec() (*Call, *sqlgraph.CreateSpec) {
	var (
		_node = &Call{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(call.Table, sqlgraph.NewFieldSpec(call.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CallerID(); ok {
		_spec.SetField(call.FieldCallerID, field.TypeString, value)
		_node.CallerID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(call.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(call.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.AudioKey(); ok {
		_spec.SetField(call.FieldAudioKey, field.TypeString, value)
		_node.AudioKey = value
	}
	if value, ok := _c.mutation.FileFormat(); ok {
		_spec.SetField(call.FieldFileFormat, field.TypeString, value)
		_node.FileFormat = value
	}
	if value, ok := _c.mutation.FileSizeBytes(); ok {
		_spec.SetField(call.FieldFileSizeBytes, field.TypeInt64, value)
		_node.FileSizeBytes = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(call.FieldDuration, field.TypeFloat64, value)
		_node.Duration = &value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(call.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(call.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(call.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(call.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CallCreateBulk is the builder for creating many Call entities in bulk.
type CallCreateBulk struct {
	config
	err      error
	builders []*CallCreate
}

// Save creates the Call entities in the database.
func (_c *CallCreateBulk) Save(ctx context.Context) ([]*Call, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Call, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallMutation)
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
func (_c *CallCreateBulk) SaveX(ctx context.Context) []*Call {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
