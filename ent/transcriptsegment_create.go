// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/transcription"
	"github.com/callsight/callsight/ent/transcriptsegment"
)

// TranscriptSegmentCreate is the builder for creating a TranscriptSegment entity.
type TranscriptSegmentCreate struct {
	config
	mutation *TranscriptSegmentMutation
	hooks    []Hook
}

// SetTranscriptionID sets the "transcription_id" field.
func (_c *TranscriptSegmentCreate) SetTranscriptionID(v string) *TranscriptSegmentCreate {
	_c.mutation.SetTranscriptionID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *TranscriptSegmentCreate) SetPosition(v int) *TranscriptSegmentCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetSpeaker sets the "speaker" field.
func (_c *TranscriptSegmentCreate) SetSpeaker(v transcriptsegment.Speaker) *TranscriptSegmentCreate {
	_c.mutation.SetSpeaker(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *TranscriptSegmentCreate) SetStartTime(v float64) *TranscriptSegmentCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *TranscriptSegmentCreate) SetEndTime(v float64) *TranscriptSegmentCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetText sets the "text" field.
func (_c *TranscriptSegmentCreate) SetText(v string) *TranscriptSegmentCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TranscriptSegmentCreate) SetConfidence(v float64) *TranscriptSegmentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *TranscriptSegmentCreate) SetNillableConfidence(v *float64) *TranscriptSegmentCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranscriptSegmentCreate) SetID(v string) *TranscriptSegmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTranscription sets the "transcription" edge to the Transcription entity.
func (_c *TranscriptSegmentCreate) SetTranscription(v *Transcription) *TranscriptSegmentCreate {
	return _c.SetTranscriptionID(v.ID)
}

// Mutation returns the TranscriptSegmentMutation object of the builder.
func (_c *TranscriptSegmentCreate) Mutation() *TranscriptSegmentMutation {
	return _c.mutation
}

// Save creates the TranscriptSegment in the database.
func (_c *TranscriptSegmentCreate) Save(ctx context.Context) (*TranscriptSegment, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptSegmentCreate) SaveX(ctx context.Context) *TranscriptSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptSegmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptSegmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptSegmentCreate) check() error {
	if _, ok := _c.mutation.TranscriptionID(); !ok {
		return &ValidationError{Name: "transcription_id", err: errors.New(`ent: missing required field "TranscriptSegment.transcription_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "TranscriptSegment.position"`)}
	}
	if _, ok := _c.mutation.Speaker(); !ok {
		return &ValidationError{Name: "speaker", err: errors.New(`ent: missing required field "TranscriptSegment.speaker"`)}
	}
	if v, ok := _c.mutation.Speaker(); ok {
		if err := transcriptsegment.SpeakerValidator(v); err != nil {
			return &ValidationError{Name: "speaker", err: fmt.Errorf(`ent: validator failed for field "TranscriptSegment.speaker": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "TranscriptSegment.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "TranscriptSegment.end_time"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "TranscriptSegment.text"`)}
	}
	if len(_c.mutation.TranscriptionIDs()) == 0 {
		return &ValidationError{Name: "transcription", err: errors.New(`ent: missing required edge "TranscriptSegment.transcription"`)}
	}
	return nil
}

func (_c *TranscriptSegmentCreate) sqlSave(ctx context.Context) (*TranscriptSegment, error) {
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
			return nil, fmt.Errorf("unexpected TranscriptSegment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptSegmentCreate) createSpec() (*TranscriptSegment, *sqlgraph.CreateSpec) {
	var (
		_node = &TranscriptSegment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcriptsegment.Table, sqlgraph.NewFieldSpec(transcriptsegment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(transcriptsegment.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Speaker(); ok {
		_spec.SetField(transcriptsegment.FieldSpeaker, field.TypeEnum, value)
		_node.Speaker = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(transcriptsegment.FieldStartTime, field.TypeFloat64, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(transcriptsegment.FieldEndTime, field.TypeFloat64, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(transcriptsegment.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(transcriptsegment.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if nodes := _c.mutation.TranscriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcriptsegment.TranscriptionTable,
			Columns: []string{transcriptsegment.TranscriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcription.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TranscriptionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TranscriptSegmentCreateBulk is the builder for creating many TranscriptSegment entities in bulk.
type TranscriptSegmentCreateBulk struct {
	config
	err      error
	builders []*TranscriptSegmentCreate
}

// Save creates the TranscriptSegment entities in the database.
func (_c *TranscriptSegmentCreateBulk) Save(ctx context.Context) ([]*TranscriptSegment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranscriptSegment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptSegmentMutation)
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
func (_c *TranscriptSegmentCreateBulk) SaveX(ctx context.Context) []*TranscriptSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptSegmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptSegmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
