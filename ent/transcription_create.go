// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/transcription"
	"github.com/callsight/callsight/ent/transcriptsegment"
)

// TranscriptionCreate is the builder for creating a Transcription entity.
type TranscriptionCreate struct {
	config
	mutation *TranscriptionMutation
	hooks    []Hook
}

// SetCallID sets the "call_id" field.
func (_c *TranscriptionCreate) SetCallID(v string) *TranscriptionCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetFullText sets the "full_text" field.
func (_c *TranscriptionCreate) SetFullText(v string) *TranscriptionCreate {
	_c.mutation.SetFullText(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *TranscriptionCreate) SetLanguage(v string) *TranscriptionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TranscriptionCreate) SetConfidence(v float64) *TranscriptionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *TranscriptionCreate) SetWordCount(v int) *TranscriptionCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *TranscriptionCreate) SetEventID(v string) *TranscriptionCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptionCreate) SetCreatedAt(v time.Time) *TranscriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableCreatedAt(v *time.Time) *TranscriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranscriptionCreate) SetID(v string) *TranscriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSegmentIDs adds the "segments" edge to the TranscriptSegment entity by IDs.
func (_c *TranscriptionCreate) AddSegmentIDs(ids ...string) *TranscriptionCreate {
	_c.mutation.AddSegmentIDs(ids...)
	return _c
}

// AddSegments adds the "segments" edges to the TranscriptSegment entity.
func (_c *TranscriptionCreate) AddSegments(v ...*TranscriptSegment) *TranscriptionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSegmentIDs(ids...)
}

// Mutation returns the TranscriptionMutation object of the builder.
func (_c *TranscriptionCreate) Mutation() *TranscriptionMutation {
	return _c.mutation
}

// Save creates the Transcription in the database.
func (_c *TranscriptionCreate) Save(ctx context.Context) (*Transcription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptionCreate) SaveX(ctx context.Context) *Transcription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptionCreate) check() error {
	if _, ok := _c.mutation.CallID(); !ok {
		return &ValidationError{Name: "call_id", err: errors.New(`ent: missing required field "Transcription.call_id"`)}
	}
	if _, ok := _c.mutation.FullText(); !ok {
		return &ValidationError{Name: "full_text", err: errors.New(`ent: missing required field "Transcription.full_text"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Transcription.language"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Transcription.confidence"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "Transcription.word_count"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "Transcription.event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transcription.created_at"`)}
	}
	return nil
}

func (_c *TranscriptionCreate) sqlSave(ctx context.Context) (*Transcription, error) {
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
			return nil, fmt.Errorf("unexpected Transcription.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptionCreate) createSpec() (*Transcription, *sqlgraph.CreateSpec) {
	var (
		_node = &Transcription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcription.Table, sqlgraph.NewFieldSpec(transcription.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(transcription.FieldCallID, field.TypeString, value)
		_node.CallID = value
	}
	if value, ok := _c.mutation.FullText(); ok {
		_spec.SetField(transcription.FieldFullText, field.TypeString, value)
		_node.FullText = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(transcription.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(transcription.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(transcription.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(transcription.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcription.SegmentsTable,
			Columns: []string{transcription.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptsegment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TranscriptionCreateBulk is the builder for creating many Transcription entities in bulk.
type TranscriptionCreateBulk struct {
	config
	err      error
	builders []*TranscriptionCreate
}

// Save creates the Transcription entities in the database.
func (_c *TranscriptionCreateBulk) Save(ctx context.Context) ([]*Transcription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transcription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptionMutation)
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
func (_c *TranscriptionCreateBulk) SaveX(ctx context.Context) []*Transcription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
