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
	"github.com/callsight/callsight/ent/predicate"
	"github.com/callsight/callsight/ent/transcription"
	"github.com/callsight/callsight/ent/transcriptsegment"
)

// TranscriptionUpdate is the builder for updating Transcription entities.
type TranscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptionMutation
}

// Where appends a list predicates to the TranscriptionUpdate builder.
func (_u *TranscriptionUpdate) Where(ps ...predicate.Transcription) *TranscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *TranscriptionUpdate) SetCallID(v string) *TranscriptionUpdate {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableCallID(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetFullText sets the "full_text" field.
func (_u *TranscriptionUpdate) SetFullText(v string) *TranscriptionUpdate {
	_u.mutation.SetFullText(v)
	return _u
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableFullText(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetFullText(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *TranscriptionUpdate) SetLanguage(v string) *TranscriptionUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableLanguage(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TranscriptionUpdate) SetConfidence(v float64) *TranscriptionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableConfidence(v *float64) *TranscriptionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TranscriptionUpdate) AddConfidence(v float64) *TranscriptionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *TranscriptionUpdate) SetWordCount(v int) *TranscriptionUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableWordCount(v *int) *TranscriptionUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *TranscriptionUpdate) AddWordCount(v int) *TranscriptionUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *TranscriptionUpdate) SetEventID(v string) *TranscriptionUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableEventID(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TranscriptionUpdate) SetCreatedAt(v time.Time) *TranscriptionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableCreatedAt(v *time.Time) *TranscriptionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddSegmentIDs adds the "segments" edge to the TranscriptSegment entity by IDs.
func (_u *TranscriptionUpdate) AddSegmentIDs(ids ...string) *TranscriptionUpdate {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the TranscriptSegment entity.
func (_u *TranscriptionUpdate) AddSegments(v ...*TranscriptSegment) *TranscriptionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the TranscriptionMutation object of the builder.
func (_u *TranscriptionUpdate) Mutation() *TranscriptionMutation {
	return _u.mutation
}

// ClearSegments clears all "segments" edges to the TranscriptSegment entity.
func (_u *TranscriptionUpdate) ClearSegments() *TranscriptionUpdate {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to TranscriptSegment entities by IDs.
func (_u *TranscriptionUpdate) RemoveSegmentIDs(ids ...string) *TranscriptionUpdate {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to TranscriptSegment entities.
func (_u *TranscriptionUpdate) RemoveSegments(v ...*TranscriptSegment) *TranscriptionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TranscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(transcription.Table, transcription.Columns, sqlgraph.NewFieldSpec(transcription.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(transcription.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullText(); ok {
		_spec.SetField(transcription.FieldFullText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(transcription.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(transcription.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(transcription.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(transcription.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(transcription.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(transcription.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transcription.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptionUpdateOne is the builder for updating a single Transcription entity.
type TranscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptionMutation
}

// SetCallID sets the "call_id" field.
func (_u *TranscriptionUpdateOne) SetCallID(v string) *TranscriptionUpdateOne {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableCallID(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetFullText sets the "full_text" field.
func (_u *TranscriptionUpdateOne) SetFullText(v string) *TranscriptionUpdateOne {
	_u.mutation.SetFullText(v)
	return _u
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableFullText(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetFullText(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *TranscriptionUpdateOne) SetLanguage(v string) *TranscriptionUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableLanguage(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TranscriptionUpdateOne) SetConfidence(v float64) *TranscriptionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableConfidence(v *float64) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TranscriptionUpdateOne) AddConfidence(v float64) *TranscriptionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *TranscriptionUpdateOne) SetWordCount(v int) *TranscriptionUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableWordCount(v *int) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *TranscriptionUpdateOne) AddWordCount(v int) *TranscriptionUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *TranscriptionUpdateOne) SetEventID(v string) *TranscriptionUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableEventID(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TranscriptionUpdateOne) SetCreatedAt(v time.Time) *TranscriptionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableCreatedAt(v *time.Time) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddSegmentIDs adds the "segments" edge to the TranscriptSegment entity by IDs.
func (_u *TranscriptionUpdateOne) AddSegmentIDs(ids ...string) *TranscriptionUpdateOne {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the TranscriptSegment entity.
func (_u *TranscriptionUpdateOne) AddSegments(v ...*TranscriptSegment) *TranscriptionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the TranscriptionMutation object of the builder.
func (_u *TranscriptionUpdateOne) Mutation() *TranscriptionMutation {
	return _u.mutation
}

// ClearSegments clears all "segments" edges to the TranscriptSegment entity.
func (_u *TranscriptionUpdateOne) ClearSegments() *TranscriptionUpdateOne {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to TranscriptSegment entities by IDs.
func (_u *TranscriptionUpdateOne) RemoveSegmentIDs(ids ...string) *TranscriptionUpdateOne {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to TranscriptSegment entities.
func (_u *TranscriptionUpdateOne) RemoveSegments(v ...*TranscriptSegment) *TranscriptionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Where appends a list predicates to the TranscriptionUpdate builder.
func (_u *TranscriptionUpdateOne) Where(ps ...predicate.Transcription) *TranscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptionUpdateOne) Select(field string, fields ...string) *TranscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transcription entity.
func (_u *TranscriptionUpdateOne) Save(ctx context.Context) (*Transcription, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptionUpdateOne) SaveX(ctx context.Context) *Transcription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TranscriptionUpdateOne) sqlSave(ctx context.Context) (_node *Transcription, err error) {
	_spec := sqlgraph.NewUpdateSpec(transcription.Table, transcription.Columns, sqlgraph.NewFieldSpec(transcription.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transcription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcription.FieldID)
		for _, f := range fields {
			if !transcription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcription.FieldID {
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
		_spec.SetField(transcription.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullText(); ok {
		_spec.SetField(transcription.FieldFullText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(transcription.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(transcription.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(transcription.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(transcription.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(transcription.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(transcription.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transcription.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transcription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
