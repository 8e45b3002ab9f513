// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callsight/callsight/ent/predicate"
	"github.com/callsight/callsight/ent/transcription"
	"github.com/callsight/callsight/ent/transcriptsegment"
)

// TranscriptSegmentUpdate is the builder for updating TranscriptSegment entities.
type TranscriptSegmentUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptSegmentMutation
}

// Where appends a list predicates to the TranscriptSegmentUpdate builder.
func (_u *TranscriptSegmentUpdate) Where(ps ...predicate.TranscriptSegment) *TranscriptSegmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTranscriptionID sets the "transcription_id" field.
func (_u *TranscriptSegmentUpdate) SetTranscriptionID(v string) *TranscriptSegmentUpdate {
	_u.mutation.SetTranscriptionID(v)
	return _u
}

// SetNillableTranscriptionID sets the "transcription_id" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableTranscriptionID(v *string) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetTranscriptionID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *TranscriptSegmentUpdate) SetPosition(v int) *TranscriptSegmentUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillablePosition(v *int) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *TranscriptSegmentUpdate) AddPosition(v int) *TranscriptSegmentUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetSpeaker sets the "speaker" field.
func (_u *TranscriptSegmentUpdate) SetSpeaker(v transcriptsegment.Speaker) *TranscriptSegmentUpdate {
	_u.mutation.SetSpeaker(v)
	return _u
}

// SetNillableSpeaker sets the "speaker" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableSpeaker(v *transcriptsegment.Speaker) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetSpeaker(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TranscriptSegmentUpdate) SetStartTime(v float64) *TranscriptSegmentUpdate {
	_u.mutation.ResetStartTime()
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableStartTime(v *float64) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// AddStartTime adds value to the "start_time" field.
func (_u *TranscriptSegmentUpdate) AddStartTime(v float64) *TranscriptSegmentUpdate {
	_u.mutation.AddStartTime(v)
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TranscriptSegmentUpdate) SetEndTime(v float64) *TranscriptSegmentUpdate {
	_u.mutation.ResetEndTime()
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableEndTime(v *float64) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// AddEndTime adds value to the "end_time" field.
func (_u *TranscriptSegmentUpdate) AddEndTime(v float64) *TranscriptSegmentUpdate {
	_u.mutation.AddEndTime(v)
	return _u
}

// SetText sets the "text" field.
func (_u *TranscriptSegmentUpdate) SetText(v string) *TranscriptSegmentUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableText(v *string) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TranscriptSegmentUpdate) SetConfidence(v float64) *TranscriptSegmentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableConfidence(v *float64) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TranscriptSegmentUpdate) AddConfidence(v float64) *TranscriptSegmentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TranscriptSegmentUpdate) ClearConfidence() *TranscriptSegmentUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetTranscription sets the "transcription" edge to the Transcription entity.
func (_u *TranscriptSegmentUpdate) SetTranscription(v *Transcription) *TranscriptSegmentUpdate {
	return _u.SetTranscriptionID(v.ID)
}

// Mutation returns the TranscriptSegmentMutation object of the builder.
func (_u *TranscriptSegmentUpdate) Mutation() *TranscriptSegmentMutation {
	return _u.mutation
}

// ClearTranscription clears the "transcription" edge to the Transcription entity.
func (_u *TranscriptSegmentUpdate) ClearTranscription() *TranscriptSegmentUpdate {
	_u.mutation.ClearTranscription()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptSegmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptSegmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptSegmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptSegmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptSegmentUpdate) check() error {
	if v, ok := _u.mutation.Speaker(); ok {
		if err := transcriptsegment.SpeakerValidator(v); err != nil {
			return &ValidationError{Name: "speaker", err: fmt.Errorf(`ent: validator failed for field "TranscriptSegment.speaker": %w`, err)}
		}
	}
	if _u.mutation.TranscriptionCleared() && len(_u.mutation.TranscriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TranscriptSegment.transcription"`)
	}
	return nil
}

func (_u *TranscriptSegmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptsegment.Table, transcriptsegment.Columns, sqlgraph.NewFieldSpec(transcriptsegment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(transcriptsegment.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(transcriptsegment.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Speaker(); ok {
		_spec.SetField(transcriptsegment.FieldSpeaker, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(transcriptsegment.FieldStartTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStartTime(); ok {
		_spec.AddField(transcriptsegment.FieldStartTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(transcriptsegment.FieldEndTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndTime(); ok {
		_spec.AddField(transcriptsegment.FieldEndTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(transcriptsegment.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(transcriptsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(transcriptsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(transcriptsegment.FieldConfidence, field.TypeFloat64)
	}
	if _u.mutation.TranscriptionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptsegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptSegmentUpdateOne is the builder for updating a single TranscriptSegment entity.
type TranscriptSegmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptSegmentMutation
}

// SetTranscriptionID sets the "transcription_id" field.
func (_u *TranscriptSegmentUpdateOne) SetTranscriptionID(v string) *TranscriptSegmentUpdateOne {
	_u.mutation.SetTranscriptionID(v)
	return _u
}

// SetNillableTranscriptionID sets the "transcription_id" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableTranscriptionID(v *string) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetTranscriptionID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *TranscriptSegmentUpdateOne) SetPosition(v int) *TranscriptSegmentUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillablePosition(v *int) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *TranscriptSegmentUpdateOne) AddPosition(v int) *TranscriptSegmentUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetSpeaker sets the "speaker" field.
func (_u *TranscriptSegmentUpdateOne) SetSpeaker(v transcriptsegment.Speaker) *TranscriptSegmentUpdateOne {
	_u.mutation.SetSpeaker(v)
	return _u
}

// SetNillableSpeaker sets the "speaker" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableSpeaker(v *transcriptsegment.Speaker) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetSpeaker(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TranscriptSegmentUpdateOne) SetStartTime(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.ResetStartTime()
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableStartTime(v *float64) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// AddStartTime adds value to the "start_time" field.
func (_u *TranscriptSegmentUpdateOne) AddStartTime(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.AddStartTime(v)
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TranscriptSegmentUpdateOne) SetEndTime(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.ResetEndTime()
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableEndTime(v *float64) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// AddEndTime adds value to the "end_time" field.
func (_u *TranscriptSegmentUpdateOne) AddEndTime(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.AddEndTime(v)
	return _u
}

// SetText sets the "text" field.
func (_u *TranscriptSegmentUpdateOne) SetText(v string) *TranscriptSegmentUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableText(v *string) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TranscriptSegmentUpdateOne) SetConfidence(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableConfidence(v *float64) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TranscriptSegmentUpdateOne) AddConfidence(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TranscriptSegmentUpdateOne) ClearConfidence() *TranscriptSegmentUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetTranscription sets the "transcription" edge to the Transcription entity.
func (_u *TranscriptSegmentUpdateOne) SetTranscription(v *Transcription) *TranscriptSegmentUpdateOne {
	return _u.SetTranscriptionID(v.ID)
}

// Mutation returns the TranscriptSegmentMutation object of the builder.
func (_u *TranscriptSegmentUpdateOne) Mutation() *TranscriptSegmentMutation {
	return _u.mutation
}

// ClearTranscription clears the "transcription" edge to the Transcription entity.
func (_u *TranscriptSegmentUpdateOne) ClearTranscription() *TranscriptSegmentUpdateOne {
	_u.mutation.ClearTranscription()
	return _u
}

// Where appends a list predicates to the TranscriptSegmentUpdate builder.
func (_u *TranscriptSegmentUpdateOne) Where(ps ...predicate.TranscriptSegment) *TranscriptSegmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptSegmentUpdateOne) Select(field string, fields ...string) *TranscriptSegmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranscriptSegment entity.
func (_u *TranscriptSegmentUpdateOne) Save(ctx context.Context) (*TranscriptSegment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptSegmentUpdateOne) SaveX(ctx context.Context) *TranscriptSegment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptSegmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptSegmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptSegmentUpdateOne) check() error {
	if v, ok := _u.mutation.Speaker(); ok {
		if err := transcriptsegment.SpeakerValidator(v); err != nil {
			return &ValidationError{Name: "speaker", err: fmt.Errorf(`ent: validator failed for field "TranscriptSegment.speaker": %w`, err)}
		}
	}
	if _u.mutation.TranscriptionCleared() && len(_u.mutation.TranscriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TranscriptSegment.transcription"`)
	}
	return nil
}

func (_u *TranscriptSegmentUpdateOne) sqlSave(ctx context.Context) (_node *TranscriptSegment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptsegment.Table, transcriptsegment.Columns, sqlgraph.NewFieldSpec(transcriptsegment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranscriptSegment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcriptsegment.FieldID)
		for _, f := range fields {
			if !transcriptsegment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcriptsegment.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(transcriptsegment.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(transcriptsegment.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Speaker(); ok {
		_spec.SetField(transcriptsegment.FieldSpeaker, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(transcriptsegment.FieldStartTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStartTime(); ok {
		_spec.AddField(transcriptsegment.FieldStartTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(transcriptsegment.FieldEndTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndTime(); ok {
		_spec.AddField(transcriptsegment.FieldEndTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(transcriptsegment.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(transcriptsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(transcriptsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(transcriptsegment.FieldConfidence, field.TypeFloat64)
	}
	if _u.mutation.TranscriptionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TranscriptSegment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptsegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
