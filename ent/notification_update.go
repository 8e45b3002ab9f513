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
	"github.com/callsight/callsight/ent/notification"
	"github.com/callsight/callsight/ent/predicate"
)

// NotificationUpdate is the builder for updating Notification entities.
type NotificationUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationMutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (_u *NotificationUpdate) Where(ps ...predicate.Notification) *NotificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *NotificationUpdate) SetCallID(v string) *NotificationUpdate {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableCallID(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetNotificationType sets the "notification_type" field.
func (_u *NotificationUpdate) SetNotificationType(v string) *NotificationUpdate {
	_u.mutation.SetNotificationType(v)
	return _u
}

// SetNillableNotificationType sets the "notification_type" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableNotificationType(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetNotificationType(*v)
	}
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *NotificationUpdate) SetRecipient(v string) *NotificationUpdate {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableRecipient(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *NotificationUpdate) SetChannel(v notification.Channel) *NotificationUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableChannel(v *notification.Channel) *NotificationUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *NotificationUpdate) SetSubject(v string) *NotificationUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableSubject(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *NotificationUpdate) SetBody(v string) *NotificationUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableBody(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NotificationUpdate) SetPriority(v notification.Priority) *NotificationUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillablePriority(v *notification.Priority) *NotificationUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NotificationUpdate) SetStatus(v notification.Status) *NotificationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableStatus(v *notification.Status) *NotificationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *NotificationUpdate) SetSentAt(v time.Time) *NotificationUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableSentAt(v *time.Time) *NotificationUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *NotificationUpdate) ClearSentAt() *NotificationUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *NotificationUpdate) SetErrorMessage(v string) *NotificationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableErrorMessage(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *NotificationUpdate) ClearErrorMessage() *NotificationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *NotificationUpdate) SetCreatedAt(v time.Time) *NotificationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableCreatedAt(v *time.Time) *NotificationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the NotificationMutation object of the builder.
func (_u *NotificationUpdate) Mutation() *NotificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationUpdate) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := notification.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "Notification.channel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := notification.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Notification.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := notification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Notification.status": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(notification.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NotificationType(); ok {
		_spec.SetField(notification.FieldNotificationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(notification.FieldRecipient, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(notification.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(notification.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(notification.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(notification.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(notification.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(notification.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(notification.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(notification.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(notification.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationUpdateOne is the builder for updating a single Notification entity.
type NotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationMutation
}

// SetCallID sets the "call_id" field.
func (_u *NotificationUpdateOne) SetCallID(v string) *NotificationUpdateOne {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableCallID(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetNotificationType sets the "notification_type" field.
func (_u *NotificationUpdateOne) SetNotificationType(v string) *NotificationUpdateOne {
	_u.mutation.SetNotificationType(v)
	return _u
}

// SetNillableNotificationType sets the "notification_type" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableNotificationType(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetNotificationType(*v)
	}
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *NotificationUpdateOne) SetRecipient(v string) *NotificationUpdateOne {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableRecipient(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *NotificationUpdateOne) SetChannel(v notification.Channel) *NotificationUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableChannel(v *notification.Channel) *NotificationUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *NotificationUpdateOne) SetSubject(v string) *NotificationUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableSubject(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *NotificationUpdateOne) SetBody(v string) *NotificationUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableBody(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NotificationUpdateOne) SetPriority(v notification.Priority) *NotificationUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillablePriority(v *notification.Priority) *NotificationUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NotificationUpdateOne) SetStatus(v notification.Status) *NotificationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableStatus(v *notification.Status) *NotificationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *NotificationUpdateOne) SetSentAt(v time.Time) *NotificationUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableSentAt(v *time.Time) *NotificationUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *NotificationUpdateOne) ClearSentAt() *NotificationUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *NotificationUpdateOne) SetErrorMessage(v string) *NotificationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableErrorMessage(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *NotificationUpdateOne) ClearErrorMessage() *NotificationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *NotificationUpdateOne) SetCreatedAt(v time.Time) *NotificationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableCreatedAt(v *time.Time) *NotificationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the NotificationMutation object of the builder.
func (_u *NotificationUpdateOne) Mutation() *NotificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (_u *NotificationUpdateOne) Where(ps ...predicate.Notification) *NotificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationUpdateOne) Select(field string, fields ...string) *NotificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Notification entity.
func (_u *NotificationUpdateOne) Save(ctx context.Context) (*Notification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationUpdateOne) SaveX(ctx context.Context) *Notification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationUpdateOne) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := notification.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "Notification.channel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := notification.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Notification.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := notification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Notification.status": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationUpdateOne) sqlSave(ctx context.Context) (_node *Notification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Notification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notification.FieldID)
		for _, f := range fields {
			if !notification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notification.FieldID {
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
		_spec.SetField(notification.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NotificationType(); ok {
		_spec.SetField(notification.FieldNotificationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(notification.FieldRecipient, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(notification.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(notification.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(notification.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(notification.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(notification.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(notification.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(notification.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(notification.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(notification.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Notification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
