package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/ent/notification"
	"github.com/callsight/callsight/pkg/projector"
	"github.com/google/uuid"
)

// InvalidRecipientReason is recorded on rows whose recipient failed
// validation at enqueue time. Such rows are terminal and never retried.
const InvalidRecipientReason = "invalid_recipient"

// NotificationService owns the notification rows and their state machine:
// pending -> sent | failed, with resend resetting a terminal row to
// pending.
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// Enqueue creates the notification row for one recipient. Rows with an
// invalid recipient are created directly in failed with the
// invalid_recipient reason; the caller must not attempt delivery for them.
func (s *NotificationService) Enqueue(httpCtx context.Context, alert Alert, recipient string) (*ent.Notification, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.Notification.Create().
		SetID(uuid.New().String()).
		SetCallID(alert.CallID).
		SetNotificationType(alert.Type).
		SetRecipient(recipient).
		SetChannel(notification.Channel(alert.Channel)).
		SetSubject(alert.Subject).
		SetBody(alert.Body).
		SetPriority(notification.Priority(alert.Priority))

	if err := ValidateRecipient(alert.Channel, recipient); err != nil {
		builder.SetStatus(notification.StatusFailed).
			SetErrorMessage(InvalidRecipientReason)
	} else {
		builder.SetStatus(notification.StatusPending)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return row, nil
}

// MarkSent transitions pending -> sent.
func (s *NotificationService) MarkSent(ctx context.Context, id string) (*ent.Notification, error) {
	row, err := s.client.Notification.UpdateOneID(id).
		SetStatus(notification.StatusSent).
		SetSentAt(time.Now()).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, projector.ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark notification %s sent: %w", id, err)
	}
	return row, nil
}

// MarkFailed transitions pending -> failed with the delivery error.
func (s *NotificationService) MarkFailed(ctx context.Context, id, reason string) (*ent.Notification, error) {
	row, err := s.client.Notification.UpdateOneID(id).
		SetStatus(notification.StatusFailed).
		SetErrorMessage(reason).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, projector.ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark notification %s failed: %w", id, err)
	}
	return row, nil
}

// Resend resets a terminal row to pending so delivery can be re-attempted.
// Rows stuck at invalid_recipient stay terminal: re-sending cannot fix the
// address. Rows already pending are rejected.
func (s *NotificationService) Resend(httpCtx context.Context, id string) (*ent.Notification, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.Status == notification.StatusPending {
		return nil, projector.NewValidationError("status", "notification is already pending")
	}
	if row.ErrorMessage != nil && *row.ErrorMessage == InvalidRecipientReason {
		return nil, projector.NewValidationError("recipient", "recipient is invalid, resend cannot succeed")
	}

	row, err = s.client.Notification.UpdateOneID(id).
		SetStatus(notification.StatusPending).
		ClearErrorMessage().
		ClearSentAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset notification %s: %w", id, err)
	}
	return row, nil
}

// Get returns one notification or ErrNotFound.
func (s *NotificationService) Get(ctx context.Context, id string) (*ent.Notification, error) {
	row, err := s.client.Notification.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, projector.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get notification %s: %w", id, err)
	}
	return row, nil
}

// List returns notifications filtered by call id and/or status, newest
// first.
func (s *NotificationService) List(ctx context.Context, callID, status string, limit int) ([]*ent.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	q := s.client.Notification.Query().
		Order(ent.Desc(notification.FieldCreatedAt)).
		Limit(limit)
	if callID != "" {
		q = q.Where(notification.CallID(callID))
	}
	if status != "" {
		if err := notification.StatusValidator(notification.Status(status)); err != nil {
			return nil, projector.NewValidationError("status", "must be one of pending, sent, failed")
		}
		q = q.Where(notification.StatusEQ(notification.Status(status)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return rows, nil
}
