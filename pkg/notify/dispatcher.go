package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/ent/notification"
	"github.com/callsight/callsight/pkg/projector"
)

// Dispatcher fans alerts out to recipients and drives each notification
// row through its state machine. Delivery is at-least-once against the
// external systems; a failed delivery is recorded on the row and left for
// an operator resend rather than retried automatically.
type Dispatcher struct {
	engine  *Engine
	service *NotificationService
	senders map[string]Sender
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher with one sender per channel. A
// missing sender fails deliveries on that channel with a recorded reason.
func NewDispatcher(engine *Engine, service *NotificationService, senders map[string]Sender) *Dispatcher {
	return &Dispatcher{
		engine:  engine,
		service: service,
		senders: senders,
		logger:  slog.Default().With("component", "dispatcher"),
	}
}

// Dispatch persists and attempts delivery for every alert. Row creation
// errors propagate (they are transient store failures and the event should
// be retried); delivery failures do not.
func (d *Dispatcher) Dispatch(ctx context.Context, alerts []Alert) error {
	for _, alert := range alerts {
		for _, recipient := range d.engine.Recipients(alert) {
			row, err := d.service.Enqueue(ctx, alert, recipient)
			if err != nil {
				return err
			}
			if row.Status == notification.StatusFailed {
				d.logger.Warn("Notification rejected at enqueue",
					"notification_id", row.ID, "call_id", alert.CallID,
					"channel", alert.Channel, "recipient", recipient)
				continue
			}
			d.deliver(ctx, row)
		}
	}
	return nil
}

// ResendNotification resets a terminal notification and re-attempts
// delivery.
func (d *Dispatcher) ResendNotification(ctx context.Context, id string) (*ent.Notification, error) {
	row, err := d.service.Resend(ctx, id)
	if err != nil {
		return nil, err
	}
	return d.deliver(ctx, row), nil
}

func (d *Dispatcher) deliver(ctx context.Context, row *ent.Notification) *ent.Notification {
	log := d.logger.With("notification_id", row.ID, "call_id", row.CallID,
		"channel", row.Channel, "type", row.NotificationType)

	sender, ok := d.senders[string(row.Channel)]
	if !ok {
		log.Error("No sender configured for channel")
		return d.mark(ctx, row, "", "channel not configured")
	}

	if err := sender.Send(ctx, row.Recipient, row.Subject, row.Body); err != nil {
		log.Warn("Delivery failed", "error", err)
		return d.mark(ctx, row, "", err.Error())
	}
	log.Info("Notification delivered")
	return d.mark(ctx, row, "sent", "")
}

func (d *Dispatcher) mark(ctx context.Context, row *ent.Notification, outcome, reason string) *ent.Notification {
	var updated *ent.Notification
	var err error
	if outcome == "sent" {
		updated, err = d.service.MarkSent(ctx, row.ID)
	} else {
		updated, err = d.service.MarkFailed(ctx, row.ID, reason)
	}
	if err != nil && !errors.Is(err, projector.ErrNotFound) {
		d.logger.Error("Failed to record delivery outcome",
			"notification_id", row.ID, "error", err)
		return row
	}
	return updated
}
