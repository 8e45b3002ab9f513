package notify

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/callsight/callsight/ent/notification"
	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/projector"
	testdb "github.com/callsight/callsight/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAlert(callID string) Alert {
	return Alert{
		CallID:   callID,
		Type:     TypeHighChurn,
		Priority: PriorityHigh,
		Channel:  ChannelEmail,
		Subject:  "High churn risk on call " + callID,
		Body:     "Predicted churn risk 0.85",
	}
}

func TestNotificationService_StateMachine(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNotificationService(client.Client)
	ctx := context.Background()

	t.Run("enqueue creates a pending row", func(t *testing.T) {
		row, err := svc.Enqueue(ctx, testAlert("c-1"), "supervisor@example.com")
		require.NoError(t, err)
		assert.Equal(t, notification.StatusPending, row.Status)
		assert.Nil(t, row.SentAt)
		assert.Nil(t, row.ErrorMessage)
	})

	t.Run("invalid recipient fails at enqueue", func(t *testing.T) {
		row, err := svc.Enqueue(ctx, testAlert("c-2"), "not-an-address")
		require.NoError(t, err)
		assert.Equal(t, notification.StatusFailed, row.Status)
		require.NotNil(t, row.ErrorMessage)
		assert.Equal(t, InvalidRecipientReason, *row.ErrorMessage)
	})

	t.Run("mark sent", func(t *testing.T) {
		row, err := svc.Enqueue(ctx, testAlert("c-3"), "supervisor@example.com")
		require.NoError(t, err)

		sent, err := svc.MarkSent(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, notification.StatusSent, sent.Status)
		assert.NotNil(t, sent.SentAt)
	})

	t.Run("mark failed records the reason", func(t *testing.T) {
		row, err := svc.Enqueue(ctx, testAlert("c-4"), "supervisor@example.com")
		require.NoError(t, err)

		failed, err := svc.MarkFailed(ctx, row.ID, "smtp send failed: connection refused")
		require.NoError(t, err)
		assert.Equal(t, notification.StatusFailed, failed.Status)
		require.NotNil(t, failed.ErrorMessage)
		assert.Contains(t, *failed.ErrorMessage, "connection refused")
	})

	t.Run("resend resets a failed row to pending", func(t *testing.T) {
		row, err := svc.Enqueue(ctx, testAlert("c-5"), "supervisor@example.com")
		require.NoError(t, err)
		_, err = svc.MarkFailed(ctx, row.ID, "smtp send failed")
		require.NoError(t, err)

		reset, err := svc.Resend(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, notification.StatusPending, reset.Status)
		assert.Nil(t, reset.ErrorMessage)
		assert.Nil(t, reset.SentAt)
	})

	t.Run("resend resets a sent row", func(t *testing.T) {
		row, err := svc.Enqueue(ctx, testAlert("c-6"), "supervisor@example.com")
		require.NoError(t, err)
		_, err = svc.MarkSent(ctx, row.ID)
		require.NoError(t, err)

		reset, err := svc.Resend(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, notification.StatusPending, reset.Status)
		assert.Nil(t, reset.SentAt)
	})

	t.Run("resend rejects a pending row", func(t *testing.T) {
		row, err := svc.Enqueue(ctx, testAlert("c-7"), "supervisor@example.com")
		require.NoError(t, err)

		_, err = svc.Resend(ctx, row.ID)
		require.Error(t, err)
		assert.True(t, projector.IsValidationError(err))
	})

	t.Run("resend rejects an invalid recipient", func(t *testing.T) {
		row, err := svc.Enqueue(ctx, testAlert("c-8"), "not-an-address")
		require.NoError(t, err)

		_, err = svc.Resend(ctx, row.ID)
		require.Error(t, err)
		assert.True(t, projector.IsValidationError(err))
	})

	t.Run("unknown notification", func(t *testing.T) {
		_, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, projector.ErrNotFound)

		_, err = svc.MarkSent(ctx, "missing")
		assert.ErrorIs(t, err, projector.ErrNotFound)
	})
}

func TestNotificationService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNotificationService(client.Client)
	ctx := context.Background()

	row1, err := svc.Enqueue(ctx, testAlert("call-list"), "supervisor@example.com")
	require.NoError(t, err)
	row2, err := svc.Enqueue(ctx, testAlert("call-list"), "manager@example.com")
	require.NoError(t, err)
	_, err = svc.Enqueue(ctx, testAlert("call-other"), "supervisor@example.com")
	require.NoError(t, err)
	_, err = svc.MarkSent(ctx, row2.ID)
	require.NoError(t, err)

	t.Run("filters by call id", func(t *testing.T) {
		rows, err := svc.List(ctx, "call-list", "", 0)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		rows, err := svc.List(ctx, "call-list", "pending", 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, row1.ID, rows[0].ID)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := svc.List(ctx, "", "delivered", 0)
		require.Error(t, err)
		assert.True(t, projector.IsValidationError(err))
	})
}

// fakeSender records deliveries and fails recipients on its deny list.
type fakeSender struct {
	sent []string
	deny map[string]bool
}

func (f *fakeSender) Send(_ context.Context, recipient, _, _ string) error {
	if f.deny[recipient] {
		return errors.New("delivery refused")
	}
	f.sent = append(f.sent, recipient)
	return nil
}

func TestDispatcher_Dispatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNotificationService(client.Client)
	engine := NewEngine(config.DefaultAlertConfig())
	ctx := context.Background()

	t.Run("delivers to every recipient and marks rows sent", func(t *testing.T) {
		email := &fakeSender{}
		d := NewDispatcher(engine, svc, map[string]Sender{ChannelEmail: email})

		err := d.Dispatch(ctx, []Alert{testAlert("disp-1")})
		require.NoError(t, err)
		assert.Equal(t, []string{"supervisor@example.com", "manager@example.com"}, email.sent)

		rows, err := svc.List(ctx, "disp-1", "sent", 0)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("delivery failure is recorded, not propagated", func(t *testing.T) {
		email := &fakeSender{deny: map[string]bool{"manager@example.com": true}}
		d := NewDispatcher(engine, svc, map[string]Sender{ChannelEmail: email})

		err := d.Dispatch(ctx, []Alert{testAlert("disp-2")})
		require.NoError(t, err)

		failed, err := svc.List(ctx, "disp-2", "failed", 0)
		require.NoError(t, err)
		require.Len(t, failed, 1)
		assert.Equal(t, "manager@example.com", failed[0].Recipient)
		require.NotNil(t, failed[0].ErrorMessage)
		assert.Contains(t, *failed[0].ErrorMessage, "delivery refused")

		sent, err := svc.List(ctx, "disp-2", "sent", 0)
		require.NoError(t, err)
		assert.Len(t, sent, 1)
	})

	t.Run("missing sender fails the row without delivery", func(t *testing.T) {
		d := NewDispatcher(engine, svc, map[string]Sender{})
		alert := testAlert("disp-3")
		alert.Priority = PriorityNormal

		err := d.Dispatch(ctx, []Alert{alert})
		require.NoError(t, err)

		rows, err := svc.List(ctx, "disp-3", "failed", 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].ErrorMessage)
		assert.Equal(t, "channel not configured", *rows[0].ErrorMessage)
	})

	t.Run("invalid recipient is never handed to the sender", func(t *testing.T) {
		cfg := config.DefaultAlertConfig()
		cfg.Supervisor.Email = "broken-address"
		strict := NewEngine(cfg)
		email := &fakeSender{}
		d := NewDispatcher(strict, svc, map[string]Sender{ChannelEmail: email})

		alert := testAlert("disp-4")
		alert.Priority = PriorityNormal
		err := d.Dispatch(ctx, []Alert{alert})
		require.NoError(t, err)
		assert.Empty(t, email.sent)

		rows, err := svc.List(ctx, "disp-4", "failed", 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, InvalidRecipientReason, *rows[0].ErrorMessage)
	})
}

func TestDispatcher_ResendNotification(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNotificationService(client.Client)
	engine := NewEngine(config.DefaultAlertConfig())
	ctx := context.Background()

	t.Run("resend retries a failed delivery", func(t *testing.T) {
		email := &fakeSender{deny: map[string]bool{"supervisor@example.com": true}}
		d := NewDispatcher(engine, svc, map[string]Sender{ChannelEmail: email})

		alert := testAlert("resend-1")
		alert.Priority = PriorityNormal
		require.NoError(t, d.Dispatch(ctx, []Alert{alert}))

		failed, err := svc.List(ctx, "resend-1", "failed", 0)
		require.NoError(t, err)
		require.Len(t, failed, 1)

		email.deny = nil
		row, err := d.ResendNotification(ctx, failed[0].ID)
		require.NoError(t, err)
		assert.Equal(t, notification.StatusSent, row.Status)
		assert.Equal(t, []string{"supervisor@example.com"}, email.sent)
	})

	t.Run("resend of an invalid recipient is rejected", func(t *testing.T) {
		row, err := svc.Enqueue(ctx, testAlert("resend-2"), "broken")
		require.NoError(t, err)

		d := NewDispatcher(engine, svc, map[string]Sender{ChannelEmail: &fakeSender{}})
		_, err = d.ResendNotification(ctx, row.ID)
		require.Error(t, err)
		assert.True(t, projector.IsValidationError(err))
	})

	t.Run("resend of an unknown row", func(t *testing.T) {
		d := NewDispatcher(engine, svc, map[string]Sender{ChannelEmail: &fakeSender{}})
		_, err := d.ResendNotification(ctx, fmt.Sprintf("missing-%d", 42))
		assert.ErrorIs(t, err, projector.ErrNotFound)
	})
}

func TestValidateRecipient(t *testing.T) {
	tests := []struct {
		channel   string
		recipient string
		valid     bool
	}{
		{ChannelEmail, "supervisor@example.com", true},
		{ChannelEmail, "not-an-address", false},
		{ChannelChat, "#call-quality", true},
		{ChannelChat, "", false},
		{ChannelWebhook, "https://hooks.example.com/alerts", true},
		{ChannelWebhook, "ftp://example.com", false},
		{ChannelWebhook, "https://", false},
		{"pager", "oncall", false},
	}
	for _, tt := range tests {
		t.Run(tt.channel+" "+tt.recipient, func(t *testing.T) {
			err := ValidateRecipient(tt.channel, tt.recipient)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
