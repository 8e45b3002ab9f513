package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"net/smtp"
	"net/url"
	"time"

	"github.com/callsight/callsight/pkg/config"
	goslack "github.com/slack-go/slack"
)

// Sender delivers one message to one recipient on one channel.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// ValidateRecipient checks the channel-specific recipient format. Invalid
// recipients are a permanent failure at enqueue time.
func ValidateRecipient(channel, recipient string) error {
	switch channel {
	case ChannelEmail:
		if _, err := mail.ParseAddress(recipient); err != nil {
			return fmt.Errorf("invalid email address %q", recipient)
		}
	case ChannelChat:
		if recipient == "" {
			return fmt.Errorf("empty chat channel")
		}
	case ChannelWebhook:
		u, err := url.Parse(recipient)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid webhook url %q", recipient)
		}
	default:
		return fmt.Errorf("unknown channel %q", channel)
	}
	return nil
}

// ChatSender posts alerts to Slack channels.
type ChatSender struct {
	api *goslack.Client
}

// NewChatSender creates a Slack-backed chat sender.
func NewChatSender(token string) *ChatSender {
	return &ChatSender{api: goslack.New(token)}
}

// NewChatSenderWithAPIURL targets a custom API URL. Useful for testing
// with a mock server.
func NewChatSenderWithAPIURL(token, apiURL string) *ChatSender {
	return &ChatSender{api: goslack.New(token, goslack.OptionAPIURL(apiURL))}
}

func (s *ChatSender) Send(ctx context.Context, recipient, subject, body string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, _, err := s.api.PostMessageContext(ctx, recipient,
		goslack.MsgOptionText(fmt.Sprintf("*%s*\n%s", subject, body), false))
	if err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}

// EmailSender delivers alerts over SMTP.
type EmailSender struct {
	cfg  *config.NotificationConfig
	auth smtp.Auth
}

// NewEmailSender creates an SMTP sender. Username and password may be
// empty for an unauthenticated relay.
func NewEmailSender(cfg *config.NotificationConfig, username, password string) *EmailSender {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, cfg.SMTPHost)
	}
	return &EmailSender{cfg: cfg, auth: auth}
}

func (s *EmailSender) Send(_ context.Context, recipient, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.cfg.SMTPFrom, recipient, subject, body)
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	if err := smtp.SendMail(addr, s.auth, s.cfg.SMTPFrom, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// WebhookSender POSTs the alert as JSON to the recipient URL.
type WebhookSender struct {
	client *http.Client
}

// NewWebhookSender creates a webhook sender.
func NewWebhookSender() *WebhookSender {
	return &WebhookSender{client: &http.Client{Timeout: 10 * time.Second}}
}

func (s *WebhookSender) Send(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(map[string]string{"subject": subject, "body": body})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, recipient, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook post failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
