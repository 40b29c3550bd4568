package email

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDisabledServiceSendsNothing(t *testing.T) {
	// Deliberately unreachable SMTP address: a send attempt would fail,
	// so a nil error proves delivery was skipped entirely.
	svc := NewSMTPEmailService(false, "127.0.0.1", "1", "from@example.com", "owner@example.com", true)

	data := ContactNotificationData{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Subject:    "Hello",
		Message:    "A message",
		ReceivedAt: time.Now(),
	}

	require.NoError(t, svc.SendContactNotification(context.Background(), data))
	require.NoError(t, svc.SendAutoReply(context.Background(), data))
}

func TestAutoReplySkippedWhenDisabled(t *testing.T) {
	svc := NewSMTPEmailService(true, "127.0.0.1", "1", "from@example.com", "owner@example.com", false)

	data := ContactNotificationData{Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "m"}
	require.NoError(t, svc.SendAutoReply(context.Background(), data))
}
