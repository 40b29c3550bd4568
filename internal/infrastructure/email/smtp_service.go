package email

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"portfolio-backend/pkg/logger"
)

// ContactNotificationData carries the fields rendered into the
// owner-notification and auto-reply emails.
type ContactNotificationData struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	Phone      string
	Company    string
	ReceivedAt time.Time
}

type EmailService interface {
	// SendContactNotification notifies the portfolio owner about a new message
	SendContactNotification(ctx context.Context, data ContactNotificationData) error

	// SendAutoReply acknowledges the sender
	SendAutoReply(ctx context.Context, data ContactNotificationData) error
}

type smtpEmailService struct {
	enabled   bool
	smtpAddr  string
	from      string
	to        string
	autoReply bool
}

func NewSMTPEmailService(enabled bool, smtpHost, smtpPort, from, to string, autoReply bool) EmailService {
	return &smtpEmailService{
		enabled:   enabled,
		smtpAddr:  smtpHost + ":" + smtpPort,
		from:      from,
		to:        to,
		autoReply: autoReply,
	}
}

func (s *smtpEmailService) SendContactNotification(ctx context.Context, data ContactNotificationData) error {
	if !s.enabled {
		logger.Debug("Email disabled, skipping contact notification")
		return nil
	}

	subject := fmt.Sprintf("New contact message: %s", data.Subject)
	body := fmt.Sprintf(`You received a new message through the portfolio contact form.

From:    %s <%s>
Phone:   %s
Company: %s
Date:    %s

Subject: %s

%s`,
		data.Name, data.Email, orDash(data.Phone), orDash(data.Company),
		data.ReceivedAt.Format(time.RFC1123), data.Subject, data.Message)

	if err := s.send(s.to, subject, body); err != nil {
		logger.Info("Failed to send contact notification", map[string]interface{}{
			"error":     err.Error(),
			"to":        s.to,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}

func (s *smtpEmailService) SendAutoReply(ctx context.Context, data ContactNotificationData) error {
	if !s.enabled || !s.autoReply {
		return nil
	}

	subject := fmt.Sprintf("Re: %s", data.Subject)
	body := fmt.Sprintf(`Hi %s,

Thank you for reaching out! I received your message and will get back to you soon.

For reference, here is what you sent:

%s

Best regards`, data.Name, data.Message)

	if err := s.send(data.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send auto-reply: %w", err)
	}
	return nil
}

func (s *smtpEmailService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, to, subject, body))
	return smtp.SendMail(s.smtpAddr, nil, s.from, []string{to}, msg)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
