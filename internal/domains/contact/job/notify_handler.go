package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/contact/repository"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/internal/shared"
)

// NotifyHandler processes contact:notify tasks: it mails the portfolio
// owner and, when enabled, an auto-reply to the sender.
type NotifyHandler struct {
	repo  repository.ContactRepository
	email email.EmailService
}

func NewNotifyHandler(repo repository.ContactRepository, emailService email.EmailService) *NotifyHandler {
	return &NotifyHandler{
		repo:  repo,
		email: emailService,
	}
}

func (h *NotifyHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.ContactNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	msg, err := h.repo.GetByID(ctx, payload.MessageID)
	if err != nil {
		return fmt.Errorf("failed to load message %s: %w", payload.MessageID, err)
	}
	if msg == nil {
		// Message deleted before the task ran; nothing to send
		log.Debug().Str("message_id", payload.MessageID.String()).Msg("Notification for deleted message")
		return nil
	}

	data := email.ContactNotificationData{
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		Message:    msg.Message,
		Phone:      msg.Phone,
		Company:    msg.Company,
		ReceivedAt: msg.CreatedAt,
	}

	if err := h.email.SendContactNotification(ctx, data); err != nil {
		return fmt.Errorf("failed to notify owner for %s: %w", msg.ID, err)
	}

	// The auto-reply is best-effort; a bad sender address must not
	// requeue the owner notification
	if err := h.email.SendAutoReply(ctx, data); err != nil {
		log.Error().Err(err).
			Str("message_id", msg.ID.String()).
			Str("email", msg.Email).
			Msg("Failed to send auto-reply")
	}

	return nil
}
