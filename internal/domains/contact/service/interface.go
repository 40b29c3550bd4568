package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact/model"
)

// SubmitMeta carries request metadata captured at the transport edge
type SubmitMeta struct {
	IPAddress string
	UserAgent string
	Source    string
}

// ContactService handles the public form and the admin inbox
type ContactService interface {
	// Submit stores an inbound message and queues the owner notification
	Submit(ctx context.Context, req model.CreateContactMessageRequest, meta SubmitMeta) (*model.ContactMessage, error)
	AdminList(ctx context.Context, req model.ListContactMessagesRequest) ([]*model.ContactMessage, int, error)
	// AdminGet returns a message, moving it from unread to read
	AdminGet(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateContactMessageRequest) (*model.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*model.InboxStats, error)
}

// Notifier queues the owner notification for a stored message
type Notifier interface {
	EnqueueContactNotify(messageID uuid.UUID) error
}
