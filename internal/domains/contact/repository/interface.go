package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact/model"
)

// ContactRepository persists inbound contact messages
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	Update(ctx context.Context, msg *model.ContactMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.ContactFilter) ([]*model.ContactMessage, int, error)
	Stats(ctx context.Context) (*model.InboxStats, error)
}
