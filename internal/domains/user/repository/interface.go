package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/user/model"
)

// UserRepository persists admin accounts
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
