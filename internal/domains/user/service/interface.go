package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/user/model"
)

// UserService handles admin authentication
type UserService interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
