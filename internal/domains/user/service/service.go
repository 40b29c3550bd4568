package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/domains/user/repository"
	"portfolio-backend/pkg/jwt"
)

type userService struct {
	repo       repository.UserRepository
	jwtManager *jwt.Manager
}

func NewUserService(repo repository.UserRepository, jwtManager *jwt.Manager) UserService {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// Same error for unknown email and wrong password; the response
	// must not reveal which accounts exist
	if user == nil {
		return nil, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, model.ErrUserInactive
	}

	token, err := s.jwtManager.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID); err != nil {
		log.Warn().Err(err).
			Str("user_id", user.ID.String()).
			Msg("Failed to record last login")
	}

	return &model.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}
