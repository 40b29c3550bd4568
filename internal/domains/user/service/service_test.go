package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/pkg/jwt"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserRepository) Create(ctx context.Context, user *model.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return model.ErrEmailTaken
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	if u, ok := f.users[id]; ok {
		now := time.Now().UTC()
		u.LastLoginAt = &now
	}
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepository, email, password string, active bool) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Test Admin",
		Role:         model.RoleAdmin,
		IsActive:     active,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	jwtManager := jwt.NewManager("test-secret", 60)

	t.Run("valid credentials", func(t *testing.T) {
		repo := newFakeUserRepository()
		user := seedUser(t, repo, "admin@example.com", "correct horse", true)
		svc := NewUserService(repo, jwtManager)

		result, err := svc.Login(ctx, model.LoginRequest{
			Email:    "Admin@Example.com",
			Password: "correct horse",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, user.ID, result.User.ID)

		claims, err := jwtManager.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, model.RoleAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newFakeUserRepository()
		seedUser(t, repo, "admin@example.com", "correct horse", true)
		svc := NewUserService(repo, jwtManager)

		_, err := svc.Login(ctx, model.LoginRequest{
			Email:    "admin@example.com",
			Password: "wrong password",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown email uses same error as wrong password", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepository(), jwtManager)

		_, err := svc.Login(ctx, model.LoginRequest{
			Email:    "nobody@example.com",
			Password: "irrelevant",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		repo := newFakeUserRepository()
		seedUser(t, repo, "admin@example.com", "correct horse", false)
		svc := NewUserService(repo, jwtManager)

		_, err := svc.Login(ctx, model.LoginRequest{
			Email:    "admin@example.com",
			Password: "correct horse",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUserInactive)
	})

	t.Run("malformed request", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepository(), jwtManager)

		_, err := svc.Login(ctx, model.LoginRequest{Email: "not-email", Password: "short"})
		require.Error(t, err)
	})
}
