package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/domains/user/repository"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

// Seeds the initial admin account. Safe to rerun: an existing email
// leaves the database untouched.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.App.Environment)

	email := utils.GetEnvVariable("ADMIN_EMAIL", "admin@portfolio.dev")
	password := utils.GetEnvVariable("ADMIN_PASSWORD", "")
	fullName := utils.GetEnvVariable("ADMIN_NAME", "Portfolio Admin")

	if password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD must be set")
	}
	if len(password) < 8 {
		log.Fatal().Msg("ADMIN_PASSWORD must be at least 8 characters")
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load database config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to postgres")
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	repo := repository.NewPostgresUserRepository(db.Pool)
	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			log.Info().Str("email", email).Msg("Admin user already exists, nothing to do")
			return
		}
		log.Fatal().Err(err).Msg("Failed to create admin user")
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("email", email).
		Msg("Admin user created")
}
