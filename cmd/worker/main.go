package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/config"
	contactjob "portfolio-backend/internal/domains/contact/job"
	contactrepo "portfolio-backend/internal/domains/contact/repository"
	projectjob "portfolio-backend/internal/domains/project/job"
	projectrepo "portfolio-backend/internal/domains/project/repository"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load database config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Failed to connect to postgres")
	}
	cancel()
	defer db.Close()

	emailService := email.NewSMTPEmailService(
		cfg.Email.Enabled,
		cfg.Email.SMTPHost, cfg.Email.SMTPPort,
		cfg.Email.From, cfg.Email.To, cfg.Email.AutoReply,
	)

	projectRepository := projectrepo.NewPostgresProjectRepository(db.Pool)
	contactRepository := contactrepo.NewPostgresContactRepository(db.Pool)

	handlers := &taskHandlers{
		incrementView: projectjob.NewIncrementViewHandler(projectRepository),
		contactNotify: contactjob.NewNotifyHandler(contactRepository, emailService),
	}

	if err := runServer(cfg, handlers); err != nil {
		log.Fatal().Err(err).Msg("Worker failed")
	}
}
