package main

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/config"
	contactjob "portfolio-backend/internal/domains/contact/job"
	projectjob "portfolio-backend/internal/domains/project/job"
	"portfolio-backend/internal/shared"
)

type taskHandlers struct {
	incrementView *projectjob.IncrementViewHandler
	contactNotify *contactjob.NotifyHandler
}

// runServer blocks processing tasks until SIGTERM/SIGINT, which asynq
// handles internally with a graceful drain.
func runServer(cfg *config.Config, handlers *taskHandlers) error {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"high":    6,
				"default": 3,
				"low":     1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).Msg("Task failed")
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(shared.TypeIncrementProjectView, handlers.incrementView)
	mux.Handle(shared.TypeContactNotify, handlers.contactNotify)

	log.Info().Msg("Starting worker")
	return srv.Run(mux)
}
