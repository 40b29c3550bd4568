package queue

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"portfolio-backend/internal/shared"
)

// Client wraps the asynq client used by the API process to hand
// fire-and-forget work to the worker.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

// EnqueueIncrementView queues a view-count increment for a project.
// View counts are best-effort: callers log and swallow any error.
func (c *Client) EnqueueIncrementView(projectID uuid.UUID) error {
	payload, err := json.Marshal(shared.IncrementViewPayload{ProjectID: projectID})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeIncrementProjectView, payload)
	_, err = c.client.Enqueue(task, asynq.Queue("low"), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	return nil
}

// EnqueueContactNotify queues owner notification + auto-reply emails
// for a newly created contact message.
func (c *Client) EnqueueContactNotify(messageID uuid.UUID) error {
	payload, err := json.Marshal(shared.ContactNotifyPayload{MessageID: messageID})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeContactNotify, payload)
	_, err = c.client.Enqueue(task, asynq.Queue("default"), asynq.MaxRetry(5))
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
