package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/repository"
	"portfolio-backend/internal/shared"
)

// IncrementViewHandler processes project:increment_view tasks.
// The increment runs as a single atomic UPDATE in the store so
// concurrent views never lose updates.
type IncrementViewHandler struct {
	repo repository.ProjectRepository
}

func NewIncrementViewHandler(repo repository.ProjectRepository) *IncrementViewHandler {
	return &IncrementViewHandler{repo: repo}
}

func (h *IncrementViewHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.IncrementViewPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	err := h.repo.IncrementViews(ctx, payload.ProjectID)
	if errors.Is(err, model.ErrProjectNotFound) {
		// Project deleted between read and task execution; nothing to count
		log.Debug().Str("project_id", payload.ProjectID.String()).Msg("View increment for deleted project")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to increment views for %s: %w", payload.ProjectID, err)
	}

	return nil
}
