package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/shared"
)

// ProjectService is the business-logic contract for projects.
type ProjectService interface {
	// List returns a page of published projects for public callers
	List(ctx context.Context, req model.ListProjectsRequest) ([]*model.Project, int, error)

	// AdminList returns projects regardless of published state
	AdminList(ctx context.Context, req model.ListProjectsRequest) ([]*model.Project, int, error)

	// GetBySlug returns a published project and fires the view counter.
	// Returns (nil, nil) when absent.
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)

	// AdminGetByID returns any project without touching the view counter
	AdminGetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)

	Create(ctx context.Context, principal shared.Principal, req model.CreateProjectRequest) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ViewCounter hands view increments to the background worker.
// Implemented by the asynq queue client.
type ViewCounter interface {
	EnqueueIncrementView(projectID uuid.UUID) error
}
