package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
)

// ProjectRepository is the persistence contract for projects.
// Point lookups return (nil, nil) on miss so callers choose 404 semantics.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SlugExists reports whether a slug is taken by any project other
	// than excludeID (pass uuid.Nil on create flows).
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	// List returns one page of matching projects plus the exact total
	List(ctx context.Context, filter model.ProjectFilter) ([]*model.Project, int, error)

	// IncrementViews bumps the view counter atomically in the store
	// (views = views + 1, never read-modify-write).
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
