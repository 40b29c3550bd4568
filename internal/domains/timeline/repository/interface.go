package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/timeline/model"
)

// TimelineRepository persists timeline entries
type TimelineRepository interface {
	Create(ctx context.Context, item *model.TimelineItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.TimelineItem, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.TimelineItem, error)
	Update(ctx context.Context, item *model.TimelineItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, filter model.TimelineFilter) ([]*model.TimelineItem, int, error)
}
