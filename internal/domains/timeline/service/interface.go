package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/timeline/model"
	"portfolio-backend/internal/shared"
)

// TimelineService exposes the public timeline and admin CRUD
type TimelineService interface {
	List(ctx context.Context, req model.ListTimelineItemsRequest) ([]*model.TimelineItem, int, error)
	AdminList(ctx context.Context, req model.ListTimelineItemsRequest) ([]*model.TimelineItem, int, error)
	GetBySlug(ctx context.Context, slug string) (*model.TimelineItem, error)
	AdminGetByID(ctx context.Context, id uuid.UUID) (*model.TimelineItem, error)
	Create(ctx context.Context, principal shared.Principal, req model.CreateTimelineItemRequest) (*model.TimelineItem, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateTimelineItemRequest) (*model.TimelineItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
