package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/timeline/model"
	"portfolio-backend/internal/domains/timeline/repository"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/utils"
)

const maxSlugAttempts = 5

type timelineService struct {
	repo repository.TimelineRepository
}

func NewTimelineService(repo repository.TimelineRepository) TimelineService {
	return &timelineService{repo: repo}
}

func (s *timelineService) List(ctx context.Context, req model.ListTimelineItemsRequest) ([]*model.TimelineItem, int, error) {
	req.Normalize()

	published := true
	filter := s.buildFilter(req)
	filter.Published = &published

	return s.repo.List(ctx, filter)
}

func (s *timelineService) AdminList(ctx context.Context, req model.ListTimelineItemsRequest) ([]*model.TimelineItem, int, error) {
	req.Normalize()
	return s.repo.List(ctx, s.buildFilter(req))
}

func (s *timelineService) buildFilter(req model.ListTimelineItemsRequest) model.TimelineFilter {
	return model.TimelineFilter{
		Type:     req.Type,
		Featured: req.Featured,
		Current:  req.Current,
		Search:   req.Search,
		Sort:     req.Sort,
		Page:     req.Page,
		Limit:    req.Limit,
	}
}

func (s *timelineService) GetBySlug(ctx context.Context, slug string) (*model.TimelineItem, error) {
	return s.repo.GetBySlug(ctx, slug, true)
}

func (s *timelineService) AdminGetByID(ctx context.Context, id uuid.UUID) (*model.TimelineItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *timelineService) Create(ctx context.Context, principal shared.Principal, req model.CreateTimelineItemRequest) (*model.TimelineItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &model.TimelineItem{
		ID:           uuid.New(),
		Title:        req.Title,
		Organization: req.Organization,
		Location:     req.Location,
		Description:  req.Description,
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Current:      req.Current,
		Skills:       req.Skills,
		Achievements: req.Achievements,
		Links:        req.Links,
		Featured:     req.Featured,
		Published:    true,
		SortOrder:    req.SortOrder,
		CreatedBy:    principal.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Published != nil {
		item.Published = *req.Published
	}
	// A current position has no end date
	if item.Current {
		item.EndDate = nil
	}

	base := utils.GenerateSlug(item.Title)
	if base == "" {
		base = utils.SlugFallback("timeline", item.ID)
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := utils.ResolveUniqueSlug(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SlugExists(ctx, candidate, uuid.Nil)
		})
		if err != nil {
			return nil, err
		}

		item.Slug = slug
		err = s.repo.Create(ctx, item)
		if errors.Is(err, model.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return item, nil
	}

	return nil, model.ErrSlugExhausted
}

func (s *timelineService) Update(ctx context.Context, id uuid.UUID, req model.UpdateTimelineItemRequest) (*model.TimelineItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, model.ErrTimelineItemNotFound
	}

	titleChanged := req.Title != nil && *req.Title != item.Title
	applyTimelineUpdate(item, req)
	item.UpdatedAt = time.Now().UTC()

	if !titleChanged {
		if err := s.repo.Update(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	}

	base := utils.GenerateSlug(item.Title)
	if base == "" {
		base = utils.SlugFallback("timeline", item.ID)
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := utils.ResolveUniqueSlug(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SlugExists(ctx, candidate, item.ID)
		})
		if err != nil {
			return nil, err
		}

		item.Slug = slug
		err = s.repo.Update(ctx, item)
		if errors.Is(err, model.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return item, nil
	}

	return nil, model.ErrSlugExhausted
}

func (s *timelineService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func applyTimelineUpdate(item *model.TimelineItem, req model.UpdateTimelineItemRequest) {
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Organization != nil {
		item.Organization = *req.Organization
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.StartDate != nil {
		item.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		item.EndDate = req.EndDate
	}
	if req.Current != nil {
		item.Current = *req.Current
	}
	if req.Skills != nil {
		item.Skills = *req.Skills
	}
	if req.Achievements != nil {
		item.Achievements = *req.Achievements
	}
	if req.Links != nil {
		item.Links = *req.Links
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.Published != nil {
		item.Published = *req.Published
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if item.Current {
		item.EndDate = nil
	}
}
