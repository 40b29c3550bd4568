package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/repository"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/utils"
)

// maxSlugAttempts bounds the resolve+insert retry loop when concurrent
// writers race on the same slug candidate.
const maxSlugAttempts = 5

type projectService struct {
	repo  repository.ProjectRepository
	views ViewCounter
}

func NewProjectService(repo repository.ProjectRepository, views ViewCounter) ProjectService {
	return &projectService{
		repo:  repo,
		views: views,
	}
}

func (s *projectService) List(ctx context.Context, req model.ListProjectsRequest) ([]*model.Project, int, error) {
	req.Normalize()

	// Public listings never expose unpublished records, whatever the
	// caller put in the query string.
	published := true
	filter := s.buildFilter(req)
	filter.Published = &published

	return s.repo.List(ctx, filter)
}

func (s *projectService) AdminList(ctx context.Context, req model.ListProjectsRequest) ([]*model.Project, int, error) {
	req.Normalize()
	return s.repo.List(ctx, s.buildFilter(req))
}

func (s *projectService) buildFilter(req model.ListProjectsRequest) model.ProjectFilter {
	return model.ProjectFilter{
		Category: req.Category,
		Featured: req.Featured,
		Status:   req.Status,
		Search:   req.Search,
		Sort:     req.Sort,
		Page:     req.Page,
		Limit:    req.Limit,
	}
}

func (s *projectService) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	p, err := s.repo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	// Fire-and-forget: a failed enqueue must never fail the read
	if err := s.views.EnqueueIncrementView(p.ID); err != nil {
		log.Error().Err(err).
			Str("project_id", p.ID.String()).
			Msg("Failed to enqueue view increment")
	}

	return p, nil
}

func (s *projectService) AdminGetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectService) Create(ctx context.Context, principal shared.Principal, req model.CreateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &model.Project{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Content:      req.Content,
		Technologies: req.Technologies,
		Category:     req.Category,
		Status:       req.Status,
		Featured:     req.Featured,
		Published:    true,
		Images:       req.Images,
		Links:        req.Links,
		StartDate:    now,
		EndDate:      req.EndDate,
		SortOrder:    req.SortOrder,
		CreatedBy:    principal.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if p.Status == "" {
		p.Status = model.StatusCompleted
	}
	if req.Published != nil {
		p.Published = *req.Published
	}
	if req.StartDate != nil {
		p.StartDate = *req.StartDate
	}

	base := utils.GenerateSlug(p.Title)
	if base == "" {
		base = utils.SlugFallback("project", p.ID)
	}

	// Resolve a free slug, then insert. The unique index is the real
	// guard: when a concurrent create wins the race we get ErrSlugTaken
	// back and resolve again with the now-visible neighbour in place.
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := utils.ResolveUniqueSlug(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SlugExists(ctx, candidate, uuid.Nil)
		})
		if err != nil {
			return nil, err
		}

		p.Slug = slug
		err = s.repo.Create(ctx, p)
		if errors.Is(err, model.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	return nil, model.NewSlugExhaustedError(p.Title)
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req model.UpdateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.NewProjectNotFoundError()
	}

	titleChanged := req.Title != nil && *req.Title != p.Title
	applyProjectUpdate(p, req)
	p.UpdatedAt = time.Now().UTC()

	// The slug only moves when its source title moves
	if !titleChanged {
		if err := s.repo.Update(ctx, p); err != nil {
			if errors.Is(err, model.ErrProjectNotFound) {
				return nil, model.NewProjectNotFoundError()
			}
			return nil, err
		}
		return p, nil
	}

	base := utils.GenerateSlug(p.Title)
	if base == "" {
		base = utils.SlugFallback("project", p.ID)
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := utils.ResolveUniqueSlug(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SlugExists(ctx, candidate, p.ID)
		})
		if err != nil {
			return nil, err
		}

		p.Slug = slug
		err = s.repo.Update(ctx, p)
		if errors.Is(err, model.ErrSlugTaken) {
			continue
		}
		if errors.Is(err, model.ErrProjectNotFound) {
			return nil, model.NewProjectNotFoundError()
		}
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	return nil, model.NewSlugExhaustedError(p.Title)
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, model.ErrProjectNotFound) {
		return model.NewProjectNotFoundError()
	}
	return err
}

// applyProjectUpdate merges the allow-listed mutable fields. Anything
// not named here (id, slug, views, created_by, timestamps) cannot be
// touched through the update API.
func applyProjectUpdate(p *model.Project, req model.UpdateProjectRequest) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Technologies != nil {
		p.Technologies = *req.Technologies
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Published != nil {
		p.Published = *req.Published
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.Links != nil {
		p.Links = *req.Links
	}
	if req.StartDate != nil {
		p.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		p.EndDate = req.EndDate
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}
}
