package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/domains/skill/repository"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/utils"
)

const maxSlugAttempts = 5

type skillService struct {
	repo repository.SkillRepository
}

func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{repo: repo}
}

func (s *skillService) List(ctx context.Context, req model.ListSkillsRequest) ([]*model.Skill, int, error) {
	req.Normalize()

	published := true
	filter := s.buildFilter(req)
	filter.Published = &published

	return s.repo.List(ctx, filter)
}

func (s *skillService) AdminList(ctx context.Context, req model.ListSkillsRequest) ([]*model.Skill, int, error) {
	req.Normalize()
	return s.repo.List(ctx, s.buildFilter(req))
}

func (s *skillService) buildFilter(req model.ListSkillsRequest) model.SkillFilter {
	return model.SkillFilter{
		Category: req.Category,
		Featured: req.Featured,
		Search:   req.Search,
		Sort:     req.Sort,
		Page:     req.Page,
		Limit:    req.Limit,
	}
}

func (s *skillService) GetBySlug(ctx context.Context, slug string) (*model.Skill, error) {
	return s.repo.GetBySlug(ctx, slug, true)
}

func (s *skillService) AdminGetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *skillService) Create(ctx context.Context, principal shared.Principal, req model.CreateSkillRequest) (*model.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sk := &model.Skill{
		ID:                uuid.New(),
		Name:              req.Name,
		Category:          req.Category,
		Proficiency:       req.Proficiency,
		Experience:        req.Experience,
		YearsOfExperience: req.YearsOfExperience,
		Description:       req.Description,
		Icon:              req.Icon,
		Color:             req.Color,
		Featured:          req.Featured,
		Published:         true,
		SortOrder:         req.SortOrder,
		CreatedBy:         principal.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if sk.Experience == "" {
		sk.Experience = model.ExperienceIntermediate
	}
	if req.Published != nil {
		sk.Published = *req.Published
	}

	base := utils.GenerateSlug(sk.Name)
	if base == "" {
		base = utils.SlugFallback("skill", sk.ID)
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := utils.ResolveUniqueSlug(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SlugExists(ctx, candidate, uuid.Nil)
		})
		if err != nil {
			return nil, err
		}

		sk.Slug = slug
		err = s.repo.Create(ctx, sk)
		if errors.Is(err, model.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return sk, nil
	}

	return nil, model.ErrSlugExhausted
}

func (s *skillService) Update(ctx context.Context, id uuid.UUID, req model.UpdateSkillRequest) (*model.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sk == nil {
		return nil, model.ErrSkillNotFound
	}

	nameChanged := req.Name != nil && *req.Name != sk.Name
	applySkillUpdate(sk, req)
	sk.UpdatedAt = time.Now().UTC()

	if !nameChanged {
		if err := s.repo.Update(ctx, sk); err != nil {
			return nil, err
		}
		return sk, nil
	}

	base := utils.GenerateSlug(sk.Name)
	if base == "" {
		base = utils.SlugFallback("skill", sk.ID)
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := utils.ResolveUniqueSlug(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SlugExists(ctx, candidate, sk.ID)
		})
		if err != nil {
			return nil, err
		}

		sk.Slug = slug
		err = s.repo.Update(ctx, sk)
		if errors.Is(err, model.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return sk, nil
	}

	return nil, model.ErrSlugExhausted
}

func (s *skillService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func applySkillUpdate(sk *model.Skill, req model.UpdateSkillRequest) {
	if req.Name != nil {
		sk.Name = *req.Name
	}
	if req.Category != nil {
		sk.Category = *req.Category
	}
	if req.Proficiency != nil {
		sk.Proficiency = *req.Proficiency
	}
	if req.Experience != nil {
		sk.Experience = *req.Experience
	}
	if req.YearsOfExperience != nil {
		sk.YearsOfExperience = *req.YearsOfExperience
	}
	if req.Description != nil {
		sk.Description = *req.Description
	}
	if req.Icon != nil {
		sk.Icon = *req.Icon
	}
	if req.Color != nil {
		sk.Color = *req.Color
	}
	if req.Featured != nil {
		sk.Featured = *req.Featured
	}
	if req.Published != nil {
		sk.Published = *req.Published
	}
	if req.SortOrder != nil {
		sk.SortOrder = *req.SortOrder
	}
}
