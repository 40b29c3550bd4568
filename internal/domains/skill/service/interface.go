package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/shared"
)

// SkillService exposes the public skills matrix and admin CRUD
type SkillService interface {
	// List returns published skills only
	List(ctx context.Context, req model.ListSkillsRequest) ([]*model.Skill, int, error)
	// AdminList returns skills regardless of publication state
	AdminList(ctx context.Context, req model.ListSkillsRequest) ([]*model.Skill, int, error)
	GetBySlug(ctx context.Context, slug string) (*model.Skill, error)
	AdminGetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	Create(ctx context.Context, principal shared.Principal, req model.CreateSkillRequest) (*model.Skill, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateSkillRequest) (*model.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
