package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
)

// SkillRepository is the persistence contract for skills.
// Point lookups return (nil, nil) on miss.
type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Skill, error)
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, filter model.SkillFilter) ([]*model.Skill, int, error)
}
