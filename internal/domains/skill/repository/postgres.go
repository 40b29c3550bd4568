package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/shared/utils"
)

type postgresSkillRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSkillRepository(pool *pgxpool.Pool) SkillRepository {
	return &postgresSkillRepository{pool: pool}
}

var skillSortColumns = map[string]string{
	"created_at":  "created_at",
	"name":        "name",
	"category":    "category",
	"proficiency": "proficiency",
	"order":       "sort_order",
}

// default ordering mirrors the skills matrix: grouped by category,
// manual order first, strongest proficiency on top
const skillDefaultOrder = "category ASC, sort_order ASC, proficiency DESC"

const skillColumns = `
	id, name, slug, category, proficiency, experience, years_of_experience,
	description, icon, color, featured, published, sort_order,
	created_by, created_at, updated_at
`

func (r *postgresSkillRepository) Create(ctx context.Context, s *model.Skill) error {
	query := `
		INSERT INTO skills (
			id, name, slug, category, proficiency, experience, years_of_experience,
			description, icon, color, featured, published, sort_order,
			created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.Slug, s.Category, s.Proficiency, s.Experience, s.YearsOfExperience,
		s.Description, s.Icon, s.Color, s.Featured, s.Published, s.SortOrder,
		s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create skill: %w", err)
	}

	return nil
}

func (r *postgresSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresSkillRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE slug = $1`
	if publishedOnly {
		query += ` AND published = true`
	}
	return r.scanOne(r.pool.QueryRow(ctx, query, slug))
}

func (r *postgresSkillRepository) Update(ctx context.Context, s *model.Skill) error {
	query := `
		UPDATE skills SET
			name = $2, slug = $3, category = $4, proficiency = $5, experience = $6,
			years_of_experience = $7, description = $8, icon = $9, color = $10,
			featured = $11, published = $12, sort_order = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.Slug, s.Category, s.Proficiency, s.Experience,
		s.YearsOfExperience, s.Description, s.Icon, s.Color,
		s.Featured, s.Published, s.SortOrder, s.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to update skill: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrSkillNotFound
	}

	return nil
}

func (r *postgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrSkillNotFound
	}
	return nil
}

func (r *postgresSkillRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM skills WHERE slug = $1 AND id != $2)`,
		slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *postgresSkillRepository) List(ctx context.Context, filter model.SkillFilter) ([]*model.Skill, int, error) {
	clauses := []string{"1=1"}
	args := []interface{}{}
	arg := 0

	next := func(v interface{}) string {
		arg++
		args = append(args, v)
		return fmt.Sprintf("$%d", arg)
	}

	if filter.Published != nil {
		clauses = append(clauses, "published = "+next(*filter.Published))
	}
	if filter.Category != "" {
		clauses = append(clauses, "category = "+next(filter.Category))
	}
	if filter.Featured != nil {
		clauses = append(clauses, "featured = "+next(*filter.Featured))
	}
	if filter.Search != "" {
		ph := next("%" + filter.Search + "%")
		clauses = append(clauses, "(name ILIKE "+ph+" OR description ILIKE "+ph+")")
	}

	where := utils.JoinWithAnd(clauses)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM skills WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count skills: %w", err)
	}

	orderBy := skillDefaultOrder
	if filter.Sort != "" {
		orderBy = utils.OrderByClause(filter.Sort, skillSortColumns, skillDefaultOrder)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM skills WHERE %s ORDER BY %s LIMIT %s OFFSET %s`,
		skillColumns, where, orderBy,
		next(filter.Limit), next((filter.Page-1)*filter.Limit),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []*model.Skill
	for rows.Next() {
		s := &model.Skill{}
		err := rows.Scan(
			&s.ID, &s.Name, &s.Slug, &s.Category, &s.Proficiency, &s.Experience,
			&s.YearsOfExperience, &s.Description, &s.Icon, &s.Color,
			&s.Featured, &s.Published, &s.SortOrder,
			&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read skills: %w", err)
	}

	return skills, total, nil
}

func (r *postgresSkillRepository) scanOne(row pgx.Row) (*model.Skill, error) {
	s := &model.Skill{}
	err := row.Scan(
		&s.ID, &s.Name, &s.Slug, &s.Category, &s.Proficiency, &s.Experience,
		&s.YearsOfExperience, &s.Description, &s.Icon, &s.Color,
		&s.Featured, &s.Published, &s.SortOrder,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return s, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
