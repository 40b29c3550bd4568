package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/shared/utils"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &postgresProjectRepository{pool: pool}
}

// sortable columns exposed to the list API
var projectSortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"title":      "title",
	"order":      "sort_order",
	"views":      "views",
	"start_date": "start_date",
}

const projectColumns = `
	id, title, slug, description, content,
	technologies, category, status, featured, published,
	images, links, start_date, end_date,
	sort_order, views, created_by, created_at, updated_at
`

func (r *postgresProjectRepository) Create(ctx context.Context, p *model.Project) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal images: %w", err)
	}
	links, err := json.Marshal(p.Links)
	if err != nil {
		return fmt.Errorf("failed to marshal links: %w", err)
	}

	query := `
		INSERT INTO projects (
			id, title, slug, description, content,
			technologies, category, status, featured, published,
			images, links, start_date, end_date,
			sort_order, views, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err = r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Description, p.Content,
		pq.Array(p.Technologies), p.Category, p.Status, p.Featured, p.Published,
		images, links, p.StartDate, p.EndDate,
		p.SortOrder, p.Views, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func (r *postgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresProjectRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE slug = $1`
	if publishedOnly {
		query += ` AND published = true`
	}
	return r.scanOne(r.pool.QueryRow(ctx, query, slug))
}

func (r *postgresProjectRepository) Update(ctx context.Context, p *model.Project) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal images: %w", err)
	}
	links, err := json.Marshal(p.Links)
	if err != nil {
		return fmt.Errorf("failed to marshal links: %w", err)
	}

	query := `
		UPDATE projects SET
			title = $2, slug = $3, description = $4, content = $5,
			technologies = $6, category = $7, status = $8, featured = $9, published = $10,
			images = $11, links = $12, start_date = $13, end_date = $14,
			sort_order = $15, updated_at = $16
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Description, p.Content,
		pq.Array(p.Technologies), p.Category, p.Status, p.Featured, p.Published,
		images, links, p.StartDate, p.EndDate,
		p.SortOrder, p.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to update project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}

	return nil
}

func (r *postgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	// Deleting an absent record is an error, not a no-op: it surfaces
	// double-delete bugs in clients.
	if result.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}

	return nil
}

func (r *postgresProjectRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM projects WHERE slug = $1 AND id != $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *postgresProjectRepository) List(ctx context.Context, filter model.ProjectFilter) ([]*model.Project, int, error) {
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
	if filter.Status != "" {
		clauses = append(clauses, "status = "+next(filter.Status))
	}
	if filter.Featured != nil {
		clauses = append(clauses, "featured = "+next(*filter.Featured))
	}
	if filter.Search != "" {
		ph := next("%" + filter.Search + "%")
		clauses = append(clauses, utils.JoinWithOr([]string{
			"(title ILIKE " + ph,
			"description ILIKE " + ph,
			"EXISTS (SELECT 1 FROM unnest(technologies) AS t WHERE t ILIKE " + ph + "))",
		}))
	}

	where := utils.JoinWithAnd(clauses)
	orderBy := utils.OrderByClause(filter.Sort, projectSortColumns, "created_at DESC")

	countQuery := `SELECT COUNT(*) FROM projects WHERE ` + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM projects WHERE %s ORDER BY %s, sort_order ASC LIMIT %s OFFSET %s`,
		projectColumns, where, orderBy,
		next(filter.Limit), next((filter.Page-1)*filter.Limit),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, total, nil
}

func (r *postgresProjectRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `UPDATE projects SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

// =====================================================
// SCAN HELPERS
// =====================================================

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *postgresProjectRepository) scanOne(row pgx.Row) (*model.Project, error) {
	p, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProjectRepository) scanRow(row rowScanner) (*model.Project, error) {
	p := &model.Project{}
	var technologies []string
	var images, links []byte

	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Content,
		pq.Array(&technologies), &p.Category, &p.Status, &p.Featured, &p.Published,
		&images, &links, &p.StartDate, &p.EndDate,
		&p.SortOrder, &p.Views, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	p.Technologies = technologies
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("failed to unmarshal images: %w", err)
	}
	if err := json.Unmarshal(links, &p.Links); err != nil {
		return nil, fmt.Errorf("failed to unmarshal links: %w", err)
	}

	return p, nil
}

// isUniqueViolation reports a PostgreSQL unique index violation (23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
