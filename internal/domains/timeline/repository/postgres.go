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

	"portfolio-backend/internal/domains/timeline/model"
	"portfolio-backend/internal/shared/utils"
)

type postgresTimelineRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTimelineRepository(pool *pgxpool.Pool) TimelineRepository {
	return &postgresTimelineRepository{pool: pool}
}

var timelineSortColumns = map[string]string{
	"start_date": "start_date",
	"end_date":   "end_date",
	"title":      "title",
	"order":      "sort_order",
	"created_at": "created_at",
}

// newest entries first, manual order breaks ties
const timelineDefaultOrder = "start_date DESC, sort_order ASC"

const timelineColumns = `
	id, title, slug, organization, location, description, type,
	start_date, end_date, current, skills, achievements, links,
	featured, published, sort_order, created_by, created_at, updated_at
`

func (r *postgresTimelineRepository) Create(ctx context.Context, item *model.TimelineItem) error {
	links, err := json.Marshal(item.Links)
	if err != nil {
		return fmt.Errorf("failed to marshal links: %w", err)
	}

	query := `
		INSERT INTO timeline_items (
			id, title, slug, organization, location, description, type,
			start_date, end_date, current, skills, achievements, links,
			featured, published, sort_order, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err = r.pool.Exec(ctx, query,
		item.ID, item.Title, item.Slug, item.Organization, item.Location, item.Description, item.Type,
		item.StartDate, item.EndDate, item.Current, pq.Array(item.Skills), pq.Array(item.Achievements), links,
		item.Featured, item.Published, item.SortOrder, item.CreatedBy, item.CreatedAt, item.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create timeline item: %w", err)
	}

	return nil
}

func (r *postgresTimelineRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TimelineItem, error) {
	query := `SELECT ` + timelineColumns + ` FROM timeline_items WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresTimelineRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.TimelineItem, error) {
	query := `SELECT ` + timelineColumns + ` FROM timeline_items WHERE slug = $1`
	if publishedOnly {
		query += ` AND published = true`
	}
	return r.scanOne(r.pool.QueryRow(ctx, query, slug))
}

func (r *postgresTimelineRepository) Update(ctx context.Context, item *model.TimelineItem) error {
	links, err := json.Marshal(item.Links)
	if err != nil {
		return fmt.Errorf("failed to marshal links: %w", err)
	}

	query := `
		UPDATE timeline_items SET
			title = $2, slug = $3, organization = $4, location = $5, description = $6,
			type = $7, start_date = $8, end_date = $9, current = $10,
			skills = $11, achievements = $12, links = $13,
			featured = $14, published = $15, sort_order = $16, updated_at = $17
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		item.ID, item.Title, item.Slug, item.Organization, item.Location, item.Description,
		item.Type, item.StartDate, item.EndDate, item.Current,
		pq.Array(item.Skills), pq.Array(item.Achievements), links,
		item.Featured, item.Published, item.SortOrder, item.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to update timeline item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrTimelineItemNotFound
	}

	return nil
}

func (r *postgresTimelineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM timeline_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete timeline item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrTimelineItemNotFound
	}
	return nil
}

func (r *postgresTimelineRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM timeline_items WHERE slug = $1 AND id != $2)`,
		slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *postgresTimelineRepository) List(ctx context.Context, filter model.TimelineFilter) ([]*model.TimelineItem, int, error) {
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
	if filter.Type != "" {
		clauses = append(clauses, "type = "+next(filter.Type))
	}
	if filter.Featured != nil {
		clauses = append(clauses, "featured = "+next(*filter.Featured))
	}
	if filter.Current != nil {
		clauses = append(clauses, "current = "+next(*filter.Current))
	}
	if filter.Search != "" {
		ph := next("%" + filter.Search + "%")
		clauses = append(clauses, "(title ILIKE "+ph+" OR organization ILIKE "+ph+" OR description ILIKE "+ph+")")
	}

	where := utils.JoinWithAnd(clauses)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM timeline_items WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count timeline items: %w", err)
	}

	orderBy := timelineDefaultOrder
	if filter.Sort != "" {
		orderBy = utils.OrderByClause(filter.Sort, timelineSortColumns, timelineDefaultOrder)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM timeline_items WHERE %s ORDER BY %s LIMIT %s OFFSET %s`,
		timelineColumns, where, orderBy,
		next(filter.Limit), next((filter.Page-1)*filter.Limit),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list timeline items: %w", err)
	}
	defer rows.Close()

	var items []*model.TimelineItem
	for rows.Next() {
		item, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read timeline items: %w", err)
	}

	return items, total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *postgresTimelineRepository) scanOne(row pgx.Row) (*model.TimelineItem, error) {
	item, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresTimelineRepository) scanRow(row rowScanner) (*model.TimelineItem, error) {
	item := &model.TimelineItem{}
	var skills, achievements []string
	var links []byte

	err := row.Scan(
		&item.ID, &item.Title, &item.Slug, &item.Organization, &item.Location, &item.Description, &item.Type,
		&item.StartDate, &item.EndDate, &item.Current, pq.Array(&skills), pq.Array(&achievements), &links,
		&item.Featured, &item.Published, &item.SortOrder, &item.CreatedBy, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan timeline item: %w", err)
	}

	item.Skills = skills
	item.Achievements = achievements
	if err := json.Unmarshal(links, &item.Links); err != nil {
		return nil, fmt.Errorf("failed to unmarshal links: %w", err)
	}

	return item, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
