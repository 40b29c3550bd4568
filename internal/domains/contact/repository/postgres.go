package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/shared/utils"
)

type postgresContactRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &postgresContactRepository{pool: pool}
}

var contactSortColumns = map[string]string{
	"created_at": "created_at",
	"priority":   "priority",
	"status":     "status",
	"name":       "name",
}

const contactColumns = `
	id, name, email, phone, company, subject, message,
	status, priority, source, ip_address, user_agent,
	tags, notes, replied, replied_at, created_at, updated_at
`

func (r *postgresContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (
			id, name, email, phone, company, subject, message,
			status, priority, source, ip_address, user_agent,
			tags, notes, replied, replied_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Company, msg.Subject, msg.Message,
		msg.Status, msg.Priority, msg.Source, msg.IPAddress, msg.UserAgent,
		pq.Array(msg.Tags), msg.Notes, msg.Replied, msg.RepliedAt, msg.CreatedAt, msg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *postgresContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE id = $1`
	msg, err := r.scanRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return msg, nil
}

func (r *postgresContactRepository) Update(ctx context.Context, msg *model.ContactMessage) error {
	query := `
		UPDATE contact_messages SET
			status = $2, priority = $3, tags = $4, notes = $5,
			replied = $6, replied_at = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		msg.ID, msg.Status, msg.Priority, pq.Array(msg.Tags), msg.Notes,
		msg.Replied, msg.RepliedAt, msg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact message: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrMessageNotFound
	}
	return nil
}

func (r *postgresContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrMessageNotFound
	}
	return nil
}

func (r *postgresContactRepository) List(ctx context.Context, filter model.ContactFilter) ([]*model.ContactMessage, int, error) {
	clauses := []string{"1=1"}
	args := []interface{}{}
	arg := 0

	next := func(v interface{}) string {
		arg++
		args = append(args, v)
		return fmt.Sprintf("$%d", arg)
	}

	if filter.Status != "" {
		clauses = append(clauses, "status = "+next(filter.Status))
	}
	if filter.Priority != "" {
		clauses = append(clauses, "priority = "+next(filter.Priority))
	}
	if filter.Search != "" {
		ph := next("%" + filter.Search + "%")
		clauses = append(clauses, "(name ILIKE "+ph+" OR email ILIKE "+ph+" OR subject ILIKE "+ph+" OR company ILIKE "+ph+")")
	}
	if filter.From != nil {
		clauses = append(clauses, "created_at >= "+next(*filter.From))
	}
	if filter.To != nil {
		clauses = append(clauses, "created_at <= "+next(*filter.To))
	}

	where := utils.JoinWithAnd(clauses)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	orderBy := utils.OrderByClause(filter.Sort, contactSortColumns, "created_at DESC")

	query := fmt.Sprintf(
		`SELECT %s FROM contact_messages WHERE %s ORDER BY %s LIMIT %s OFFSET %s`,
		contactColumns, where, orderBy,
		next(filter.Limit), next((filter.Page-1)*filter.Limit),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		msg, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read contact messages: %w", err)
	}

	return messages, total, nil
}

func (r *postgresContactRepository) Stats(ctx context.Context) (*model.InboxStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'unread'),
			COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days')
		FROM contact_messages
	`

	stats := &model.InboxStats{}
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Unread, &stats.ThisWeek); err != nil {
		return nil, fmt.Errorf("failed to load inbox stats: %w", err)
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *postgresContactRepository) scanRow(row rowScanner) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{}
	var tags []string

	err := row.Scan(
		&msg.ID, &msg.Name, &msg.Email, &msg.Phone, &msg.Company, &msg.Subject, &msg.Message,
		&msg.Status, &msg.Priority, &msg.Source, &msg.IPAddress, &msg.UserAgent,
		pq.Array(&tags), &msg.Notes, &msg.Replied, &msg.RepliedAt, &msg.CreatedAt, &msg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan contact message: %w", err)
	}

	msg.Tags = tags
	return msg, nil
}
