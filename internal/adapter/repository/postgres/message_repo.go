package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/pkg/pagination"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, msg *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Body, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting contact message: %w", err)
	}
	return nil
}

func (r *MessageRepo) List(ctx context.Context, params pagination.Params) ([]entity.ContactMessage, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting contact messages: %w", err)
	}

	query := `
		SELECT id, name, email, subject, body, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, params.Limit, params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying contact messages: %w", err)
	}
	defer rows.Close()

	var messages []entity.ContactMessage
	for rows.Next() {
		var msg entity.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Body, &msg.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("scanning contact message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating contact messages: %w", err)
	}

	pageInfo := pagination.NewInfo(params.Page, params.Limit, total)
	return messages, pageInfo, nil
}

func (r *MessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM contact_messages WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting contact message: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}
