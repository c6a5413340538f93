package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shadrack-family/family-site-backend/internal/adapter/repository"
	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
)

type EventRepo struct {
	pool *pgxpool.Pool
}

func NewEventRepo(pool *pgxpool.Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

func (r *EventRepo) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, title, description, location, starts_at, ends_at, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID, event.Title, event.Description, event.Location,
		event.StartsAt, event.EndsAt, event.CreatedBy,
		event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, title, description, location, starts_at, ends_at, created_by, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	var event entity.Event
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID, &event.Title, &event.Description, &event.Location,
		&event.StartsAt, &event.EndsAt, &event.CreatedBy,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return &event, nil
}

func (r *EventRepo) List(ctx context.Context, params repository.EventListParams) ([]entity.Event, error) {
	query := `
		SELECT id, title, description, location, starts_at, ends_at, created_by, created_at, updated_at
		FROM events
	`
	if params.UpcomingOnly {
		query += ` WHERE starts_at >= NOW()`
	}
	query += ` ORDER BY starts_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []entity.Event
	for rows.Next() {
		var event entity.Event
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.Location,
			&event.StartsAt, &event.EndsAt, &event.CreatedBy,
			&event.CreatedAt, &event.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *EventRepo) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, location = $4, starts_at = $5, ends_at = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		event.ID, event.Title, event.Description, event.Location,
		event.StartsAt, event.EndsAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
