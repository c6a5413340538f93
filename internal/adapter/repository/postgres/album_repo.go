package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
)

type AlbumRepo struct {
	pool *pgxpool.Pool
}

func NewAlbumRepo(pool *pgxpool.Pool) *AlbumRepo {
	return &AlbumRepo{pool: pool}
}

func (r *AlbumRepo) Create(ctx context.Context, album *entity.Album) error {
	query := `
		INSERT INTO albums (id, name, description, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		album.ID, album.Name, album.Description, album.CreatedBy,
		album.CreatedAt, album.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting album: %w", err)
	}
	return nil
}

func (r *AlbumRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Album, error) {
	query := `
		SELECT a.id, a.name, a.description, a.created_by,
			   (SELECT COUNT(*) FROM photos p WHERE p.album_id = a.id),
			   a.created_at, a.updated_at
		FROM albums a
		WHERE a.id = $1
	`
	var album entity.Album
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&album.ID, &album.Name, &album.Description, &album.CreatedBy,
		&album.PhotoCount, &album.CreatedAt, &album.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("querying album: %w", err)
	}
	return &album, nil
}

func (r *AlbumRepo) List(ctx context.Context) ([]entity.Album, error) {
	query := `
		SELECT a.id, a.name, a.description, a.created_by,
			   (SELECT COUNT(*) FROM photos p WHERE p.album_id = a.id),
			   a.created_at, a.updated_at
		FROM albums a
		ORDER BY a.name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying albums: %w", err)
	}
	defer rows.Close()

	var albums []entity.Album
	for rows.Next() {
		var album entity.Album
		if err := rows.Scan(
			&album.ID, &album.Name, &album.Description, &album.CreatedBy,
			&album.PhotoCount, &album.CreatedAt, &album.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning album: %w", err)
		}
		albums = append(albums, album)
	}

	return albums, rows.Err()
}

// Delete removes the album row; photos referencing it fall back to album_id
// NULL via the schema's ON DELETE SET NULL.
func (r *AlbumRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM albums WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting album: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}
