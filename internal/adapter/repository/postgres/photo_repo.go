package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shadrack-family/family-site-backend/internal/adapter/repository"
	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/pkg/pagination"
)

type PhotoRepo struct {
	pool *pgxpool.Pool
}

func NewPhotoRepo(pool *pgxpool.Pool) *PhotoRepo {
	return &PhotoRepo{pool: pool}
}

func (r *PhotoRepo) Create(ctx context.Context, photo *entity.Photo) error {
	query := `
		INSERT INTO photos (id, filename, path, thumbnail_path, caption, album_id, uploaded_by, size, mime_type, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		photo.ID, photo.Filename, photo.Path, photo.ThumbnailPath, photo.Caption,
		photo.AlbumID, photo.UploadedBy, photo.Size, photo.MimeType, photo.Tags,
		photo.CreatedAt, photo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting photo: %w", err)
	}
	return nil
}

func (r *PhotoRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	query := `
		SELECT p.id, p.filename, p.path, p.thumbnail_path, p.caption, p.album_id,
			   COALESCE(a.name, ''), p.uploaded_by, p.size, p.mime_type, p.tags,
			   p.created_at, p.updated_at
		FROM photos p
		LEFT JOIN albums a ON a.id = p.album_id
		WHERE p.id = $1
	`
	var photo entity.Photo
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&photo.ID, &photo.Filename, &photo.Path, &photo.ThumbnailPath, &photo.Caption,
		&photo.AlbumID, &photo.AlbumName, &photo.UploadedBy, &photo.Size,
		&photo.MimeType, &photo.Tags, &photo.CreatedAt, &photo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("querying photo: %w", err)
	}
	return &photo, nil
}

func (r *PhotoRepo) List(ctx context.Context, params repository.PhotoListParams) ([]entity.Photo, *pagination.Info, error) {
	var conditions []string
	var args []any
	argNum := 1

	if params.AlbumID != nil {
		conditions = append(conditions, fmt.Sprintf("p.album_id = $%d", argNum))
		args = append(args, *params.AlbumID)
		argNum++
	}

	if params.Search != "" {
		pattern := "%" + escapeLike(params.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(`
			(p.caption ILIKE $%d OR EXISTS (
				SELECT 1 FROM unnest(p.tags) AS tag WHERE tag ILIKE $%d
			))
		`, argNum, argNum))
		args = append(args, pattern)
		argNum++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM photos p WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting photos: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.filename, p.path, p.thumbnail_path, p.caption, p.album_id,
			   COALESCE(a.name, ''), p.uploaded_by, p.size, p.mime_type, p.tags,
			   p.created_at, p.updated_at
		FROM photos p
		LEFT JOIN albums a ON a.id = p.album_id
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argNum, argNum+1)
	args = append(args, params.Pagination.Limit, params.Pagination.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("querying photos: %w", err)
	}
	defer rows.Close()

	var photos []entity.Photo
	for rows.Next() {
		var photo entity.Photo
		if err := rows.Scan(
			&photo.ID, &photo.Filename, &photo.Path, &photo.ThumbnailPath, &photo.Caption,
			&photo.AlbumID, &photo.AlbumName, &photo.UploadedBy, &photo.Size,
			&photo.MimeType, &photo.Tags, &photo.CreatedAt, &photo.UpdatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("scanning photo: %w", err)
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating photos: %w", err)
	}

	pageInfo := pagination.NewInfo(params.Pagination.Page, params.Pagination.Limit, total)
	return photos, pageInfo, nil
}

func (r *PhotoRepo) Update(ctx context.Context, photo *entity.Photo) error {
	query := `
		UPDATE photos
		SET caption = $2, album_id = $3, tags = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		photo.ID, photo.Caption, photo.AlbumID, photo.Tags, photo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM photos WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

// escapeLike neutralizes LIKE wildcards so user input only ever matches as a
// literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
