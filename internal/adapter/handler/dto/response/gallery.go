package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/pkg/pagination"
	"github.com/shadrack-family/family-site-backend/internal/usecase/gallery"
)

type PhotoResponse struct {
	ID            uuid.UUID  `json:"id"`
	Path          string     `json:"path"`
	ThumbnailPath *string    `json:"thumbnail_path,omitempty"`
	Caption       string     `json:"caption,omitempty"`
	AlbumID       *uuid.UUID `json:"album_id,omitempty"`
	AlbumName     string     `json:"album_name,omitempty"`
	Size          int64      `json:"size"`
	MimeType      string     `json:"mime_type"`
	Tags          []string   `json:"tags,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type PhotoListResponse struct {
	Photos     []PhotoResponse  `json:"photos"`
	Pagination *pagination.Info `json:"pagination"`
}

type AlbumResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PhotoCount  int       `json:"photo_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type UploadResponse struct {
	Accepted int                 `json:"accepted"`
	Photos   []PhotoResponse     `json:"photos"`
	Rejected []gallery.Rejection `json:"rejected,omitempty"`
}

func PhotoFromEntity(p *entity.Photo) PhotoResponse {
	return PhotoResponse{
		ID:            p.ID,
		Path:          p.Path,
		ThumbnailPath: p.ThumbnailPath,
		Caption:       p.Caption,
		AlbumID:       p.AlbumID,
		AlbumName:     p.AlbumName,
		Size:          p.Size,
		MimeType:      p.MimeType,
		Tags:          p.Tags,
		CreatedAt:     p.CreatedAt,
	}
}

func PhotosFromEntities(photos []entity.Photo) []PhotoResponse {
	result := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		result = append(result, PhotoFromEntity(&p))
	}
	return result
}

func AlbumFromEntity(a *entity.Album) AlbumResponse {
	return AlbumResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		PhotoCount:  a.PhotoCount,
		CreatedAt:   a.CreatedAt,
	}
}

func AlbumsFromEntities(albums []entity.Album) []AlbumResponse {
	result := make([]AlbumResponse, 0, len(albums))
	for _, a := range albums {
		result = append(result, AlbumFromEntity(&a))
	}
	return result
}

func UploadResultToResponse(r *gallery.UploadResult) UploadResponse {
	return UploadResponse{
		Accepted: r.Accepted,
		Photos:   PhotosFromEntities(r.Photos),
		Rejected: r.Rejected,
	}
}
