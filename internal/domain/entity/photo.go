package entity

import (
	"time"

	"github.com/google/uuid"
)

type Photo struct {
	ID            uuid.UUID
	Filename      string
	Path          string
	ThumbnailPath *string
	Caption       string
	AlbumID       *uuid.UUID
	AlbumName     string
	UploadedBy    uuid.UUID
	Size          int64
	MimeType      string
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewPhoto(filename, path, caption, mimeType string, size int64, albumID *uuid.UUID, uploadedBy uuid.UUID, tags []string) *Photo {
	now := time.Now().UTC()
	return &Photo{
		ID:         uuid.New(),
		Filename:   filename,
		Path:       path,
		Caption:    caption,
		AlbumID:    albumID,
		UploadedBy: uploadedBy,
		Size:       size,
		MimeType:   mimeType,
		Tags:       tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (p *Photo) Update(caption string, albumID *uuid.UUID, tags []string) {
	p.Caption = caption
	p.AlbumID = albumID
	p.Tags = tags
	p.UpdatedAt = time.Now().UTC()
}
