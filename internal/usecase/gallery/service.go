package gallery

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/adapter/repository"
	"github.com/shadrack-family/family-site-backend/internal/adapter/storage"
	"github.com/shadrack-family/family-site-backend/internal/domain"
	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/pkg/pagination"
)

type Service struct {
	photoRepo repository.PhotoRepository
	albumRepo repository.AlbumRepository
	files     storage.FileStorage
	thumbs    storage.ThumbnailGenerator
	acceptor  *Acceptor
}

func NewService(
	photoRepo repository.PhotoRepository,
	albumRepo repository.AlbumRepository,
	files storage.FileStorage,
	thumbs storage.ThumbnailGenerator,
	acceptor *Acceptor,
) *Service {
	return &Service{
		photoRepo: photoRepo,
		albumRepo: albumRepo,
		files:     files,
		thumbs:    thumbs,
		acceptor:  acceptor,
	}
}

type ListPhotosInput struct {
	Page    int
	Limit   int
	AlbumID *uuid.UUID
	Search  string
}

func (s *Service) ListPhotos(ctx context.Context, input ListPhotosInput) ([]entity.Photo, *pagination.Info, error) {
	params := repository.PhotoListParams{
		Pagination: pagination.NewParams(input.Page, input.Limit),
		AlbumID:    input.AlbumID,
		Search:     strings.TrimSpace(input.Search),
	}

	photos, pageInfo, err := s.photoRepo.List(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing photos: %w", err)
	}

	return photos, pageInfo, nil
}

func (s *Service) ListAlbums(ctx context.Context) ([]entity.Album, error) {
	albums, err := s.albumRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing albums: %w", err)
	}
	return albums, nil
}

type CreateAlbumInput struct {
	Name        string
	Description string
	CreatorID   uuid.UUID
}

func (s *Service) CreateAlbum(ctx context.Context, input CreateAlbumInput) (*entity.Album, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrAlbumNameRequired
	}

	album := entity.NewAlbum(strings.TrimSpace(input.Name), input.Description, input.CreatorID)

	if err := s.albumRepo.Create(ctx, album); err != nil {
		return nil, fmt.Errorf("creating album: %w", err)
	}

	return album, nil
}

// DeleteAlbum removes the album; photos that referenced it keep their rows
// with the reference cleared (weak-reference semantics).
func (s *Service) DeleteAlbum(ctx context.Context, albumID uuid.UUID) error {
	if err := s.albumRepo.Delete(ctx, albumID); err != nil {
		return err
	}
	return nil
}

type UploadInput struct {
	Files      []FilePart
	AlbumID    *uuid.UUID
	Caption    string
	Tags       []string
	UploaderID uuid.UUID
}

type UploadResult struct {
	Accepted int
	Photos   []entity.Photo
	Rejected []Rejection
}

// UploadPhotos runs the acceptor over the batch and persists one Photo row
// per accepted file. If any row insert fails, every file written by this call
// is removed from storage before the error is surfaced; rows inserted before
// the failure are left in place.
func (s *Service) UploadPhotos(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if input.AlbumID != nil {
		if _, err := s.albumRepo.GetByID(ctx, *input.AlbumID); err != nil {
			return nil, err
		}
	}

	accepted, rejected, err := s.acceptor.Accept(ctx, input.Files)
	if err != nil {
		return nil, err
	}

	if len(accepted) == 0 {
		return nil, domain.ErrNoFilesUploaded
	}

	photos := make([]entity.Photo, 0, len(accepted))
	for _, desc := range accepted {
		photo := entity.NewPhoto(
			desc.Filename,
			s.files.URL(desc.Filename),
			input.Caption,
			desc.MimeType,
			desc.Size,
			input.AlbumID,
			input.UploaderID,
			input.Tags,
		)

		// Best effort; webp and undecodable images simply have no thumbnail.
		if thumbName, terr := s.thumbs.Generate(ctx, desc.Filename, desc.MimeType); terr == nil {
			thumbPath := s.files.URL(thumbName)
			photo.ThumbnailPath = &thumbPath
		}

		if err := s.photoRepo.Create(ctx, photo); err != nil {
			s.removeBatchFiles(ctx, accepted)
			return nil, fmt.Errorf("creating photo record: %w", err)
		}

		photos = append(photos, *photo)
	}

	return &UploadResult{
		Accepted: len(photos),
		Photos:   photos,
		Rejected: rejected,
	}, nil
}

// removeBatchFiles deletes every file (and thumbnail) this batch wrote.
func (s *Service) removeBatchFiles(ctx context.Context, accepted []Descriptor) {
	for _, desc := range accepted {
		_ = s.files.Delete(ctx, desc.Filename)
		_ = s.files.Delete(ctx, storage.ThumbnailName(desc.Filename))
	}
}

type UpdatePhotoInput struct {
	Caption *string
	AlbumID *uuid.UUID
	// ClearAlbum detaches the photo from its album; ignored when AlbumID set.
	ClearAlbum bool
	Tags       []string
}

func (s *Service) UpdatePhoto(ctx context.Context, photoID uuid.UUID, input UpdatePhotoInput) (*entity.Photo, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	caption := photo.Caption
	if input.Caption != nil {
		caption = *input.Caption
	}

	albumID := photo.AlbumID
	switch {
	case input.AlbumID != nil:
		if _, err := s.albumRepo.GetByID(ctx, *input.AlbumID); err != nil {
			return nil, err
		}
		albumID = input.AlbumID
	case input.ClearAlbum:
		albumID = nil
	}

	tags := photo.Tags
	if input.Tags != nil {
		tags = input.Tags
	}

	photo.Update(caption, albumID, tags)

	if err := s.photoRepo.Update(ctx, photo); err != nil {
		return nil, fmt.Errorf("updating photo: %w", err)
	}

	return photo, nil
}

// DeletePhoto removes the backing file first and the row second, so a row
// never outlives a delete that got as far as touching storage. A file that is
// already gone counts as deleted.
func (s *Service) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}

	if err := s.files.Delete(ctx, photo.Filename); err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	_ = s.files.Delete(ctx, storage.ThumbnailName(photo.Filename))

	if err := s.photoRepo.Delete(ctx, photoID); err != nil {
		return fmt.Errorf("deleting photo record: %w", err)
	}

	return nil
}
