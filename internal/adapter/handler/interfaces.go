package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/pkg/pagination"
	"github.com/shadrack-family/family-site-backend/internal/usecase/contact"
	"github.com/shadrack-family/family-site-backend/internal/usecase/event"
	"github.com/shadrack-family/family-site-backend/internal/usecase/gallery"
	"github.com/shadrack-family/family-site-backend/internal/usecase/member"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type GalleryService interface {
	ListPhotos(ctx context.Context, input gallery.ListPhotosInput) ([]entity.Photo, *pagination.Info, error)
	ListAlbums(ctx context.Context) ([]entity.Album, error)
	CreateAlbum(ctx context.Context, input gallery.CreateAlbumInput) (*entity.Album, error)
	DeleteAlbum(ctx context.Context, albumID uuid.UUID) error
	UploadPhotos(ctx context.Context, input gallery.UploadInput) (*gallery.UploadResult, error)
	UpdatePhoto(ctx context.Context, photoID uuid.UUID, input gallery.UpdatePhotoInput) (*entity.Photo, error)
	DeletePhoto(ctx context.Context, photoID uuid.UUID) error
}

type MemberService interface {
	Create(ctx context.Context, input member.CreateInput) (*entity.FamilyMember, error)
	List(ctx context.Context) ([]entity.FamilyMember, error)
	GetByID(ctx context.Context, memberID uuid.UUID) (*entity.FamilyMember, error)
	Update(ctx context.Context, memberID uuid.UUID, input member.UpdateInput) (*entity.FamilyMember, error)
	Delete(ctx context.Context, memberID uuid.UUID) error
}

type EventService interface {
	Create(ctx context.Context, input event.CreateInput) (*entity.Event, error)
	List(ctx context.Context, input event.ListInput) ([]entity.Event, error)
	GetByID(ctx context.Context, eventID uuid.UUID) (*entity.Event, error)
	Update(ctx context.Context, eventID uuid.UUID, input event.UpdateInput) (*entity.Event, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
}

type ContactService interface {
	Submit(ctx context.Context, input contact.SubmitInput) (*entity.ContactMessage, error)
	List(ctx context.Context, input contact.ListInput) ([]entity.ContactMessage, *pagination.Info, error)
	Delete(ctx context.Context, messageID uuid.UUID) error
}
