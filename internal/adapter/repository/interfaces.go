package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/shadrack-family/family-site-backend/internal/domain/entity"
	"github.com/shadrack-family/family-site-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type PhotoListParams struct {
	Pagination pagination.Params
	AlbumID    *uuid.UUID
	Search     string
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *entity.Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error)
	List(ctx context.Context, params PhotoListParams) ([]entity.Photo, *pagination.Info, error)
	Update(ctx context.Context, photo *entity.Photo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AlbumRepository interface {
	Create(ctx context.Context, album *entity.Album) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Album, error)
	List(ctx context.Context) ([]entity.Album, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MemberRepository interface {
	Create(ctx context.Context, member *entity.FamilyMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FamilyMember, error)
	List(ctx context.Context) ([]entity.FamilyMember, error)
	Update(ctx context.Context, member *entity.FamilyMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	List(ctx context.Context, params EventListParams) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventListParams struct {
	UpcomingOnly bool
}

type MessageRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	List(ctx context.Context, params pagination.Params) ([]entity.ContactMessage, *pagination.Info, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
