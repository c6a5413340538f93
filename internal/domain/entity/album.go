package entity

import (
	"time"

	"github.com/google/uuid"
)

type Album struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedBy   uuid.UUID
	PhotoCount  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewAlbum(name, description string, createdBy uuid.UUID) *Album {
	now := time.Now().UTC()
	return &Album{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
