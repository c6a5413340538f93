package entity

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      *time.Time
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewEvent(title, description, location string, startsAt time.Time, endsAt *time.Time, createdBy uuid.UUID) *Event {
	now := time.Now().UTC()
	return &Event{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Location:    location,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (e *Event) Update(title, description, location string, startsAt time.Time, endsAt *time.Time) {
	e.Title = title
	e.Description = description
	e.Location = location
	e.StartsAt = startsAt
	e.EndsAt = endsAt
	e.UpdatedAt = time.Now().UTC()
}
